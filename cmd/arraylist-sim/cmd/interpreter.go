// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInterpreterCmd(s *Simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "interpreter",
		Short: "Read list commands from a buffered stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newExecutor(s.log, s.fold)
			if err != nil {
				return err
			}
			return interpret(s.log, e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// parseLine splits [line] with shell quoting rules into a step. Blank lines
// and lines starting with # yield a nil step.
func parseLine(line string) (*Step, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return &Step{
		Op:     Op(words[0]),
		Params: words[1:],
	}, nil
}

// interpret executes every command read from [in] and writes one response
// per command to [out]. A bad command is reported in its response and
// does not stop the interpreter.
func interpret(log logging.Logger, e *executor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	id := 0
	for scanner.Scan() {
		step, err := parseLine(scanner.Text())
		if err == nil && step == nil {
			continue
		}

		resp := newResponse(id, "")
		id++
		if err != nil {
			resp.setError(err)
		} else {
			resp.Op = step.Op
			resp.Result, err = e.exec(step)
			if err != nil {
				log.Debug("command failed",
					zap.String("op", string(step.Op)),
					zap.Error(err),
				)
				resp.setError(err)
			}
		}
		if err := resp.Print(out); err != nil {
			return err
		}
	}
	return scanner.Err()
}
