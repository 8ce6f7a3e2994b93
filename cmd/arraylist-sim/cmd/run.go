// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runCmd struct {
	plan *Plan
	log  logging.Logger
	fold bool

	stdinReader io.Reader
	out         io.Writer
}

func newRunCmd(s *Simulator) *cobra.Command {
	r := &runCmd{}
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Run a list simulation plan (JSON or YAML, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.log = s.log
			r.fold = s.fold
			r.stdinReader = cmd.InOrStdin()
			r.out = cmd.OutOrStdout()
			if err := r.Init(args); err != nil {
				return err
			}
			if err := r.Verify(); err != nil {
				return err
			}
			return r.Run()
		},
	}
	return cmd
}

func (r *runCmd) Init(args []string) (err error) {
	var planBytes []byte
	if args[0] == "-" {
		planBytes, err = io.ReadAll(r.stdinReader)
	} else {
		planBytes, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	r.plan, err = unmarshalPlan(planBytes)
	return err
}

func (r *runCmd) Verify() error {
	if len(r.plan.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	for i := range r.plan.Steps {
		if err := verifyStep(&r.plan.Steps[i]); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	}
	return nil
}

func (r *runCmd) Run() error {
	r.log.Info("simulation",
		zap.String("name", r.plan.Name),
		zap.String("plan", r.plan.Description),
		zap.Int("steps", len(r.plan.Steps)),
	)

	e, err := newExecutor(r.log, r.fold)
	if err != nil {
		return err
	}
	for i := range r.plan.Steps {
		step := &r.plan.Steps[i]
		r.log.Info("simulation",
			zap.Int("step", i),
			zap.String("description", step.Description),
			zap.String("op", string(step.Op)),
			zap.Strings("params", step.Params),
		)

		resp := newResponse(i, step.Op)
		result, err := e.exec(step)
		if err != nil {
			resp.setError(err)
		}
		resp.Result = result

		var assertErr error
		if err == nil && step.Require != nil {
			ok, err := validateAssertion(result.Value, &step.Require.Result)
			switch {
			case err != nil:
				assertErr = err
			case !ok:
				assertErr = fmt.Errorf("%w: step %d: %s %s %q", ErrAssertionFailed, i, formatValue(result.Value), step.Require.Result.Operator, step.Require.Result.Value)
			}
			if assertErr != nil {
				resp.setError(assertErr)
			}
		}

		// print response to stdout
		if err := resp.Print(r.out); err != nil {
			return err
		}
		if assertErr != nil {
			r.log.Warn("simulation aborted",
				zap.Int("step", i),
				zap.Error(assertErr),
			)
			return assertErr
		}
	}
	return nil
}
