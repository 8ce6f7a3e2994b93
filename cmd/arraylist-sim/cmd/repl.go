// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ava-labs/collections/utils"
)

const (
	replExit = "exit"
	replQuit = "quit"
)

func newReplCmd(s *Simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively run list commands",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			e, err := newExecutor(s.log, s.fold)
			if err != nil {
				return err
			}
			return repl(e)
		},
	}
}

func repl(e *executor) error {
	utils.Outf("{{cyan}}type a list command, or %s to leave{{/}}\n", replExit)
	for {
		promptText := promptui.Prompt{
			Label: "arraylist",
			Validate: func(input string) error {
				_, err := parseLine(input)
				return err
			},
		}
		line, err := promptText.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		step, err := parseLine(line)
		if err != nil {
			utils.Outf("{{red}}error:{{/}} %v\n", err)
			continue
		}
		if step == nil {
			continue
		}
		if step.Op == replExit || step.Op == replQuit {
			return nil
		}

		result, err := e.exec(step)
		if err != nil {
			utils.Outf("{{red}}error:{{/}} %v\n", err)
			continue
		}
		if result.Msg != "" {
			utils.Outf("{{yellow}}%s{{/}}\n", result.Msg)
			continue
		}
		utils.Outf("{{green}}%s{{/}}\n", formatValue(result.Value))
		utils.Outf("{{gray}}[%s]{{/}}\n", e.list.String())
	}
}
