package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mkvtomp4/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools the converter drives",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Tools))
			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				state := "ok"
				if !s.Available {
					state = "missing"
				}
				rows = append(rows, []string{s.Name, s.Command, s.Description, state, s.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"TOOL", "COMMAND", "USED FOR", "STATUS", "DETAIL"}, rows))

			if missing := deps.FirstMissing(statuses); missing != nil {
				return errors.New("one or more required tools are missing")
			}
			return nil
		},
	}
}
