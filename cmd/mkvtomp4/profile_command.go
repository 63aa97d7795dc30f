package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mkvtomp4/internal/profile"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect or patch the profile level of a raw H.264 stream",
	}

	profileCmd.AddCommand(newProfilePrintCommand())
	profileCmd.AddCommand(newProfileCorrectCommand(ctx))

	return profileCmd
}

func newProfilePrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print <stream>",
		Short: "Print the encoded profile level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := profile.ReadLevel(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), level)
			return nil
		},
	}
}

func newProfileCorrectCommand(ctx *commandContext) *cobra.Command {
	var level float64
	var force bool

	cmd := &cobra.Command{
		Use:   "correct <stream>",
		Short: "Lower the encoded profile level in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("level") {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				level = cfg.Video.ProfileLevel
			}
			return profile.CorrectLevel(args[0], level, force, logger)
		},
	}

	cmd.Flags().Float64Var(&level, "level", 0, "Target profile level, e.g. 4.1")
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the level even upwards")
	return cmd
}
