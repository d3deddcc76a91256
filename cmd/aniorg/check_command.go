package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"aniorg/internal/preflight"
)

func newCheckCommand(flags *commandFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check directory access and hard-link support for the configured run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Organize.Source == "" {
				return errors.New("source directory is required (set organize.source or pass --source)")
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mode: %s\n", cfg.Organize.Mode)
			fmt.Fprintln(out, renderCheckTable(results, shouldColorize(out)))

			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
