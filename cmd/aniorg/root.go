package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aniorg/internal/logging"
	"aniorg/internal/organizer"
	"aniorg/internal/workflow"
)

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}

	rootCmd := &cobra.Command{
		Use:           "aniorg",
		Short:         "Organize fansub episode downloads into per-series folders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, flags)
		},
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runOrganize(cmd *cobra.Command, flags *commandFlags) error {
	cfg, err := flags.validConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	out := cmd.OutOrStdout()
	engine := organizer.NewEngine(logger, organizer.WithPreview(out))
	runner, err := workflow.NewRunner(cfg, engine, logger)
	if err != nil {
		return err
	}

	summary, runErr := runner.Run(cmd.Context())
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderSummaryLine(summary, colorize))
	if len(summary.Failures) > 0 {
		fmt.Fprintln(out, renderFailureTable(summary.Failures))
	}
	return runErr
}
