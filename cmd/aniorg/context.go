package main

import (
	"strings"

	"github.com/spf13/cobra"

	"aniorg/internal/config"
)

// commandFlags holds the persistent flags shared by every command.
type commandFlags struct {
	config     string
	source     string
	target     string
	mode       string
	dryRun     bool
	includeExt string
	verbose    bool
	logLevel   string
	logFormat  string
}

func (f *commandFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.config, "config", "c", "", "Configuration file path")
	flags.StringVarP(&f.source, "source", "s", "", "Directory containing downloaded episodes")
	flags.StringVarP(&f.target, "target", "t", "", "Library root (defaults to the source directory)")
	flags.StringVarP(&f.mode, "mode", "m", "", "Placement mode: move, copy, or link")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Print planned placements without touching the filesystem")
	flags.StringVar(&f.includeExt, "include-ext", "", "Comma-separated list of extensions to organize")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Report skipped files and enable debug logging")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&f.logFormat, "log-format", "", "Log format (console or json)")
}

// overrides collects only the flags the user actually set, so config file
// values survive unless explicitly replaced.
func (f *commandFlags) overrides(cmd *cobra.Command) config.Overrides {
	changed := cmd.Flags().Changed
	var o config.Overrides
	if changed("source") {
		o.Source = &f.source
	}
	if changed("target") {
		o.Target = &f.target
	}
	if changed("mode") {
		o.Mode = &f.mode
	}
	if changed("dry-run") {
		o.DryRun = &f.dryRun
	}
	if changed("include-ext") {
		o.IncludeExtensions = config.SplitExtensionList(f.includeExt)
	}
	if changed("verbose") {
		o.Verbose = &f.verbose
	}
	if changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	if changed("log-format") {
		o.LogFormat = &f.logFormat
	}
	return o
}

// loadConfig resolves defaults, the config file, and flag overrides. The
// result is not validated.
func (f *commandFlags) loadConfig(cmd *cobra.Command) (*config.Config, string, bool, error) {
	cfg, path, exists, err := config.Load(strings.TrimSpace(f.config))
	if err != nil {
		return nil, "", false, err
	}
	if err := cfg.Apply(f.overrides(cmd)); err != nil {
		return nil, path, exists, err
	}
	return cfg, path, exists, nil
}

// validConfig is loadConfig followed by validation and, outside dry runs,
// directory setup.
func (f *commandFlags) validConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, _, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Organize.DryRun {
		return cfg, nil
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	return cfg, nil
}
