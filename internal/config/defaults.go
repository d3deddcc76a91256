package config

const (
	defaultMode             = "move"
	defaultStateDir         = "~/.local/state/aniorg"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultConfigPath       = "~/.config/aniorg/config.toml"
	projectConfigName       = "aniorg.toml"
)

// DefaultExtensions lists the media extensions scanned when no allow-list is
// configured.
func DefaultExtensions() []string {
	return []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".rmvb"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			Mode:              defaultMode,
			IncludeExtensions: DefaultExtensions(),
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
