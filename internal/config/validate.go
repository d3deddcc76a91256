package config

import (
	"fmt"
	"os"
	"strings"

	"aniorg/internal/services"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	if err := c.validateLogging(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if strings.TrimSpace(c.Organize.Source) == "" {
		return fmt.Errorf("organize.source is required; pass --source or set it in %s", defaultConfigPath)
	}
	if err := requireDirectory("organize.source", c.Organize.Source); err != nil {
		return err
	}
	if strings.TrimSpace(c.Organize.Target) != "" {
		if err := requireDirectory("organize.target", c.Organize.Target); err != nil {
			return err
		}
	}
	switch c.Organize.Mode {
	case "move", "copy", "link":
	default:
		return fmt.Errorf("organize.mode must be one of move, copy, link (got %q)", c.Organize.Mode)
	}
	if len(c.Organize.IncludeExtensions) == 0 {
		return fmt.Errorf("organize.include_extensions must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}

func requireDirectory(field, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", field, path)
		}
		return fmt.Errorf("%s: %w", field, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", field, path)
	}
	return nil
}
