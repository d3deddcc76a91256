package config

import (
	"strings"

	"aniorg/internal/services"
)

// Overrides carries command-line values. Nil fields leave the loaded
// configuration untouched.
type Overrides struct {
	Source            *string
	Target            *string
	Mode              *string
	DryRun            *bool
	IncludeExtensions []string
	Verbose           *bool
	LogLevel          *string
	LogFormat         *string
}

// Apply layers the overrides on top of c and re-normalizes the result.
// Verbose output lowers the log level to debug unless a level was given
// explicitly.
func (c *Config) Apply(o Overrides) error {
	if o.Source != nil {
		c.Organize.Source = *o.Source
	}
	if o.Target != nil {
		c.Organize.Target = *o.Target
	}
	if o.Mode != nil {
		c.Organize.Mode = *o.Mode
	}
	if o.DryRun != nil {
		c.Organize.DryRun = *o.DryRun
	}
	if len(o.IncludeExtensions) > 0 {
		c.Organize.IncludeExtensions = append([]string(nil), o.IncludeExtensions...)
	}
	if o.Verbose != nil {
		c.Organize.Verbose = *o.Verbose
	}
	if o.LogFormat != nil {
		c.Logging.Format = *o.LogFormat
	}
	if o.LogLevel != nil {
		c.Logging.Level = *o.LogLevel
	} else if c.Organize.Verbose && strings.EqualFold(strings.TrimSpace(c.Logging.Level), defaultLogLevel) {
		c.Logging.Level = "debug"
	}
	if err := c.normalize(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "apply overrides", "", err)
	}
	return nil
}
