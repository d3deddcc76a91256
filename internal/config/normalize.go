package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOrganize() error {
	var err error
	if c.Organize.Source, err = expandPath(strings.TrimSpace(c.Organize.Source)); err != nil {
		return fmt.Errorf("organize.source: %w", err)
	}
	if c.Organize.Target, err = expandPath(strings.TrimSpace(c.Organize.Target)); err != nil {
		return fmt.Errorf("organize.target: %w", err)
	}
	c.Organize.Mode = strings.ToLower(strings.TrimSpace(c.Organize.Mode))
	if c.Organize.Mode == "" {
		c.Organize.Mode = defaultMode
	}
	c.Organize.IncludeExtensions = NormalizeExtensions(c.Organize.IncludeExtensions)
	if len(c.Organize.IncludeExtensions) == 0 {
		c.Organize.IncludeExtensions = DefaultExtensions()
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

// NormalizeExtensions lower-cases entries, adds a leading dot where missing,
// and drops blanks and duplicates while keeping the first-seen order.
func NormalizeExtensions(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// SplitExtensionList parses a comma separated extension list such as
// "mkv,.MP4, avi".
func SplitExtensionList(value string) []string {
	return NormalizeExtensions(strings.Split(value, ","))
}
