package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOrganize() error {
	if len(c.Organize.Extensions) == 0 {
		return errors.New("organize.extensions must list at least one image extension")
	}
	for _, ext := range c.Organize.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("organize.extensions: invalid extension %q", ext)
		}
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.SettleMs < 10 {
		return errors.New("watch.settle_ms must be at least 10")
	}
	if c.Watch.SettleChecks < 1 {
		return errors.New("watch.settle_checks must be at least 1")
	}
	if c.Watch.EventBuffer < 1 {
		return errors.New("watch.event_buffer must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
