package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	parsed, err := url.Parse(c.Source.URL)
	if err != nil {
		return fmt.Errorf("source.url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source.url must be an http or https URL, got %q", c.Source.URL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("source.url is missing a host: %q", c.Source.URL)
	}
	if c.Source.DataDir == "" {
		return errors.New("source.data_dir must be set")
	}
	if c.Source.ArchiveName == c.Source.WordFile {
		return errors.New("source.archive_name and source.word_file must differ")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if _, err := language.Parse(c.Matching.Locale); err != nil {
		return fmt.Errorf("matching.locale: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Style {
	case StylePlain, StyleTable:
		return nil
	default:
		return fmt.Errorf("output.style must be %q or %q, got %q", StylePlain, StyleTable, c.Output.Style)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
