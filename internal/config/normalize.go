package config

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"samewords/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeSource() error {
	if value, ok := os.LookupEnv("SAMEWORDS_SOURCE_URL"); ok && strings.TrimSpace(value) != "" {
		c.Source.URL = value
	}
	c.Source.URL = strings.TrimSpace(c.Source.URL)
	if c.Source.URL == "" {
		c.Source.URL = defaultSourceURL
	}

	if value, ok := os.LookupEnv("SAMEWORDS_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Source.DataDir = value
	}
	if strings.TrimSpace(c.Source.DataDir) == "" {
		c.Source.DataDir = defaultDataDir()
	}
	var err error
	if c.Source.DataDir, err = expandPath(strings.TrimSpace(c.Source.DataDir)); err != nil {
		return fmt.Errorf("source.data_dir: %w", err)
	}

	c.Source.WordFile = textutil.SanitizeFileName(c.Source.WordFile)
	if c.Source.WordFile == "" {
		c.Source.WordFile = defaultWordFile
	}

	c.Source.ArchiveName = textutil.SanitizeFileName(c.Source.ArchiveName)
	if c.Source.ArchiveName == "" {
		c.Source.ArchiveName = archiveNameFromURL(c.Source.URL)
	}

	if c.Source.DownloadTimeout <= 0 {
		c.Source.DownloadTimeout = defaultDownloadTimeout
	}
	return nil
}

// archiveNameFromURL derives a local file name from the last URL path segment.
func archiveNameFromURL(raw string) string {
	name := ""
	if parsed, err := url.Parse(raw); err == nil {
		name = textutil.SanitizeFileName(path.Base(parsed.Path))
	}
	if name == "" || name == "." || name == "-" {
		return "wordlist.zip"
	}
	return name
}

func (c *Config) normalizeMatching() {
	c.Matching.Locale = strings.TrimSpace(c.Matching.Locale)
	if c.Matching.Locale == "" {
		c.Matching.Locale = defaultLocale
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Style = strings.ToLower(strings.TrimSpace(c.Output.Style))
	if c.Output.Style == "" {
		c.Output.Style = defaultOutputStyle
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
