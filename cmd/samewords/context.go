package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"samewords/internal/config"
	"samewords/internal/logging"
	"samewords/internal/wordlist"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger. Console output stays free of the
// session identifier; JSON and file logs carry it for correlation.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		sessionID := ""
		if cfg.Logging.Format == "json" || cfg.Logging.File != "" {
			sessionID = uuid.NewString()
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, sessionID)
	})
	return c.logger, c.loggerErr
}

// wordSource wires the configured word list source. Download progress is
// drawn on progressOut when it is a terminal.
func (c *commandContext) wordSource(progressOut io.Writer) (*wordlist.Source, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	opts := wordlist.Options{
		URL:         cfg.Source.URL,
		Path:        cfg.WordFilePath(),
		ArchivePath: cfg.ArchivePath(),
		Member:      cfg.Source.WordFile,
		Timeout:     cfg.DownloadTimeout(),
		KeepArchive: cfg.Source.KeepArchive,
	}
	if cfg.Output.Progress && isTerminal(progressOut) {
		opts.Progress = func(total int64) io.Writer {
			return newDownloadBar(progressOut, total)
		}
	}
	return wordlist.New(opts, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
