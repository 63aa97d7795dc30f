package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"mkvtomp4/internal/config"
	"mkvtomp4/internal/logging"
)

// commandContext lazily loads configuration and builds the logger, shared
// by every subcommand so both happen at most once per invocation.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, _, _, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}

		level := cfg.Logging.Level
		if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
			level = v
		}
		format := cfg.Logging.Format
		if v := strings.TrimSpace(*c.logFormatFlag); v != "" {
			format = v
		}
		if format == "" {
			format = detectLogFormat()
		}

		c.logger, c.loggerErr = logging.New(logging.Options{Level: level, Format: format})
	})
	return c.logger, c.loggerErr
}

// detectLogFormat picks the compact console handler on a terminal and JSON
// when stderr is redirected.
func detectLogFormat() string {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "console"
	}
	return "json"
}
