package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"firecatalog/config"
	"firecatalog/logging"
	"firecatalog/workbook"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	config     *config.Config
	configPath string
	configSeen bool
	logger     zerolog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, logger: zerolog.Nop()}
}

// ensureConfig loads the configuration once, applies the global flags and
// builds the logger on the command's stderr.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(c.flags.logLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(c.flags.logFormat); v != "" {
		cfg.Logging.Format = v
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}

	c.config = cfg
	c.configPath = path
	c.configSeen = exists
	c.logger = logger

	if exists {
		logger.Debug().Str("path", path).Msg("loaded config")
	} else {
		logger.Debug().Msg("no config file found; using defaults")
	}
	return cfg, nil
}

// workbookPath returns the positional workbook argument or the configured
// default.
func (c *commandContext) workbookPath(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return c.config.Paths.Workbook
}

// withSource opens the workbook for the duration of fn. An open failure is
// returned, not logged; main reports it once.
func (c *commandContext) withSource(path string, fn func(workbook.Source) error) error {
	src, err := workbook.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	c.logger.Debug().Str("path", path).Strs("sheets", src.SheetNames()).Msg("opened workbook")
	return fn(src)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
