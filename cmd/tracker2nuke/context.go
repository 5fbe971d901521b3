package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tracker2nuke/internal/bridge"
	"tracker2nuke/internal/clipboard"
	"tracker2nuke/internal/config"
	"tracker2nuke/internal/history"
	"tracker2nuke/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
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
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// logger builds the command logger on stderr. The returned release func
// closes the log file, if one was opened, and must be called once the
// command is done logging.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	logger, closeLog, err := logging.NewFromConfig(c.configValue(), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	release := func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "close log file: %v\n", err)
		}
	}
	return logger, release, nil
}

// openHistory returns nil without error when history is disabled.
func (c *commandContext) openHistory(ctx context.Context) (*history.Store, error) {
	cfg := c.configValue()
	if cfg == nil || !cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(ctx, cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func (c *commandContext) requireHistory(ctx context.Context) (*history.Store, error) {
	store, err := c.openHistory(ctx)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("history is disabled (set history.enabled in %s)", c.configPathOrDefault())
	}
	return store, nil
}

func (c *commandContext) configPathOrDefault() string {
	if c.configPath != "" {
		return c.configPath
	}
	return "the config file"
}

// withBridge builds a bridge for sink, wired to logging and history, and
// releases the history store and log file when fn returns.
func (c *commandContext) withBridge(cmd *cobra.Command, sink clipboard.Sink, fn func(*bridge.Bridge) error) error {
	logger, release, err := c.logger(cmd)
	if err != nil {
		return err
	}
	defer release()
	opts := []bridge.Option{bridge.WithLogger(logger)}

	store, err := c.openHistory(cmd.Context())
	if err != nil {
		// History never blocks an export.
		logger.Warn("history unavailable", logging.Error(err))
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, bridge.WithRecorder(store))
	}
	return fn(bridge.New(sink, opts...))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
