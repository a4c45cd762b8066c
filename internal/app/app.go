// Package app holds the command-line plumbing shared by the textify commands.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/textify/internal/config"
	"github.com/nguyentantai21042004/textify/internal/logger"
)

const DefaultConfigPath = "config.yaml"

// Flags returns the flags every command accepts. All are optional.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   DefaultConfigPath,
			Usage:   "YAML config file; built-in defaults are used when the default file is absent",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "override logging.level (debug, info, warn, error)",
		},
	}
}

// Setup loads the configuration named by the flags and builds the logger.
func Setup(c *cli.Context) (*config.Config, logger.Logger, error) {
	path := c.String("config")

	var (
		cfg *config.Config
		err error
	)
	if c.IsSet("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if lvl := c.String("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	log := logger.New(cfg.Logging.Level)
	log.Debug(c.Context, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	return cfg, log, nil
}

// SignalContext returns a context canceled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Main runs a cli.App and exits with status 1 on error.
func Main(a *cli.App) {
	if err := a.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
