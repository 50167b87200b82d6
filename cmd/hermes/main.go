// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

// Command hermes serves the built-in operations over the Model Context
// Protocol, on stdio by default or on the streamable HTTP transport.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jllopis/hermes/pkg/config"
	"github.com/jllopis/hermes/pkg/dispatch"
	hermesmcp "github.com/jllopis/hermes/pkg/mcp"
	"github.com/jllopis/hermes/pkg/telemetry"
	"github.com/jllopis/hermes/pkg/tools"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hermes:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		transport  = flag.String("transport", "", "transport override: stdio or http")
		httpAddr   = flag.String("http-addr", "", "listen address override for the http transport")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *transport != "" {
		cfg.Server.Transport = *transport
	}
	if *httpAddr != "" {
		cfg.Server.HTTPAddr = *httpAddr
	}

	// Stdio carries the protocol, so logs always go to stderr.
	logger, logLevel := telemetry.ConfigureSlog(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitWithConfig(cfg.Server.Name, cfg.Server.Version, telemetry.Config{
			Exporter:     cfg.Telemetry.Exporter,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			OTLPInsecure: cfg.Telemetry.OTLPInsecure,
		})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	registry, err := buildRegistry(cfg, logger)
	if err != nil {
		return err
	}

	srv := hermesmcp.NewServer(cfg.Server.Name, cfg.Server.Version)
	if err := srv.RegisterRegistry(registry); err != nil {
		return fmt.Errorf("register operations: %w", err)
	}

	switch cfg.Server.Transport {
	case "stdio":
		logger.Info("serving MCP over stdio",
			slog.String("server", cfg.Server.Name),
			slog.Any("operations", registry.Names()),
		)
		return srv.ServeStdio()
	case "http":
		return serveHTTP(cfg, srv, logger, logLevel, *configPath)
	default:
		return fmt.Errorf("unknown transport %q (expected stdio or http)", cfg.Server.Transport)
	}
}

func serveHTTP(cfg *config.Config, srv *hermesmcp.Server, logger *slog.Logger, logLevel *slog.LevelVar, configPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, config.WithWatchLogger(logger))
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		watcher.OnChange(func(c *config.Config) {
			logLevel.Set(telemetry.ParseLogLevel(c.Log.Level))
			logger.Info("log level updated", slog.String("level", c.Log.Level))
		})
		watcher.Start(ctx)
		defer watcher.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeStreamableHTTP(cfg.Server.HTTPAddr)
	}()
	logger.Info("serving MCP over streamable HTTP", slog.String("addr", cfg.Server.HTTPAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		return nil
	}
}

// buildRegistry assembles the three canonical operations, narrowed and
// re-described by the toolset manifest when one is configured.
func buildRegistry(cfg *config.Config, logger *slog.Logger) (*dispatch.Registry, error) {
	var metrics *telemetry.InvocationMetrics
	if cfg.Telemetry.Enabled {
		var err error
		metrics, err = telemetry.NewInvocationMetrics()
		if err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
	}

	var toolset *config.Toolset
	if cfg.Tools.Manifest != "" {
		var err error
		toolset, err = config.LoadToolset(cfg.Tools.Manifest)
		if err != nil {
			return nil, fmt.Errorf("load toolset: %w", err)
		}
	}

	ops, err := tools.All(tools.DatetimeDefaults{
		Timezone: cfg.Datetime.DefaultTimezone,
		Format:   cfg.Datetime.DefaultFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("build operations: %w", err)
	}

	registry := dispatch.NewRegistry(
		dispatch.WithLogger(logger),
		dispatch.WithMetrics(metrics),
	)
	for _, op := range ops {
		if !toolset.Allows(op.Name()) {
			logger.Debug("operation disabled by toolset", slog.String("operation", op.Name()))
			continue
		}
		if desc, ok := toolset.Description(op.Name()); ok {
			op = op.WithDescription(desc)
		}
		if err := registry.Register(op); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
