// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads Hermes configuration with the usual precedence:
// built-in defaults, then an optional YAML file, then HERMES_-prefixed
// environment variables.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Datetime  DatetimeConfig  `koanf:"datetime"`
	Tools     ToolsConfig     `koanf:"tools"`
}

type ServerConfig struct {
	Name      string `koanf:"name"`
	Version   string `koanf:"version"`
	Transport string `koanf:"transport"` // stdio, http
	HTTPAddr  string `koanf:"http_addr"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

type TelemetryConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Exporter     string `koanf:"exporter"` // stdout, otlp
	OTLPEndpoint string `koanf:"otlp_endpoint"`
	OTLPInsecure bool   `koanf:"otlp_insecure"`
}

type DatetimeConfig struct {
	DefaultTimezone string `koanf:"default_timezone"`
	DefaultFormat   string `koanf:"default_format"`
}

type ToolsConfig struct {
	// Manifest points to an optional YAML toolset manifest that narrows
	// or re-describes the registered operations.
	Manifest string `koanf:"manifest"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	k.Set("server.name", "hermes")
	k.Set("server.version", "0.1.0")
	k.Set("server.transport", "stdio")
	k.Set("server.http_addr", "localhost:8080")

	k.Set("log.level", "info")
	k.Set("log.format", "text")

	k.Set("telemetry.enabled", false)
	k.Set("telemetry.exporter", "stdout")

	k.Set("datetime.default_timezone", "Europe/Madrid")
	k.Set("datetime.default_format", "long")

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. Load from ENV (HERMES_LOG_LEVEL -> log.level)
	if err := k.Load(env.Provider("HERMES_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "HERMES_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
