// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hermes.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := NewWatcher(path, WithWatchInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}

	changes := make(chan *Config, 1)
	w.OnChange(func(cfg *Config) {
		select {
		case changes <- cfg:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	// Rewrite with a future mtime so the poll observes a change.
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	select {
	case cfg := <-changes:
		if cfg.Log.Level != "debug" {
			t.Errorf("expected reloaded level debug, got %q", cfg.Log.Level)
		}
		if w.Config().Log.Level != "debug" {
			t.Errorf("expected Config() to track reload")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestWatcher_InitialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hermes.yaml")
	if err := os.WriteFile(path, []byte("server:\n  transport: http\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	if w.Config().Server.Transport != "http" {
		t.Errorf("expected initial config from file, got %q", w.Config().Server.Transport)
	}
}
