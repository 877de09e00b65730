// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for phonewise.
//
// This file tests the fsnotify-based hot reload:
// - edits to the config file swap the global config
// - invalid edits are ignored and the previous config stays active
// - Close stops the watch goroutines
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// WATCHER TESTS
// =============================================================================

// writeConfig writes a minimal valid config file with the given theme.
func writeConfig(t *testing.T, path, theme string) {
	t.Helper()
	body := "[ui]\ntheme = \"" + theme + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
}

// waitReload waits for one reload callback or fails the test.
func waitReload(t *testing.T, ch <-chan *Config) *Config {
	t.Helper()
	select {
	case cfg := <-ch:
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
		return nil
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	ResetGlobalForTesting()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "dark")

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	writeConfig(t, path, "light")

	cfg := waitReload(t, reloads)
	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, "light", Global().UI.Theme)
}

func TestWatcher_InvalidEditKeepsPreviousConfig(t *testing.T) {
	ResetGlobalForTesting()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "dark")

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	// Establish a known good global first.
	writeConfig(t, path, "dark")
	_ = waitReload(t, reloads)
	before := Global().UI.Theme

	// Out-of-range value must be rejected, not applied.
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntimeout_secs = 9999\n"), 0600))

	// The watcher debounce is 250ms; give the rejected reload time to
	// have happened, then confirm nothing changed.
	time.Sleep(time.Second)
	require.Empty(t, reloads)
	require.Equal(t, before, Global().UI.Theme)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	ResetGlobalForTesting()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "dark")

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0600))

	time.Sleep(time.Second)
	require.Empty(t, reloads)
}

func TestWatcher_CloseStops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "dark")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	require.NoError(t, w.Close())

	// A write after Close must not panic the stopped goroutines.
	writeConfig(t, path, "light")
	time.Sleep(300 * time.Millisecond)
}
