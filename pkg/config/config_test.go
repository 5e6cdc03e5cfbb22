// Steamwatch
// Copyright (c) 2026 The Steamwatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Steamwatch.
//
// Steamwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steamwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steamwatch.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("creates_default_config_file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg, err := NewConfig(dir, BaseDefaults)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, CfgFile))
		assert.Equal(t, 60*time.Second, cfg.PollInterval())
		assert.Empty(t, cfg.SteamInstallDir())
		assert.Zero(t, cfg.RateThreshold())
		assert.Zero(t, cfg.PollCount())
		assert.False(t, cfg.DebugLogging())
	})

	t.Run("loads_values_from_existing_file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := `config_schema = 1
debug_logging = true

[steam]
install_dir = "/opt/steam"
extra_libraries = ["/mnt/games"]

[monitor]
poll_interval = 30
rate_threshold = 100000
poll_count = 5
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(content), 0o600))

		cfg, err := NewConfig(dir, BaseDefaults)

		require.NoError(t, err)
		assert.Equal(t, "/opt/steam", cfg.SteamInstallDir())
		assert.Equal(t, []string{"/mnt/games"}, cfg.ExtraLibraries())
		assert.Equal(t, 30*time.Second, cfg.PollInterval())
		assert.InDelta(t, 100_000.0, cfg.RateThreshold(), 0.001)
		assert.Equal(t, 5, cfg.PollCount())
		assert.True(t, cfg.DebugLogging())
	})

	t.Run("rejects_schema_mismatch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "config_schema = 99\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(content), 0o600))

		_, err := NewConfig(dir, BaseDefaults)

		assert.Error(t, err)
	})

	t.Run("missing_fields_keep_defaults", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "config_schema = 1\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(content), 0o600))

		cfg, err := NewConfig(dir, BaseDefaults)

		require.NoError(t, err)
		assert.Equal(t, 60*time.Second, cfg.PollInterval())
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetPollInterval(45 * time.Second)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, reloaded.PollInterval())
}
