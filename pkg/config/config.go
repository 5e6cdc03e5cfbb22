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

// Package config holds the user configuration for Steamwatch, stored as a
// TOML file. All values have working defaults; a missing config file is
// created on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "STEAMWATCH_CFG"
	CfgFile       = "config.toml"
	LogFile       = "steamwatch.log"
)

// Values is the serialized shape of the config file.
type Values struct {
	Steam        Steam   `toml:"steam,omitempty"`
	Monitor      Monitor `toml:"monitor,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

// Steam adjusts how the Steam installation is located.
type Steam struct {
	// InstallDir overrides platform detection of the Steam root.
	InstallDir string `toml:"install_dir,omitempty"`
	// ExtraLibraries are additional library roots to scan, for library
	// folders Steam itself has forgotten about.
	ExtraLibraries []string `toml:"extra_libraries,omitempty,multiline"`
}

// Monitor adjusts the polling loop.
type Monitor struct {
	// PollInterval is the delay between ticks, in seconds.
	PollInterval int `toml:"poll_interval"`
	// RateThreshold is the bytes/second above which a download counts as
	// actively transferring. Zero keeps the built-in default.
	RateThreshold int `toml:"rate_threshold,omitempty"`
	// PollCount stops after this many ticks when positive; zero runs
	// until interrupted.
	PollCount int `toml:"poll_count,omitempty"`
}

// BaseDefaults are the values used when no config file exists.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Monitor: Monitor{
		PollInterval: 60,
	},
}

// Instance is a live, lock-guarded view of the config.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath != "" {
		log.Debug().Msgf("env config path: %s", cfgPath)
	} else {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals

	return nil
}

func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the location of the config file on disk.
func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

// SteamInstallDir returns the configured Steam root override, or empty when
// platform detection should be used.
func (c *Instance) SteamInstallDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.InstallDir
}

// ExtraLibraries returns additional library roots to scan.
func (c *Instance) ExtraLibraries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	libs := make([]string, len(c.vals.Steam.ExtraLibraries))
	copy(libs, c.vals.Steam.ExtraLibraries)
	return libs
}

// PollInterval returns the delay between ticks.
func (c *Instance) PollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Monitor.PollInterval <= 0 {
		return time.Duration(BaseDefaults.Monitor.PollInterval) * time.Second
	}
	return time.Duration(c.vals.Monitor.PollInterval) * time.Second
}

// SetPollInterval overrides the delay between ticks.
func (c *Instance) SetPollInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Monitor.PollInterval = int(d / time.Second)
}

// RateThreshold returns the bytes/second above which a download counts as
// active, or zero when the built-in default should be used.
func (c *Instance) RateThreshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return float64(c.vals.Monitor.RateThreshold)
}

// PollCount returns how many ticks to run, zero meaning until interrupted.
func (c *Instance) PollCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Monitor.PollCount
}

// DebugLogging reports whether debug level logging is enabled.
func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}
