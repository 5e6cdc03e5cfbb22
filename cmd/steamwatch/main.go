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

// Steamwatch watches a local Steam installation and reports which app is
// downloading and how fast, by reading Steam's library folders on disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/SteamwatchProject/steamwatch/pkg/config"
	"github.com/SteamwatchProject/steamwatch/pkg/helpers"
	"github.com/SteamwatchProject/steamwatch/pkg/monitor"
	"github.com/SteamwatchProject/steamwatch/pkg/steam"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

const appName = "steamwatch"

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	interval := flag.Duration(
		"interval",
		0,
		"override the poll interval (e.g. 30s)",
	)
	once := flag.Bool(
		"once",
		false,
		"sample once and exit",
	)
	quiet := flag.Bool(
		"quiet",
		false,
		"log to file only, print observations to stdout",
	)
	flag.Parse()

	cfg, err := config.NewConfig(filepath.Join(xdg.ConfigHome, appName), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	var logWriters []io.Writer
	if !*quiet {
		logWriters = []io.Writer{os.Stderr}
	}
	logDir := filepath.Join(xdg.StateHome, appName)
	if err := helpers.InitLogging(cfg, logDir, logWriters); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}

	steamRoot, err := steam.FindSteamDir(steam.Options{
		InstallDir: cfg.SteamInstallDir(),
	})
	if err != nil {
		return err
	}
	log.Info().Msgf("monitoring Steam installation: %s", steamRoot)

	libraries := steam.Libraries(steamRoot, cfg.ExtraLibraries()...)
	log.Debug().Strs("libraries", libraries).Msg("resolved library folders")

	pollInterval := cfg.PollInterval()
	if *interval > 0 {
		pollInterval = *interval
	}
	maxTicks := cfg.PollCount()
	if *once {
		maxTicks = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	m := monitor.New(monitor.Config{
		Libraries:     libraries,
		Interval:      pollInterval,
		RateThreshold: cfg.RateThreshold(),
		MaxTicks:      maxTicks,
	}, nil, func(o monitor.Observation) {
		fmt.Println(o)
	})

	m.Run(ctx)

	return nil
}
