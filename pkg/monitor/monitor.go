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

// Package monitor estimates Steam download throughput by sampling the size
// of the active download directory across polling ticks and classifying the
// resulting rate as downloading or paused.
package monitor

import (
	"context"
	"time"

	"github.com/SteamwatchProject/steamwatch/pkg/steam"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is how often the libraries are scanned when the
// config does not say otherwise.
const DefaultPollInterval = 60 * time.Second

// EmitFunc receives the observation produced by each tick.
type EmitFunc func(Observation)

// Config adjusts a Monitor.
type Config struct {
	// Libraries are the resolved Steam library roots to scan.
	Libraries []string
	// Interval between ticks. Zero selects DefaultPollInterval.
	Interval time.Duration
	// RateThreshold in bytes/second above which a download counts as
	// active. Zero selects DefaultRateThreshold.
	RateThreshold float64
	// MaxTicks stops the loop after this many ticks when positive.
	// Zero runs until the context is cancelled.
	MaxTicks int
}

// Monitor polls the Steam libraries for the active download and emits one
// Observation per tick. Ticks are strictly sequential; all state lives in
// the embedded Tracker and is never shared.
type Monitor struct {
	clock   clockwork.Clock
	emit    EmitFunc
	cfg     Config
	tracker Tracker
}

// New creates a Monitor. A nil clock selects the real clock; tests pass a
// fake one to drive ticks deterministically.
func New(cfg Config, clock clockwork.Clock, emit EmitFunc) *Monitor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	return &Monitor{
		cfg:   cfg,
		clock: clock,
		emit:  emit,
	}
}

// Run ticks immediately, then once per interval, until the context is
// cancelled or MaxTicks is reached.
func (m *Monitor) Run(ctx context.Context) {
	log.Info().
		Int("libraries", len(m.cfg.Libraries)).
		Dur("interval", m.cfg.Interval).
		Msg("download monitor started")

	ticks := 0
	for {
		m.Tick()

		ticks++
		if m.cfg.MaxTicks > 0 && ticks >= m.cfg.MaxTicks {
			log.Info().Int("ticks", ticks).Msg("download monitor finished")
			return
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("download monitor stopped")
			return
		case <-m.clock.After(m.cfg.Interval):
		}
	}
}

// Tick performs one detection-and-measurement pass and emits exactly one
// observation. The sample timestamp is taken with the size measurement, not
// at detection, so the next tick's elapsed time is not inflated by detection
// latency.
func (m *Monitor) Tick() {
	entry, ok := steam.ActiveDownload(m.cfg.Libraries)
	if !ok {
		m.tracker.Reset()
		m.emit(Observation{Time: m.clock.Now()})
		return
	}

	size := DirSize(entry.Path)
	now := m.clock.Now()
	rate := m.tracker.Observe(entry.AppID, size, now)

	name := steam.AppName(entry.AppID, m.cfg.Libraries)

	log.Debug().
		Str("appID", entry.AppID).
		Int64("size", size).
		Float64("rate", rate).
		Msg("sampled active download")

	m.emit(Observation{
		Time:   now,
		AppID:  entry.AppID,
		Name:   name,
		State:  Classify(rate, m.cfg.RateThreshold),
		Rate:   rate,
		Active: true,
	})
}
