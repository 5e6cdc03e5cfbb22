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

package monitor

import "time"

// DefaultRateThreshold is the minimum bytes/second that counts as genuine
// transfer activity. Metadata touches and verification writes produce a
// small nonzero rate even when nothing is downloading, so the threshold
// must sit well above filesystem noise.
const DefaultRateThreshold = 50_000

// minElapsedSeconds floors the elapsed time between two samples to guard
// against division by zero and clock anomalies.
const minElapsedSeconds = 1e-6

// State classifies the activity of the tracked download.
type State string

const (
	StateDownloading State = "DOWNLOADING"
	StatePaused      State = "PAUSED"
)

// Rate computes throughput in bytes/second between two size samples.
// A shrinking size (file removal mid-download, verification passes) clamps
// to zero rather than reporting negative throughput.
func Rate(prevSize, curSize int64, prevTime, curTime time.Time) float64 {
	delta := curSize - prevSize
	if delta < 0 {
		delta = 0
	}

	elapsed := curTime.Sub(prevTime).Seconds()
	if elapsed < minElapsedSeconds {
		elapsed = minElapsedSeconds
	}

	return float64(delta) / elapsed
}

// Classify maps a rate to an activity state. The threshold is exclusive:
// a rate exactly at the threshold is PAUSED. A threshold of zero or below
// selects DefaultRateThreshold.
func Classify(rate, threshold float64) State {
	if threshold <= 0 {
		threshold = DefaultRateThreshold
	}
	if rate > threshold {
		return StateDownloading
	}
	return StatePaused
}

// Tracker carries the previous size sample between polling ticks. It is
// scoped to a single app: when the active app changes, or nothing was active
// on the previous tick, the stored sample is discarded so a rate is never
// computed across two different downloads. Tracker is owned by one polling
// loop and is not safe for concurrent use.
type Tracker struct {
	prevTime time.Time
	appID    string
	prevSize int64
	hasPrev  bool
}

// Observe records a size sample for appID taken at now and returns the rate
// for this tick. The first sample for an app is a baseline and reports zero.
func (t *Tracker) Observe(appID string, size int64, now time.Time) float64 {
	rate := 0.0
	if t.hasPrev && t.appID == appID {
		rate = Rate(t.prevSize, size, t.prevTime, now)
	}

	t.appID = appID
	t.prevSize = size
	t.prevTime = now
	t.hasPrev = true

	return rate
}

// Reset discards the stored sample. Called when no download is active so a
// later reappearance starts from a fresh baseline.
func (t *Tracker) Reset() {
	t.hasPrev = false
	t.appID = ""
}
