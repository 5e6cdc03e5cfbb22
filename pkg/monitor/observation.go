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

import (
	"fmt"
	"time"
)

// Observation is the result of one polling tick. Exactly one is emitted per
// tick; Active is false when no download was found anywhere.
type Observation struct {
	Time   time.Time
	AppID  string
	Name   string
	State  State
	Rate   float64 // bytes per second
	Active bool
}

// String renders the observation in the one-line report format:
//
//	[15:04:05] Half-Life 3 | DOWNLOADING | 12.34 MB/s
//	[15:04:05] No active downloads
func (o Observation) String() string {
	ts := o.Time.Format("15:04:05")
	if !o.Active {
		return fmt.Sprintf("[%s] No active downloads", ts)
	}
	return fmt.Sprintf("[%s] %s | %s | %s", ts, o.Name, o.State, FormatRate(o.Rate))
}

// FormatRate renders a bytes/second rate as megabytes per second.
func FormatRate(bytesPerSecond float64) string {
	return fmt.Sprintf("%.2f MB/s", bytesPerSecond/1024/1024)
}
