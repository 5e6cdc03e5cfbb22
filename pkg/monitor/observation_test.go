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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObservationString(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 1, 15, 4, 5, 0, time.UTC)

	t.Run("renders_active_download", func(t *testing.T) {
		t.Parallel()

		o := Observation{
			Time:   at,
			AppID:  "730",
			Name:   "Counter-Strike 2",
			State:  StateDownloading,
			Rate:   1_048_576,
			Active: true,
		}

		assert.Equal(t, "[15:04:05] Counter-Strike 2 | DOWNLOADING | 1.00 MB/s", o.String())
	})

	t.Run("renders_no_active_downloads", func(t *testing.T) {
		t.Parallel()

		o := Observation{Time: at}

		assert.Equal(t, "[15:04:05] No active downloads", o.String())
	})
}

func TestFormatRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00 MB/s", FormatRate(0))
	assert.Equal(t, "1.00 MB/s", FormatRate(1024*1024))
	assert.Equal(t, "12.34 MB/s", FormatRate(12.34*1024*1024))
}
