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
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
)

// DirSize returns the total size in bytes of all regular files under path,
// including nested subdirectories. Steam is actively writing the tree while
// we measure it, so entries that error or vanish mid-walk contribute zero
// instead of failing the measurement.
func DirSize(path string) int64 {
	var total atomic.Int64

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Msgf("skipping dir size entry: %s", p)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// File removed between enumeration and stat.
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Msgf("dir size walk failed: %s", path)
	}

	return total.Load()
}
