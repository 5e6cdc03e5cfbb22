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

package steam

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ActiveDownload scans every library's steamapps/downloading directory and
// returns the entry with the newest modification time, or false if nothing
// is being downloaded anywhere. Steam touches a download's directory as it
// writes incoming bytes, so the most recently touched one is the best
// available proxy for "currently active"; there is no explicit indicator on
// disk. On an exact mtime tie the first entry seen wins, which is stable for
// a fixed filesystem state because library order is deterministic and
// os.ReadDir sorts by name.
func ActiveDownload(libraries []string) (DownloadEntry, bool) {
	var best DownloadEntry
	found := false

	for _, lib := range libraries {
		downloading := filepath.Join(SteamAppsDir(lib), "downloading")

		entries, err := os.ReadDir(downloading)
		if err != nil {
			log.Debug().Err(err).Msgf("skipping download dir: %s", downloading)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || !isAllDigits(entry.Name()) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				// Directory removed between listing and stat.
				log.Debug().Err(err).Msgf("skipping download entry: %s", entry.Name())
				continue
			}

			if !found || info.ModTime().After(best.ModTime) {
				best = DownloadEntry{
					AppID:   entry.Name(),
					Path:    filepath.Join(downloading, entry.Name()),
					ModTime: info.ModTime(),
				}
				found = true
			}
		}
	}

	return best, found
}

// isAllDigits reports whether s is non-empty and contains only ASCII digits.
// Download directories are named by AppID; anything else is Steam bookkeeping.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
