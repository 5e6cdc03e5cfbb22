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

	"github.com/rs/zerolog/log"
)

// FindSteamDir locates the Steam installation root. A user-configured
// directory always wins; otherwise the platform-specific candidates are
// checked in order. Returns ErrSteamNotFound when nothing exists, which is
// fatal for callers: there is nothing to monitor without an install root.
func FindSteamDir(opts Options) (string, error) {
	if opts.InstallDir != "" {
		if _, err := os.Stat(opts.InstallDir); err == nil {
			log.Debug().Msgf("using user-configured Steam directory: %s", opts.InstallDir)
			return opts.InstallDir, nil
		}
		log.Warn().Msgf("user-configured Steam directory not found: %s", opts.InstallDir)
	}

	paths := steamDirCandidates()
	paths = append(paths, opts.ExtraPaths...)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path, nil
		}
	}

	return "", ErrSteamNotFound
}
