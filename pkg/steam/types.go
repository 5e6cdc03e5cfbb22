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

// Package steam reads the on-disk layout of a local Steam installation:
// the install root, its library folders, per-app manifests and the
// in-progress download directories. All reads are best-effort; a missing
// or corrupt file degrades to a smaller result instead of an error.
package steam

import (
	"errors"
	"time"
)

// ErrSteamNotFound is returned when no Steam installation could be located.
var ErrSteamNotFound = errors.New("steam installation not found")

// DownloadEntry is one in-progress download directory under a library's
// steamapps/downloading tree.
type DownloadEntry struct {
	ModTime time.Time
	AppID   string
	Path    string
}

// Options adjusts how the Steam installation is located.
type Options struct {
	// InstallDir overrides platform detection entirely when set.
	InstallDir string
	// ExtraPaths are additional candidate install roots checked after the
	// platform defaults.
	ExtraPaths []string
}
