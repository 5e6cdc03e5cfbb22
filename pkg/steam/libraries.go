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
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// SteamAppsDir finds the steamapps directory under a library root.
// It checks the casing variants Steam has used over the years.
func SteamAppsDir(libraryDir string) string {
	candidates := []string{
		"steamapps",
		"SteamApps",
		"steam/steamapps",
	}

	for _, candidate := range candidates {
		path := filepath.Join(libraryDir, candidate)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}

	return filepath.Join(libraryDir, "steamapps")
}

// Libraries resolves the full set of library folders for a Steam install:
// the root itself plus every existing path named in libraryfolders.vdf,
// plus any extra roots the user configured. The result is deduplicated by
// canonical path and keeps first-seen order, so downstream lookups are
// deterministic. A missing or corrupt libraryfolders.vdf is not an error;
// it just means fewer libraries.
func Libraries(steamRoot string, extra ...string) []string {
	var libs []string
	seen := make(map[string]bool)

	add := func(dir string) {
		canonical := canonicalPath(dir)
		if seen[canonical] {
			return
		}
		seen[canonical] = true
		libs = append(libs, dir)
	}

	add(steamRoot)

	for _, dir := range registeredLibraries(steamRoot) {
		add(dir)
	}

	for _, dir := range extra {
		if _, err := os.Stat(dir); err != nil {
			log.Warn().Msgf("configured extra library not found: %s", dir)
			continue
		}
		add(dir)
	}

	return libs
}

// registeredLibraries reads additional library roots from the install's
// libraryfolders.vdf. Structural parsing is tried first; if the file is torn
// or otherwise malformed, every quoted value that exists as a directory is
// taken as a candidate instead.
func registeredLibraries(steamRoot string) []string {
	path := filepath.Join(SteamAppsDir(steamRoot), "libraryfolders.vdf")

	//nolint:gosec // Safe: reads Steam config files for library discovery
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read libraryfolders.vdf")
		return nil
	}

	p := vdf.NewParser(bytes.NewReader(data))
	m, err := p.Parse()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse libraryfolders.vdf, scanning flat pairs")
		return scanLibraryPaths(data)
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Warn().Msg("libraryfolders is not a map")
		return scanLibraryPaths(data)
	}

	var dirs []string
	for l, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			log.Debug().Msgf("library %s is not a map", l)
			continue
		}

		libraryPath, ok := ls["path"].(string)
		if !ok {
			log.Debug().Msgf("library %s path is not a string", l)
			continue
		}

		if _, err := os.Stat(libraryPath); err != nil {
			log.Debug().Msgf("library path does not exist: %s", libraryPath)
			continue
		}
		dirs = append(dirs, libraryPath)
	}
	return dirs
}

// scanLibraryPaths pulls library candidates out of raw libraryfolders.vdf
// bytes: any quoted value that exists as a directory counts.
func scanLibraryPaths(data []byte) []string {
	var dirs []string
	for _, pair := range scanQuotedPairs(data) {
		info, err := os.Stat(pair.Value)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, pair.Value)
	}
	return dirs
}

// canonicalPath resolves a path to its identity form for deduplication:
// absolute, symlinks resolved, case-folded on Windows. Resolution failures
// fall back to the cleaned absolute path so the entry is still usable.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if runtime.GOOS == "windows" {
		abs = strings.ToLower(abs)
	}
	return abs
}
