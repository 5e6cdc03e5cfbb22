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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LookupAppName finds the display name of an app by checking each library
// for its manifest, in library order. Returns the name and true on the first
// manifest that yields one, or empty string and false if no library has it.
func LookupAppName(appID string, libraries []string) (string, bool) {
	for _, lib := range libraries {
		manifestPath := filepath.Join(SteamAppsDir(lib), fmt.Sprintf("appmanifest_%s.acf", appID))

		//nolint:gosec // Safe: reads Steam manifest files, appID is digits only
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			log.Debug().Err(err).Str("appID", appID).Msg("failed to read app manifest")
			continue
		}

		// Manifests mid-download are frequently incomplete; ParseKeyValues
		// degrades to a flat pair scan rather than failing.
		if name, ok := ParseKeyValues(data)["name"]; ok && name != "" {
			return name, true
		}
		log.Debug().Str("appID", appID).Msg("name not found in manifest")
	}
	return "", false
}

// AppName resolves the display name for an app, falling back to a
// synthesized "AppID <id>" string when no manifest in any library has one.
func AppName(appID string, libraries []string) string {
	if name, ok := LookupAppName(appID, libraries); ok {
		return name
	}
	return FormatAppName(appID, "")
}

// FormatAppName returns a formatted app name for display.
// If the name is known, returns it; otherwise returns "AppID <id>".
func FormatAppName(appID, name string) string {
	if name != "" {
		return name
	}
	return "AppID " + appID
}
