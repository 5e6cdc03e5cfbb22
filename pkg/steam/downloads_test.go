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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeDownloadDir creates steamapps/downloading/<name> under a library root
// and pins its mtime.
func makeDownloadDir(t *testing.T, library, name string, mtime time.Time) string {
	t.Helper()
	dir := filepath.Join(library, "steamapps", "downloading", name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.Chtimes(dir, mtime, mtime))
	return dir
}

func TestActiveDownload(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("picks_most_recently_modified_entry", func(t *testing.T) {
		t.Parallel()

		lib := t.TempDir()
		makeDownloadDir(t, lib, "10", base.Add(100*time.Second))
		wantPath := makeDownloadDir(t, lib, "20", base.Add(300*time.Second))
		makeDownloadDir(t, lib, "30", base.Add(200*time.Second))
		makeDownloadDir(t, lib, "abc", base.Add(400*time.Second))

		entry, ok := ActiveDownload([]string{lib})

		require.True(t, ok)
		assert.Equal(t, "20", entry.AppID)
		assert.Equal(t, wantPath, entry.Path)
	})

	t.Run("scans_across_libraries", func(t *testing.T) {
		t.Parallel()

		first := t.TempDir()
		second := t.TempDir()
		makeDownloadDir(t, first, "10", base.Add(time.Minute))
		makeDownloadDir(t, second, "20", base.Add(time.Hour))

		entry, ok := ActiveDownload([]string{first, second})

		require.True(t, ok)
		assert.Equal(t, "20", entry.AppID)
	})

	t.Run("returns_false_when_nothing_is_downloading", func(t *testing.T) {
		t.Parallel()

		lib := t.TempDir()

		_, ok := ActiveDownload([]string{lib})

		assert.False(t, ok)
	})

	t.Run("skips_library_without_downloading_dir", func(t *testing.T) {
		t.Parallel()

		empty := t.TempDir()
		lib := t.TempDir()
		makeDownloadDir(t, lib, "10", base)

		entry, ok := ActiveDownload([]string{empty, lib})

		require.True(t, ok)
		assert.Equal(t, "10", entry.AppID)
	})

	t.Run("ignores_regular_files_in_downloading_dir", func(t *testing.T) {
		t.Parallel()

		lib := t.TempDir()
		downloading := filepath.Join(lib, "steamapps", "downloading")
		require.NoError(t, os.MkdirAll(downloading, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(downloading, "123"), []byte("x"), 0o600))

		_, ok := ActiveDownload([]string{lib})

		assert.False(t, ok)
	})
}

func TestIsAllDigits(t *testing.T) {
	t.Parallel()

	assert.True(t, isAllDigits("730"))
	assert.True(t, isAllDigits("0"))
	assert.False(t, isAllDigits(""))
	assert.False(t, isAllDigits("abc"))
	assert.False(t, isAllDigits("12a"))
	assert.False(t, isAllDigits("٣٤")) // non-ASCII digits
}
