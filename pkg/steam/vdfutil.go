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
	"regexp"
	"strings"

	"github.com/andygrunwald/vdf"
)

// normalizeVDFKeys recursively lowercases all keys in a map[string]any tree.
// Valve's VDF format is case-insensitive, but Go maps use exact string matching.
// This normalizes keys at parse time so all lookups can use lowercase consistently.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// flattenVDF collapses a parsed VDF tree into a flat string map, discarding
// nesting. When the same key appears in more than one scope the value seen
// last wins; callers that care about every occurrence should use
// scanQuotedPairs instead.
func flattenVDF(m map[string]any) map[string]string {
	flat := make(map[string]string, len(m))
	flattenInto(m, flat)
	return flat
}

func flattenInto(m map[string]any, flat map[string]string) {
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			flattenInto(val, flat)
		case string:
			flat[k] = val
		}
	}
}

// quotedPairRegex matches a "key" "value" pair on a single logical line.
// It intentionally ignores all structural tokens (braces, nesting) so it can
// pull pairs out of torn or otherwise malformed files.
var quotedPairRegex = regexp.MustCompile(`"([^"]+)"\s*"([^"]*)"`)

// KeyValue is one quoted key/value pair in file order.
type KeyValue struct {
	Key   string
	Value string
}

// scanQuotedPairs extracts every "key" "value" pair from data, in order of
// appearance, without interpreting any surrounding structure. Steam rewrites
// its VDF files while downloads are in flight, so a file can fail structural
// parsing and still contain usable pairs.
func scanQuotedPairs(data []byte) []KeyValue {
	matches := quotedPairRegex.FindAllSubmatch(data, -1)
	pairs := make([]KeyValue, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, KeyValue{Key: string(m[1]), Value: string(m[2])})
	}
	return pairs
}

// ParseKeyValues parses data as VDF and returns its pairs as a flat,
// lowercase-keyed string map. A duplicate key keeps the last occurrence.
// Malformed input is not an error: parsing falls back to a plain quoted-pair
// scan, and at worst the result is an empty map.
func ParseKeyValues(data []byte) map[string]string {
	p := vdf.NewParser(bytes.NewReader(data))
	m, err := p.Parse()
	if err == nil {
		return flattenVDF(normalizeVDFKeys(m))
	}

	flat := make(map[string]string)
	for _, pair := range scanQuotedPairs(data) {
		flat[strings.ToLower(pair.Key)] = pair.Value
	}
	return flat
}
