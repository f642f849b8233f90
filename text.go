// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import "strings"

// spaceCutset is the whitespace set of the C locale. Trimming is pinned to
// this set so parsing does not vary with the ambient locale.
const spaceCutset = " \t\n\v\f\r"

func trimSpace(s string) string { return strings.Trim(s, spaceCutset) }

func trimLeftSpace(s string) string { return strings.TrimLeft(s, spaceCutset) }

func trimRightSpace(s string) string { return strings.TrimRight(s, spaceCutset) }

// replaceAll replaces every occurrence of old in s with new and reports
// whether any replacement happened. Replacements are found left to right;
// inserted text is not rescanned.
func replaceAll(s, old, new string) (string, bool) {
	if old == "" || !strings.Contains(s, old) {
		return s, false
	}
	return strings.ReplaceAll(s, old, new), true
}
