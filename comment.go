// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import "strings"

// defaultIsComment is the classifier used when ParseOptions.IsComment is
// nil: only ';' starts a comment.
func defaultIsComment(c rune) bool { return c == ';' }

// CommentChars returns a comment classifier that reports true for any rune
// in chars. Pass the result in ParseOptions.IsComment to accept additional
// comment markers without changing how lines are otherwise parsed:
//
//	opts := &inipp.ParseOptions{IsComment: inipp.CommentChars(";'")}
func CommentChars(chars string) func(rune) bool {
	return func(c rune) bool {
		return strings.ContainsRune(chars, c)
	}
}
