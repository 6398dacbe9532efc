// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

// Package sanitize converts arbitrary identity tokens into storage-safe
// ASCII strings.
//
// # Usage
//
// Owner tokens are raw IP strings (e.g. "187.34.9.120") and end up embedded
// in object-storage keys. This package handles accent removal and character
// substitution so a token is always a valid key fragment.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token converts s into a storage-key-safe fragment.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Replaces every character outside [A-Za-z0-9-] with an underscore.
//
// Dots map to underscores, so "187.34.9.120" becomes "187_34_9_120" —
// matching the key shape the frontend has always produced.
func Token(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Substitute everything that is not key-safe
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, result)

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
