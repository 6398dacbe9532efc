// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

/*
Package convert provides fault-tolerant string conversion helpers.

It wraps [strconv] so that malformed or empty input collapses to a zero
value (or a caller-supplied default) instead of an error. Sheet fields are
edited as raw form text, so "", "abc" and "7" all need to produce a usable
integer without surfacing a parse error to the player.

Do not use this package where malformed input must be distinguished from a
genuine zero; call [strconv] directly in that case.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parse errors.
//
// Empty or unparseable input yields 0. Negative values parse normally and
// are returned as-is.
func ToInt(s string) int {

	// Empty input short-circuits to 0
	if s == "" {
		return 0
	}

	// Unparseable input leaves v at 0
	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning def if the string is empty
// or cannot be parsed.
func ToIntD(str string, def int) int {

	// Empty input short-circuits to the default
	if str == "" {
		return def
	}

	// Only a clean parse overrides the default
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty input or parse error.
func ToBool(s string) bool {

	// Empty input short-circuits to false
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
