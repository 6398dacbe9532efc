// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinobidex/fichas-api/pkg/convert"
)

/*
TestToInt covers the fault-tolerant integer coercion used by sheet field edits.
*/
func TestToInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty_string", "", 0},
		{"garbage", "abc", 0},
		{"positive", "7", 7},
		{"negative_kept", "-3", -3},
		{"zero", "0", 0},
		{"trailing_garbage", "7x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToInt(tt.input))
		})
	}
}

/*
TestToIntD checks that the default only applies on empty or malformed input.
*/
func TestToIntD(t *testing.T) {
	assert.Equal(t, 20, convert.ToIntD("", 20))
	assert.Equal(t, 20, convert.ToIntD("twenty", 20))
	assert.Equal(t, 5, convert.ToIntD("5", 20))
	assert.Equal(t, -1, convert.ToIntD("-1", 20))
}

/*
TestToBool checks boolean parsing with the silent-false fallback.
*/
func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("false"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes please"))
}
