// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinobidex/fichas-api/pkg/sanitize"
)

/*
TestToken checks IP tokens, accented input, and already-safe strings.
*/
func TestToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ipv4", "187.34.9.120", "187_34_9_120"},
		{"ipv6", "2001:db8::1", "2001_db8__1"},
		{"accents", "Fūinjutsu Avançado", "Fuinjutsu_Avancado"},
		{"already_safe", "unknown", "unknown"},
		{"hyphen_kept", "node-7", "node-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Token(tt.input))
		})
	}
}
