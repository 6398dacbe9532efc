// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package identity_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinobidex/fichas-api/internal/identity"
)

/*
TestAllowlist_CanEdit covers owner match, admin override, and rejection.
*/
func TestAllowlist_CanEdit(t *testing.T) {
	allowlist := identity.NewAllowlist([]string{"10.0.0.9", "203.0.113.50"})

	tests := []struct {
		name  string
		token string
		owner string
		want  bool
	}{
		{"owner_match", "187.34.9.120", "187.34.9.120", true},
		{"admin_override", "10.0.0.9", "187.34.9.120", true},
		{"stranger", "198.51.100.7", "187.34.9.120", false},
		{"unknown_matches_unknown", "unknown", "unknown", true},
		{"unknown_vs_owner", "unknown", "187.34.9.120", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allowlist.CanEdit(tt.token, tt.owner))
		})
	}
}

/*
TestAllowlist_Empty ensures an empty configuration grants nothing.
*/
func TestAllowlist_Empty(t *testing.T) {
	allowlist := identity.NewAllowlist(nil)
	assert.False(t, allowlist.IsAdmin("10.0.0.9"))
	assert.False(t, allowlist.CanEdit("a", "b"))
}

/*
TestResolver_HeaderChain checks the primary resolution path.
*/
func TestResolver_HeaderChain(t *testing.T) {
	resolver := identity.NewResolver("http://127.0.0.1:0/never", slog.Default())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Real-IP", "187.34.9.120")
	assert.Equal(t, "187.34.9.120", resolver.Resolve(request))

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Forwarded-For", "203.0.113.50, 10.0.0.1")
	assert.Equal(t, "203.0.113.50", resolver.Resolve(request))

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.33:4444"
	assert.Equal(t, "192.0.2.33", resolver.Resolve(request))
}

/*
TestResolver_EchoFallback exercises the secondary what-is-my-IP lookup and
the terminal "unknown" fallback.
*/
func TestResolver_EchoFallback(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"ip":"198.51.100.200"}`))
	}))
	defer echo.Close()

	resolver := identity.NewResolver(echo.URL, slog.Default())

	// No headers and no host:port remote address → echo service wins.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = ""
	assert.Equal(t, "198.51.100.200", resolver.Resolve(request))

	// Dead echo service → terminal fallback.
	dead := identity.NewResolver("http://127.0.0.1:1/ip", slog.Default())
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = ""
	assert.Equal(t, "unknown", dead.Resolve(request))
}
