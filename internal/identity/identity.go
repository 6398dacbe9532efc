// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

/*
Package identity resolves and authorizes callers without accounts.

The system deliberately has no login: a caller is identified by the IP
string observed when a record was created (its "owner token"). A fixed
allow-list of tokens, injected from configuration at process start, grants
admin rights over every record.

This is weak identity — shared NAT and dynamic addressing make it spoofable
and unstable. It is a documented product decision, not a security boundary.
*/
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shinobidex/fichas-api/internal/platform/constants"
	"github.com/shinobidex/fichas-api/internal/platform/middleware"
)

// echoTimeout bounds the secondary what-is-my-IP lookup so a dead echo
// service cannot stall request handling.
const echoTimeout = 2 * time.Second

// Resolver produces the caller token for a request.
//
// # Resolution Chain
//
//  1. Proxy headers / remote address (primary).
//  2. Public IP echo service (secondary, only when the request itself
//     carries no usable address — e.g. unix socket or stripped proxy).
//  3. The literal "unknown" (terminal).
type Resolver struct {
	echoURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewResolver builds a Resolver with the configured echo service URL.
func NewResolver(echoURL string, logger *slog.Logger) *Resolver {
	return &Resolver{
		echoURL:    echoURL,
		httpClient: &http.Client{Timeout: echoTimeout},
		logger:     logger,
	}
}

// Resolve returns the caller token for the request. It never fails; the
// worst case is the "unknown" token.
func (resolver *Resolver) Resolve(request *http.Request) string {

	// 1. The request itself
	if ip := middleware.RealIP(request); ip != "" {
		return ip
	}

	// 2. Public echo service
	if ip, err := resolver.echo(request.Context()); err == nil {
		return ip
	} else {
		resolver.logger.Warn("ip_echo_lookup_failed", slog.Any("error", err))
	}

	// 3. Terminal fallback
	return constants.UnknownCaller
}

// echo queries the configured what-is-my-IP service.
//
// The service is expected to answer {"ip": "..."} (ipify-compatible).
func (resolver *Resolver) echo(context context.Context) (string, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, resolver.echoURL, nil)
	if err != nil {
		return "", fmt.Errorf("identity: bad echo URL: %w", err)
	}

	response, err := resolver.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("identity: echo request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity: echo service returned %d", response.StatusCode)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("identity: echo payload undecodable: %w", err)
	}

	if payload.IP == "" {
		return "", fmt.Errorf("identity: echo service returned empty ip")
	}

	return payload.IP, nil
}

// Allowlist is the set of admin tokens, loaded once from configuration.
//
// Rotation requires a restart with a new ADMIN_TOKENS value, never a rebuild.
type Allowlist struct {
	tokens map[string]struct{}
}

// NewAllowlist builds an Allowlist from the configured token slice.
func NewAllowlist(tokens []string) Allowlist {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if token != "" {
			set[token] = struct{}{}
		}
	}
	return Allowlist{tokens: set}
}

// IsAdmin reports whether token is on the allow-list.
func (allowlist Allowlist) IsAdmin(token string) bool {
	_, ok := allowlist.tokens[token]
	return ok
}

// CanEdit reports whether token may mutate a record owned by ownerToken.
//
// True iff the token matches the owner or is an admin. Two "unknown"
// callers match each other — an accepted consequence of the weak identity
// model.
func (allowlist Allowlist) CanEdit(token, ownerToken string) bool {
	return token == ownerToken || allowlist.IsAdmin(token)
}
