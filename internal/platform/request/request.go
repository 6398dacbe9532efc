// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/constants"
	"github.com/shinobidex/fichas-api/internal/platform/ctxutil"
	"github.com/shinobidex/fichas-api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Caller returns the resolved caller IP token for the request.

The identity middleware always stores a value, falling back to the literal
"unknown" when nothing could be resolved, so this never fails.
*/
func Caller(request *http.Request) string {
	caller := ctxutil.GetCaller(request.Context())
	if caller == "" {
		return constants.UnknownCaller
	}
	return caller
}

/*
SessionID returns the client session identifier from the X-Session-ID header.

Window layout and pending sheet edits are scoped to this identifier.

Returns:
  - string: The session identifier
  - error: apperr.ValidationError if the header is missing
*/
func SessionID(request *http.Request) (string, error) {
	sessionID := request.Header.Get(constants.HeaderXSessionID)
	if sessionID == "" {
		return "", apperr.ValidationError("Missing " + constants.HeaderXSessionID + " header")
	}
	return sessionID, nil
}
