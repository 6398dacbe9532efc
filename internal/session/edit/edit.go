// Package edit implements the sheet edit session: a server-held working
// copy of one character sheet per client session.
//
// Field changes land on the working copy only; the stored record changes
// on commit, as one full-record update. Cancel (or session expiry) discards
// everything.
package edit

import "github.com/shinobidex/fichas-api/internal/core/character"

// Session is one pending edit.
type Session struct {
	CharacterID string              `json:"character_id"`
	Sheet       character.Character `json:"sheet"`
}

// FieldInput is the request body for a single working-copy field change.
// Value is always the raw form string; numeric fields coerce on apply.
type FieldInput struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
