package edit

import "context"

// Store persists at most one pending edit per session id.
type Store interface {
	// Load returns the session's pending edit, or apperr.NotFound if there
	// is none (never started, cancelled, committed, or expired).
	Load(context context.Context, sessionID string) (*Session, error)
	Save(context context.Context, sessionID string, session *Session) error
	Delete(context context.Context, sessionID string) error
}
