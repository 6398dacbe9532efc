package window

import (
	"context"

	"github.com/shinobidex/fichas-api/internal/platform/apperr"
)

var (
	// ErrDragInProgress rejects a second drag while one is live.
	ErrDragInProgress = apperr.Conflict("A drag is already in progress")
	// ErrWindowNotOpen rejects dragging a closed or minimized window.
	ErrWindowNotOpen = apperr.Unprocessable("Window is not open")
)

// Store persists window arrangements per session id.
type Store interface {
	// Load returns the session's arrangement, or a fresh empty one if the
	// session has none (or it expired).
	Load(context context.Context, sessionID string) (*State, error)
	Save(context context.Context, sessionID string, state *State) error
}
