package edit

import (
	"context"
	"log/slog"

	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
)

type Service struct {
	store      Store
	characters *character.Service
	logger     *slog.Logger
}

func NewService(store Store, characters *character.Service, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		characters: characters,
		logger:     logger,
	}
}

// Begin snapshots the sheet into a working copy, capability-checked.
//
// A session holds at most one pending edit; beginning a new one replaces
// any previous working copy.
func (service *Service) Begin(context context.Context, caller, sessionID, characterID string) (*Session, error) {
	view, err := service.characters.GetCharacter(context, caller, characterID)
	if err != nil {
		return nil, err
	}

	if !view.IsOwner {
		return nil, apperr.Forbidden("You do not own this sheet")
	}

	session := &Session{
		CharacterID: characterID,
		Sheet:       view.Character,
	}
	if err := service.store.Save(context, sessionID, session); err != nil {
		return nil, err
	}

	service.logger.Info("edit_session_started",
		slog.String("sheet_id", characterID),
		slog.String("session_id", sessionID),
	)
	return session, nil
}

// Current returns the pending edit, if any.
func (service *Service) Current(context context.Context, sessionID string) (*Session, error) {
	return service.store.Load(context, sessionID)
}

// SetField applies one raw form value to the working copy.
//
// Numeric fields coerce fault-tolerantly (empty or garbage becomes 0,
// negatives kept); text fields store the value verbatim. The stored record
// is untouched until commit.
func (service *Service) SetField(context context.Context, sessionID, field, value string) (*Session, error) {
	session, err := service.store.Load(context, sessionID)
	if err != nil {
		return nil, err
	}

	if err := character.ApplyField(&session.Sheet, field, value); err != nil {
		return nil, err
	}

	if err := service.store.Save(context, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Commit writes the working copy back as a full-record update and ends
// the session. On failure the session and working copy stay intact, so
// the player can fix the input and retry.
func (service *Service) Commit(context context.Context, caller, sessionID string) (*character.View, error) {
	session, err := service.store.Load(context, sessionID)
	if err != nil {
		return nil, err
	}

	sheet := session.Sheet
	if err := service.characters.UpdateCharacter(context, caller, session.CharacterID, &sheet); err != nil {
		return nil, err
	}

	if err := service.store.Delete(context, sessionID); err != nil {
		// The update landed; a lingering session blob only risks a stale
		// re-commit, and the TTL bounds that.
		service.logger.Warn("edit_session_cleanup_failed",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("edit_session_committed",
		slog.String("sheet_id", session.CharacterID),
		slog.String("session_id", sessionID),
	)
	return character.NewView(&sheet, true), nil
}

// Cancel discards the working copy unconditionally.
func (service *Service) Cancel(context context.Context, sessionID string) error {
	if err := service.store.Delete(context, sessionID); err != nil {
		return err
	}

	service.logger.Info("edit_session_cancelled", slog.String("session_id", sessionID))
	return nil
}
