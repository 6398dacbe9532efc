package window

import (
	"context"
	"log/slog"
)

// Service wraps every window operation in a load-mutate-save cycle.
//
// Sessions are single-browser by construction, so last-write-wins on the
// Redis blob is acceptable; there is no cross-session contention to manage.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Snapshot returns the session's current arrangement.
func (service *Service) Snapshot(context context.Context, sessionID string) (*State, error) {
	return service.store.Load(context, sessionID)
}

// SetTouch marks the session as touch- or pointer-driven.
func (service *Service) SetTouch(context context.Context, sessionID string, touch bool) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.Touch = touch
		if touch {
			state.Drag = nil
		}
		return nil
	})
}

func (service *Service) Open(context context.Context, sessionID, jutsuID string) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.Open(jutsuID)
		return nil
	})
}

func (service *Service) Minimize(context context.Context, sessionID, jutsuID string) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.Minimize(jutsuID)
		return nil
	})
}

func (service *Service) Close(context context.Context, sessionID, jutsuID string) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.Close(jutsuID)
		return nil
	})
}

func (service *Service) CloseMinimized(context context.Context, sessionID, jutsuID string) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.CloseMinimized(jutsuID)
		return nil
	})
}

func (service *Service) StartDrag(context context.Context, sessionID, jutsuID string, pointer Position) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		_, err := state.StartDrag(jutsuID, pointer)
		return err
	})
}

func (service *Service) MoveDrag(context context.Context, sessionID string, pointer Position) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.MoveDrag(pointer)
		return nil
	})
}

func (service *Service) EndDrag(context context.Context, sessionID string) (*State, error) {
	return service.mutate(context, sessionID, func(state *State) error {
		state.EndDrag()
		return nil
	})
}

func (service *Service) mutate(context context.Context, sessionID string, apply func(*State) error) (*State, error) {
	state, err := service.store.Load(context, sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(state); err != nil {
		return nil, err
	}

	if err := service.store.Save(context, sessionID, state); err != nil {
		service.logger.Warn("window_state_save_failed",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return state, nil
}
