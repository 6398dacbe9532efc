// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package edit_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/session/edit"
)

const (
	owner     = "187.34.9.120"
	sheetID   = "018f0000-0000-7000-8000-00000000aaaa"
	sessionID = "browser-session-1"
)

// memStore is an in-memory edit.Store.
type memStore struct {
	sessions map[string]*edit.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*edit.Session{}}
}

func (store *memStore) Load(_ context.Context, id string) (*edit.Session, error) {
	session, ok := store.sessions[id]
	if !ok {
		return nil, apperr.NotFound("Edit session")
	}
	copied := *session
	return &copied, nil
}

func (store *memStore) Save(_ context.Context, id string, session *edit.Session) error {
	copied := *session
	store.sessions[id] = &copied
	return nil
}

func (store *memStore) Delete(_ context.Context, id string) error {
	delete(store.sessions, id)
	return nil
}

// sheetRepo is an in-memory character.Repository with a switchable
// update failure.
type sheetRepo struct {
	sheets    map[string]*character.Character
	updateErr error
}

func newSheetRepo(sheets ...*character.Character) *sheetRepo {
	repo := &sheetRepo{sheets: map[string]*character.Character{}}
	for _, sheet := range sheets {
		repo.sheets[sheet.ID] = sheet
	}
	return repo
}

func (repo *sheetRepo) ListCharacters(_ context.Context, _, _ int) ([]*character.Character, int, error) {
	return nil, 0, nil
}

func (repo *sheetRepo) GetCharacter(_ context.Context, id string) (*character.Character, error) {
	sheet, ok := repo.sheets[id]
	if !ok {
		return nil, apperr.NotFound("Ficha")
	}
	copied := *sheet
	return &copied, nil
}

func (repo *sheetRepo) CreateCharacter(_ context.Context, _ *character.Character) error { return nil }

func (repo *sheetRepo) UpdateCharacter(_ context.Context, sheet *character.Character) error {
	if repo.updateErr != nil {
		return repo.updateErr
	}
	copied := *sheet
	repo.sheets[sheet.ID] = &copied
	return nil
}

func (repo *sheetRepo) DeleteCharacter(_ context.Context, _ string) error { return nil }

func newService(repo *sheetRepo) (*edit.Service, *memStore) {
	characters := character.NewService(repo, identity.NewAllowlist(nil), slog.Default())
	store := newMemStore()
	return edit.NewService(store, characters, slog.Default()), store
}

func existingSheet() *character.Character {
	return &character.Character{
		ID:        sheetID,
		IPAddress: owner,
		Nome:      "Kakashi",
		Vida:      80,
		VidaMax:   100,
	}
}

/*
TestService_Begin_SnapshotsSheet captures a working copy for the owner and
refuses strangers.
*/
func TestService_Begin_SnapshotsSheet(t *testing.T) {
	repo := newSheetRepo(existingSheet())
	service, store := newService(repo)

	session, err := service.Begin(context.Background(), owner, sessionID, sheetID)
	require.NoError(t, err)
	assert.Equal(t, sheetID, session.CharacterID)
	assert.Equal(t, "Kakashi", session.Sheet.Nome)
	assert.Contains(t, store.sessions, sessionID)

	_, err = service.Begin(context.Background(), "198.51.100.7", "other-session", sheetID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

/*
TestService_SetField_CoercesAndIsolates mutates only the working copy,
with fault-tolerant numeric coercion.
*/
func TestService_SetField_CoercesAndIsolates(t *testing.T) {
	repo := newSheetRepo(existingSheet())
	service, _ := newService(repo)

	_, err := service.Begin(context.Background(), owner, sessionID, sheetID)
	require.NoError(t, err)

	session, err := service.SetField(context.Background(), sessionID, "vida", "abc")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Sheet.Vida) // garbage → 0

	session, err = service.SetField(context.Background(), sessionID, "chakra", "-3")
	require.NoError(t, err)
	assert.Equal(t, -3, session.Sheet.Chakra)

	session, err = service.SetField(context.Background(), sessionID, "nome", "Hatake Kakashi")
	require.NoError(t, err)
	assert.Equal(t, "Hatake Kakashi", session.Sheet.Nome)

	// The stored record is untouched until commit.
	assert.Equal(t, 80, repo.sheets[sheetID].Vida)
	assert.Equal(t, "Kakashi", repo.sheets[sheetID].Nome)

	// Unknown fields are rejected, session intact.
	_, err = service.SetField(context.Background(), sessionID, "poder", "1")
	require.Error(t, err)
	current, err := service.Current(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Hatake Kakashi", current.Sheet.Nome)
}

/*
TestService_Commit_WritesBackAndEndsSession performs the full-record
update and removes the session.
*/
func TestService_Commit_WritesBackAndEndsSession(t *testing.T) {
	repo := newSheetRepo(existingSheet())
	service, store := newService(repo)

	_, err := service.Begin(context.Background(), owner, sessionID, sheetID)
	require.NoError(t, err)
	_, err = service.SetField(context.Background(), sessionID, "vida", "95")
	require.NoError(t, err)

	view, err := service.Commit(context.Background(), owner, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 95, view.Vida)
	assert.Equal(t, 95, view.VidaPercent)

	assert.Equal(t, 95, repo.sheets[sheetID].Vida)
	assert.NotContains(t, store.sessions, sessionID)
}

/*
TestService_Commit_FailurePreservesSession keeps the working copy when the
store write fails, so the player can retry.
*/
func TestService_Commit_FailurePreservesSession(t *testing.T) {
	repo := newSheetRepo(existingSheet())
	service, store := newService(repo)

	_, err := service.Begin(context.Background(), owner, sessionID, sheetID)
	require.NoError(t, err)
	_, err = service.SetField(context.Background(), sessionID, "vida", "95")
	require.NoError(t, err)

	repo.updateErr = errors.New("connection refused")
	_, err = service.Commit(context.Background(), owner, sessionID)
	require.Error(t, err)

	// Session survives with the pending change.
	assert.Contains(t, store.sessions, sessionID)
	current, err := service.Current(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 95, current.Sheet.Vida)

	// Stored record unchanged.
	assert.Equal(t, 80, repo.sheets[sheetID].Vida)
}

/*
TestService_Cancel_Discards drops the working copy without touching the
stored record.
*/
func TestService_Cancel_Discards(t *testing.T) {
	repo := newSheetRepo(existingSheet())
	service, store := newService(repo)

	_, err := service.Begin(context.Background(), owner, sessionID, sheetID)
	require.NoError(t, err)
	_, err = service.SetField(context.Background(), sessionID, "vida", "1")
	require.NoError(t, err)

	require.NoError(t, service.Cancel(context.Background(), sessionID))

	assert.NotContains(t, store.sessions, sessionID)
	assert.Equal(t, 80, repo.sheets[sheetID].Vida)

	_, err = service.Current(context.Background(), sessionID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
