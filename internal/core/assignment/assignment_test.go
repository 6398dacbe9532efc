// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package assignment_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinobidex/fichas-api/internal/core/ability"
	"github.com/shinobidex/fichas-api/internal/core/assignment"
	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
)

const (
	sheetID = "018f0000-0000-7000-8000-00000000aaaa"
	jutsuA  = "018f0000-0000-7000-8000-00000000bbbb"
	jutsuB  = "018f0000-0000-7000-8000-00000000cccc"
)

// stubLinkRepo keeps the link set in memory.
type stubLinkRepo struct {
	links   map[string][]string
	byID    map[string]*ability.Ability
	listErr error
}

func newStubLinkRepo() *stubLinkRepo {
	return &stubLinkRepo{
		links: map[string][]string{},
		byID: map[string]*ability.Ability{
			jutsuA: {ID: jutsuA, Nome: "Ninjutsu: Bola de Fogo"},
			jutsuB: {ID: jutsuB, Nome: "Rasengan"},
		},
	}
}

func (stub *stubLinkRepo) ListLinked(_ context.Context, characterID string) ([]*ability.Ability, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	var out []*ability.Ability
	for _, id := range stub.links[characterID] {
		copied := *stub.byID[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (stub *stubLinkRepo) ReplaceLinks(_ context.Context, characterID string, jutsuIDs []string) error {
	stub.links[characterID] = append([]string(nil), jutsuIDs...)
	return nil
}

// stubSheetRepo serves one sheet for capability checks.
type stubSheetRepo struct {
	sheet *character.Character
}

func (stub *stubSheetRepo) ListCharacters(_ context.Context, _, _ int) ([]*character.Character, int, error) {
	return nil, 0, nil
}
func (stub *stubSheetRepo) GetCharacter(_ context.Context, id string) (*character.Character, error) {
	if stub.sheet != nil && stub.sheet.ID == id {
		return stub.sheet, nil
	}
	return nil, apperr.NotFound("Ficha")
}
func (stub *stubSheetRepo) CreateCharacter(_ context.Context, _ *character.Character) error { return nil }
func (stub *stubSheetRepo) UpdateCharacter(_ context.Context, _ *character.Character) error { return nil }
func (stub *stubSheetRepo) DeleteCharacter(_ context.Context, _ string) error               { return nil }

func newService(links *stubLinkRepo) *assignment.Service {
	sheets := &stubSheetRepo{sheet: &character.Character{ID: sheetID, IPAddress: "187.34.9.120"}}
	return assignment.NewService(links, sheets, identity.NewAllowlist(nil), slog.Default())
}

/*
TestService_Replace_RoundTrip saves a set and loads it back, checking
exact set equality for non-empty, deduplicated, and empty inputs.
*/
func TestService_Replace_RoundTrip(t *testing.T) {
	links := newStubLinkRepo()
	service := newService(links)
	owner := "187.34.9.120"

	require.NoError(t, service.Replace(context.Background(), owner, sheetID, []string{jutsuA, jutsuB, jutsuA}))

	loaded := service.LoadLinked(context.Background(), sheetID)
	require.Len(t, loaded, 2) // duplicate collapsed
	assert.Equal(t, jutsuA, loaded[0].ID)
	assert.Equal(t, "🌀", loaded[0].Emoji)
	assert.Equal(t, jutsuB, loaded[1].ID)

	// Replacing with the empty set clears everything.
	require.NoError(t, service.Replace(context.Background(), owner, sheetID, nil))
	assert.Empty(t, service.LoadLinked(context.Background(), sheetID))
}

/*
TestService_Replace_Forbidden rejects a caller who neither owns the sheet
nor is an admin.
*/
func TestService_Replace_Forbidden(t *testing.T) {
	links := newStubLinkRepo()
	service := newService(links)

	err := service.Replace(context.Background(), "198.51.100.7", sheetID, []string{jutsuA})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	assert.Empty(t, links.links[sheetID])
}

/*
TestService_Replace_RejectsBadIDs validates the id shapes before touching
the sheet or the store.
*/
func TestService_Replace_RejectsBadIDs(t *testing.T) {
	links := newStubLinkRepo()
	service := newService(links)

	err := service.Replace(context.Background(), "187.34.9.120", sheetID, []string{"not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_LoadLinked_DegradesToEmpty returns an empty slice (never an
error) when the store fails, so the sheet still renders.
*/
func TestService_LoadLinked_DegradesToEmpty(t *testing.T) {
	links := newStubLinkRepo()
	links.listErr = errors.New("connection refused")
	service := newService(links)

	loaded := service.LoadLinked(context.Background(), sheetID)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

/*
TestDedupe preserves first-occurrence order.
*/
func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, assignment.Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, assignment.Dedupe(nil))
}
