// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package character_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
)

/*
TestBarPercent verifies the display clamp: percentages cap at 100 (and
floor at 0) while the underlying values are untouched.
*/
func TestBarPercent(t *testing.T) {
	tests := []struct {
		name         string
		current, max int
		want         int
	}{
		{"half", 50, 100, 50},
		{"full", 100, 100, 100},
		{"overfull_clamped", 150, 100, 100},
		{"negative_floored", -20, 100, 0},
		{"zero_max", 50, 0, 0},
		{"negative_max", 50, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, character.BarPercent(tt.current, tt.max))
		})
	}
}

/*
TestNewView_KeepsRawValues ensures clamping is display-only: the embedded
record still carries the overfull value.
*/
func TestNewView_KeepsRawValues(t *testing.T) {
	sheet := &character.Character{Vida: 150, VidaMax: 100, Chakra: 30, ChakraMax: 60}

	view := character.NewView(sheet, true)

	assert.Equal(t, 100, view.VidaPercent)
	assert.Equal(t, 150, view.Vida)
	assert.Equal(t, 50, view.ChakraPercent)
	assert.True(t, view.IsOwner)
}

/*
TestApplyField covers the coercion rules for numeric and text keys.
*/
func TestApplyField(t *testing.T) {
	sheet := &character.Character{}

	require.NoError(t, character.ApplyField(sheet, "vida", "7"))
	assert.Equal(t, 7, sheet.Vida)

	require.NoError(t, character.ApplyField(sheet, "vida", "abc"))
	assert.Equal(t, 0, sheet.Vida)

	require.NoError(t, character.ApplyField(sheet, "chakra", ""))
	assert.Equal(t, 0, sheet.Chakra)

	require.NoError(t, character.ApplyField(sheet, "destreza", "-3"))
	assert.Equal(t, -3, sheet.Destreza)

	require.NoError(t, character.ApplyField(sheet, "nome", "Uzumaki Naruto"))
	assert.Equal(t, "Uzumaki Naruto", sheet.Nome)

	require.NoError(t, character.ApplyField(sheet, "maestria_fogo", "Rank B"))
	assert.Equal(t, "Rank B", sheet.MaestriaFogo)

	require.NoError(t, character.ApplyField(sheet, "imagem_url", "https://cdn.example/x.png"))
	require.NotNil(t, sheet.ImagemURL)
	assert.Equal(t, "https://cdn.example/x.png", *sheet.ImagemURL)

	require.NoError(t, character.ApplyField(sheet, "imagem_url", ""))
	assert.Nil(t, sheet.ImagemURL)

	err := character.ApplyField(sheet, "nivel_de_poder", "9001")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// stubRepo is an in-memory Repository for service tests.
type stubRepo struct {
	sheets  map[string]*character.Character
	updated int
	deleted int
}

func newStubRepo(sheets ...*character.Character) *stubRepo {
	repo := &stubRepo{sheets: map[string]*character.Character{}}
	for _, sheet := range sheets {
		repo.sheets[sheet.ID] = sheet
	}
	return repo
}

func (stub *stubRepo) ListCharacters(_ context.Context, limit, offset int) ([]*character.Character, int, error) {
	var all []*character.Character
	for _, sheet := range stub.sheets {
		all = append(all, sheet)
	}
	return all, len(all), nil
}

func (stub *stubRepo) GetCharacter(_ context.Context, id string) (*character.Character, error) {
	sheet, ok := stub.sheets[id]
	if !ok {
		return nil, apperr.NotFound("Ficha")
	}
	copied := *sheet
	return &copied, nil
}

func (stub *stubRepo) CreateCharacter(_ context.Context, sheet *character.Character) error {
	sheet.ID = "018f0000-0000-7000-8000-0000000000aa"
	stub.sheets[sheet.ID] = sheet
	return nil
}

func (stub *stubRepo) UpdateCharacter(_ context.Context, sheet *character.Character) error {
	stub.sheets[sheet.ID] = sheet
	stub.updated++
	return nil
}

func (stub *stubRepo) DeleteCharacter(_ context.Context, id string) error {
	delete(stub.sheets, id)
	stub.deleted++
	return nil
}

func newService(repo character.Repository, adminTokens ...string) *character.Service {
	return character.NewService(repo, identity.NewAllowlist(adminTokens), slog.Default())
}

/*
TestService_CreateCharacter_RequiresName rejects a blank nome before any
repository write.
*/
func TestService_CreateCharacter_RequiresName(t *testing.T) {
	repo := newStubRepo()
	service := newService(repo)

	err := service.CreateCharacter(context.Background(), "187.34.9.120", &character.Character{Nome: "  "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.sheets)
}

/*
TestService_UpdateCharacter_Capability checks owner, admin, and stranger
paths, and that provenance fields survive the full-record replace.
*/
func TestService_UpdateCharacter_Capability(t *testing.T) {
	owner := "187.34.9.120"
	existing := &character.Character{
		ID:        "sheet-1",
		IPAddress: owner,
		Nome:      "Kakashi",
	}

	t.Run("stranger_forbidden", func(t *testing.T) {
		repo := newStubRepo(existing)
		service := newService(repo)

		err := service.UpdateCharacter(context.Background(), "198.51.100.7", "sheet-1", &character.Character{Nome: "Hacked"})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
		assert.Zero(t, repo.updated)
	})

	t.Run("owner_allowed", func(t *testing.T) {
		repo := newStubRepo(existing)
		service := newService(repo)

		input := &character.Character{Nome: "Hatake Kakashi", IPAddress: "spoofed"}
		require.NoError(t, service.UpdateCharacter(context.Background(), owner, "sheet-1", input))

		assert.Equal(t, 1, repo.updated)
		assert.Equal(t, owner, input.IPAddress) // spoofed owner overwritten
		assert.Equal(t, "sheet-1", input.ID)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		repo := newStubRepo(existing)
		service := newService(repo, "10.0.0.9")

		err := service.UpdateCharacter(context.Background(), "10.0.0.9", "sheet-1", &character.Character{Nome: "Fixed"})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.updated)
	})
}

/*
TestService_DeleteCharacter_Capability mirrors the update capability rules.
*/
func TestService_DeleteCharacter_Capability(t *testing.T) {
	existing := &character.Character{ID: "sheet-1", IPAddress: "187.34.9.120", Nome: "Gai"}

	repo := newStubRepo(existing)
	service := newService(repo)

	err := service.DeleteCharacter(context.Background(), "198.51.100.7", "sheet-1")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DeleteCharacter(context.Background(), "187.34.9.120", "sheet-1"))
	assert.Equal(t, 1, repo.deleted)
	assert.Empty(t, repo.sheets)
}

/*
TestService_ListCharacters_OwnershipFlag decorates each row relative to
the caller.
*/
func TestService_ListCharacters_OwnershipFlag(t *testing.T) {
	repo := newStubRepo(
		&character.Character{ID: "a", IPAddress: "187.34.9.120", Nome: "Naruto"},
	)
	service := newService(repo, "10.0.0.9")

	views, total, err := service.ListCharacters(context.Background(), "187.34.9.120", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.True(t, views[0].IsOwner)

	views, _, err = service.ListCharacters(context.Background(), "198.51.100.7", 20, 0)
	require.NoError(t, err)
	assert.False(t, views[0].IsOwner)

	// Admins see every sheet as editable.
	views, _, err = service.ListCharacters(context.Background(), "10.0.0.9", 20, 0)
	require.NoError(t, err)
	assert.True(t, views[0].IsOwner)
}
