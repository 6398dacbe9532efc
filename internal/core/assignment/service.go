package assignment

import (
	"context"
	"log/slog"

	"github.com/shinobidex/fichas-api/internal/core/ability"
	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/validate"
)

type Service struct {
	repo      Repository
	sheets    character.Repository
	allowlist identity.Allowlist
	logger    *slog.Logger
}

func NewService(repo Repository, sheets character.Repository, allowlist identity.Allowlist, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		sheets:    sheets,
		allowlist: allowlist,
		logger:    logger,
	}
}

// LoadLinked returns the jutsus assigned to a sheet, emoji-decorated.
//
// A store failure degrades to an empty list so the sheet still renders
// without its ability windows; the failure is logged, not surfaced.
func (service *Service) LoadLinked(context context.Context, characterID string) []*ability.Ability {
	abilities, err := service.repo.ListLinked(context, characterID)
	if err != nil {
		service.logger.Warn("linked_jutsus_load_failed",
			slog.String("sheet_id", characterID),
			slog.Any("error", err),
		)
		return []*ability.Ability{}
	}

	if abilities == nil {
		abilities = []*ability.Ability{}
	}
	for _, entry := range abilities {
		entry.Emoji = ability.EmojiFor(entry.Nome)
	}
	return abilities
}

// Replace swaps the sheet's complete link set, owner or admin only.
//
// The input is deduplicated; after a successful save the stored set equals
// exactly the deduplicated input, including the empty set.
func (service *Service) Replace(context context.Context, caller, characterID string, jutsuIDs []string) error {
	validator := &validate.Validator{}
	validator.UUID("character_id", characterID)
	for _, jutsuID := range jutsuIDs {
		validator.UUID("jutsu_ids", jutsuID)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	sheet, err := service.sheets.GetCharacter(context, characterID)
	if err != nil {
		return err
	}

	if !service.allowlist.CanEdit(caller, sheet.IPAddress) {
		return apperr.Forbidden("You do not own this sheet")
	}

	deduped := Dedupe(jutsuIDs)
	if err := service.repo.ReplaceLinks(context, characterID, deduped); err != nil {
		return err
	}

	service.logger.Info("sheet_jutsus_replaced",
		slog.String("sheet_id", characterID),
		slog.Int("count", len(deduped)),
	)
	return nil
}
