package character

import (
	"context"
	"log/slog"

	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/validate"
)

type Service struct {
	repo      Repository
	allowlist identity.Allowlist
	logger    *slog.Logger
}

func NewService(repo Repository, allowlist identity.Allowlist, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		allowlist: allowlist,
		logger:    logger,
	}
}

// ListCharacters returns a page of sheets, newest first, decorated with
// the caller's ownership flag and the resource bar percentages.
func (service *Service) ListCharacters(context context.Context, caller string, limit, offset int) ([]*View, int, error) {
	characters, total, err := service.repo.ListCharacters(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*View, 0, len(characters))
	for _, character := range characters {
		views = append(views, NewView(character, service.allowlist.CanEdit(caller, character.IPAddress)))
	}
	return views, total, nil
}

func (service *Service) GetCharacter(context context.Context, caller, id string) (*View, error) {
	character, err := service.repo.GetCharacter(context, id)
	if err != nil {
		return nil, err
	}
	return NewView(character, service.allowlist.CanEdit(caller, character.IPAddress)), nil
}

// CreateCharacter validates and persists a new sheet owned by the caller.
//
// Only nome is required; every other field keeps its zero value until the
// player fills it in.
func (service *Service) CreateCharacter(context context.Context, caller string, character *Character) error {
	character.IPAddress = caller

	validator := &validate.Validator{}
	validator.Required(FieldNome, character.Nome).MaxLen(FieldNome, character.Nome, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateCharacter(context, character); err != nil {
		return err
	}

	service.logger.Info("sheet_created",
		slog.String("sheet_id", character.ID),
		slog.String("owner", character.IPAddress),
	)
	return nil
}

// UpdateCharacter replaces the full editable record, owner or admin only.
func (service *Service) UpdateCharacter(context context.Context, caller, id string, character *Character) error {
	existing, err := service.repo.GetCharacter(context, id)
	if err != nil {
		return err
	}

	if !service.allowlist.CanEdit(caller, existing.IPAddress) {
		return apperr.Forbidden("You do not own this sheet")
	}

	character.ID = existing.ID
	character.IPAddress = existing.IPAddress
	character.CreatedAt = existing.CreatedAt

	validator := &validate.Validator{}
	validator.Required(FieldNome, character.Nome).MaxLen(FieldNome, character.Nome, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateCharacter(context, character); err != nil {
		return err
	}

	service.logger.Info("sheet_updated", slog.String("sheet_id", id))
	return nil
}

// DeleteCharacter removes a sheet and (via FK cascade) its jutsu links,
// owner or admin only.
func (service *Service) DeleteCharacter(context context.Context, caller, id string) error {
	existing, err := service.repo.GetCharacter(context, id)
	if err != nil {
		return err
	}

	if !service.allowlist.CanEdit(caller, existing.IPAddress) {
		return apperr.Forbidden("You do not own this sheet")
	}

	if err := service.repo.DeleteCharacter(context, id); err != nil {
		return err
	}

	service.logger.Warn("sheet_deleted",
		slog.String("sheet_id", id),
		slog.String("deleted_by", caller),
	)
	return nil
}
