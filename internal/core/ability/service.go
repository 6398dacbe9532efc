package ability

import (
	"context"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/shinobidex/fichas-api/internal/platform/validate"
	"github.com/shinobidex/fichas-api/pkg/markup"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// byName adapts an ability slice to the fuzzy matcher's source interface.
type byName []*Ability

func (source byName) String(i int) string { return source[i].Nome }
func (source byName) Len() int            { return len(source) }

// ListAbilities returns a page of abilities, newest first.
//
// With a non-empty filter query the full catalogue is fuzzy-ranked by name
// and the page is cut from the ranked order instead of creation order. The
// catalogue is small (a campaign's jutsu list), so in-memory ranking is fine.
func (service *Service) ListAbilities(context context.Context, filter Filter, limit, offset int) ([]*Ability, int, error) {
	if filter.Query == "" {
		abilities, total, err := service.repo.ListAbilities(context, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		decorate(abilities)
		return abilities, total, nil
	}

	all, err := service.repo.ListAllAbilities(context)
	if err != nil {
		return nil, 0, err
	}

	matches := fuzzy.FindFrom(filter.Query, byName(all))

	ranked := make([]*Ability, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, all[match.Index])
	}

	total := len(ranked)
	if offset >= total {
		return []*Ability{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := ranked[offset:end]
	decorate(page)
	return page, total, nil
}

// GetAbility returns the ability with its description split into segments.
func (service *Service) GetAbility(context context.Context, id string) (*Detail, error) {
	ability, err := service.repo.GetAbility(context, id)
	if err != nil {
		return nil, err
	}

	ability.Emoji = EmojiFor(ability.Nome)
	return &Detail{
		Ability:  *ability,
		Segments: markup.Segments(ability.Informacoes),
	}, nil
}

func (service *Service) CreateAbility(context context.Context, ability *Ability) error {
	validator := &validate.Validator{}
	validator.Required(FieldNome, ability.Nome).MaxLen(FieldNome, ability.Nome, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAbility(context, ability); err != nil {
		return err
	}

	ability.Emoji = EmojiFor(ability.Nome)
	service.logger.Info("jutsu_created",
		slog.String("jutsu_id", ability.ID),
		slog.String("nome", ability.Nome),
	)
	return nil
}

func (service *Service) UpdateAbility(context context.Context, id string, ability *Ability) error {
	ability.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldNome, ability.Nome).MaxLen(FieldNome, ability.Nome, 200)
	validator.UUID("id", id)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateAbility(context, ability); err != nil {
		return err
	}

	ability.Emoji = EmojiFor(ability.Nome)
	service.logger.Info("jutsu_updated", slog.String("jutsu_id", id))
	return nil
}

func (service *Service) DeleteAbility(context context.Context, id string) error {
	if err := service.repo.DeleteAbility(context, id); err != nil {
		return err
	}

	service.logger.Warn("jutsu_deleted", slog.String("jutsu_id", id))
	return nil
}

func decorate(abilities []*Ability) {
	for _, ability := range abilities {
		ability.Emoji = EmojiFor(ability.Nome)
	}
}
