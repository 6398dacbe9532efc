package assignment

import (
	"context"

	"github.com/shinobidex/fichas-api/internal/core/ability"
)

type Repository interface {
	ListLinked(context context.Context, characterID string) ([]*ability.Ability, error)
	ReplaceLinks(context context.Context, characterID string, jutsuIDs []string) error
}
