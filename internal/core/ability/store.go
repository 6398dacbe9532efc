package ability

import "context"

type Repository interface {
	ListAbilities(context context.Context, limit, offset int) ([]*Ability, int, error)
	ListAllAbilities(context context.Context) ([]*Ability, error)
	GetAbility(context context.Context, id string) (*Ability, error)
	CreateAbility(context context.Context, ability *Ability) error
	UpdateAbility(context context.Context, ability *Ability) error
	DeleteAbility(context context.Context, id string) error
}
