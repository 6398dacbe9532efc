package character

import "context"

type Repository interface {
	ListCharacters(context context.Context, limit, offset int) ([]*Character, int, error)
	GetCharacter(context context.Context, id string) (*Character, error)
	CreateCharacter(context context.Context, character *Character) error
	UpdateCharacter(context context.Context, character *Character) error
	DeleteCharacter(context context.Context, id string) error
}
