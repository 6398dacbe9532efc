package ability

import (
	"strings"
	"time"

	"github.com/shinobidex/fichas-api/pkg/markup"
)

// Ability represents a reusable jutsu that any character can learn.
//
// Abilities are communal: they carry the creator's token for display but
// are never owner-restricted — anyone may edit or delete any jutsu.
type Ability struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Informacoes string    `json:"informacoes"`
	ImagemURL   *string   `json:"imagem_url"`
	IPAddress   string    `json:"ip_address"`
	CreatedAt   time.Time `json:"created_at"`
	Emoji       string    `json:"emoji"` // computed, never stored
}

// Detail is the single-resource representation: the ability plus its
// description pre-split into renderable bold/plain segments.
type Detail struct {
	Ability
	Segments []markup.Segment `json:"segments"`
}

// Filter holds the parameters for an ability search.
type Filter struct {
	Query string // fuzzy match against nome
}

// Global field names for validation
const (
	FieldNome        = "nome"
	FieldInformacoes = "informacoes"
	FieldImagemURL   = "imagem_url"
)

// EmojiFor classifies an ability name into its display emoji.
//
// Substring categories are checked before prefix categories, so
// "Ninjutsu: Invocação dos Leões" classifies as a summoning rather than
// generic ninjutsu.
func EmojiFor(nome string) string {
	switch {
	case strings.Contains(nome, "Fuinjutsu"):
		return "📜"
	case strings.Contains(nome, "Marionete"):
		return "👹"
	case strings.Contains(nome, "Invocação"):
		return "🦁"
	case strings.HasPrefix(nome, "Ninjutsu"):
		return "🌀"
	case strings.HasPrefix(nome, "Genjutsu"):
		return "👁️"
	case strings.HasPrefix(nome, "Taijutsu"):
		return "💪"
	default:
		return "✨"
	}
}
