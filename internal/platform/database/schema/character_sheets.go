package schema

// CharacterSheetTable represents the 'public.character_sheets' table.
//
// Only the columns referenced in WHERE/ORDER clauses are named here; the
// sheet store keeps the full (wide) column list next to its scan order.
type CharacterSheetTable struct {
	Table     string
	ID        string
	IPAddress string
	Nome      string
	ImagemURL string
	CreatedAt string
}

// CharacterSheet is the schema definition for character_sheets
var CharacterSheet = CharacterSheetTable{
	Table:     "character_sheets",
	ID:        "id",
	IPAddress: "ip_address",
	Nome:      "nome",
	ImagemURL: "imagem_url",
	CreatedAt: "created_at",
}
