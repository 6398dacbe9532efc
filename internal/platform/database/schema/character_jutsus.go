package schema

// CharacterJutsuTable represents the 'public.character_jutsus' join table
type CharacterJutsuTable struct {
	Table       string
	CharacterID string
	JutsuID     string
}

// CharacterJutsu is the schema definition for character_jutsus
var CharacterJutsu = CharacterJutsuTable{
	Table:       "character_jutsus",
	CharacterID: "character_id",
	JutsuID:     "jutsu_id",
}
