package character

import "time"

// Character is a full shinobi character sheet.
//
// JSON field names keep the original Portuguese schema so existing clients
// work unchanged. Integer attributes default to zero, negatives are allowed,
// and current ≤ max is deliberately not enforced — the table is the rulebook,
// not the server.
type Character struct {
	ID        string  `json:"id"`
	IPAddress string  `json:"ip_address"`
	Nome      string  `json:"nome"`
	Idade     string  `json:"idade"`
	Elementos string  `json:"elementos"`
	Classe    string  `json:"classe"`
	Talento   string  `json:"talento"`
	ImagemURL *string `json:"imagem_url"`

	// Resource pairs (the three display bars)
	Vida        int `json:"vida"`
	VidaMax     int `json:"vida_max"`
	Sanidade    int `json:"sanidade"`
	SanidadeMax int `json:"sanidade_max"`
	Chakra      int `json:"chakra"`
	ChakraMax   int `json:"chakra_max"`

	// Core attributes
	ForcaFisica int `json:"forca_fisica"`
	Destreza    int `json:"destreza"`

	// FOR
	Taijutsu     int `json:"taijutsu"`
	ForcaBruta   int `json:"forca_bruta"`
	Imobilizacao int `json:"imobilizacao"`

	// AGI
	Acrobacia     int `json:"acrobacia"`
	Furtividade   int `json:"furtividade"`
	Shurikenjutsu int `json:"shurikenjutsu"`
	Kenjutsu      int `json:"kenjutsu"`
	ReflexosNinja int `json:"reflexos_ninja"`
	Iniciativa    int `json:"iniciativa"`

	// INT
	AnaliseCombate      int `json:"analise_combate"`
	EstrategiaTatica    int `json:"estrategia_tatica"`
	ConhecimentoShinobi int `json:"conhecimento_shinobi"`
	ConhecimentoClas    int `json:"conhecimento_clas"`
	Fuinjutsu           int `json:"fuinjutsu"`
	Sabotagem           int `json:"sabotagem"`

	// MEN
	Genjutsu            int `json:"genjutsu"`
	ResistenciaGenjutsu int `json:"resistencia_genjutsu"`
	Concentracao        int `json:"concentracao"`
	Intimidacao         int `json:"intimidacao"`
	VontadeNinja        int `json:"vontade_ninja"`

	// CON
	Fortitude         int `json:"fortitude"`
	ResistenciaFisica int `json:"resistencia_fisica"`
	Recuperacao       int `json:"recuperacao"`
	ToleranciaDor     int `json:"tolerancia_dor"`
	Sobrevivencia     int `json:"sobrevivencia"`

	// CHA
	ControleChakra    int `json:"controle_chakra"`
	MoldagemElemental int `json:"moldagem_elemental"`
	NinjutsuMedico    int `json:"ninjutsu_medico"`
	Sensorial         int `json:"sensorial"`

	// Elemental masteries (free text, e.g. rank or technique notes)
	MaestriaFogo  string `json:"maestria_fogo"`
	MaestriaVento string `json:"maestria_vento"`
	MaestriaTerra string `json:"maestria_terra"`
	MaestriaAgua  string `json:"maestria_agua"`
	MaestriaRaio  string `json:"maestria_raio"`

	Inventario string    `json:"inventario"`
	CreatedAt  time.Time `json:"created_at"`
}

// View is the API representation of a sheet: the raw record plus the
// caller-relative ownership flag and the display percentages for the three
// resource bars.
type View struct {
	Character
	IsOwner         bool `json:"is_owner"`
	VidaPercent     int  `json:"vida_percent"`
	SanidadePercent int  `json:"sanidade_percent"`
	ChakraPercent   int  `json:"chakra_percent"`
}

// NewView decorates a character for a response.
func NewView(character *Character, isOwner bool) *View {
	return &View{
		Character:       *character,
		IsOwner:         isOwner,
		VidaPercent:     BarPercent(character.Vida, character.VidaMax),
		SanidadePercent: BarPercent(character.Sanidade, character.SanidadeMax),
		ChakraPercent:   BarPercent(character.Chakra, character.ChakraMax),
	}
}

// BarPercent computes the display width of a resource bar.
//
// The result is clamped to [0, 100] for display only; the stored current
// value may exceed max (temporary buffs) or go negative, and stays untouched.
func BarPercent(current, max int) int {
	if max <= 0 {
		return 0
	}

	percent := current * 100 / max
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// Global field names for validation
const (
	FieldNome = "nome"
)
