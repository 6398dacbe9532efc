package character

import (
	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/pkg/convert"
)

// intFields maps each numeric sheet key to its setter. The sheet edit
// session writes through this registry so every numeric field gets the
// same fault-tolerant coercion.
var intFields = map[string]func(*Character, int){
	"vida":         func(c *Character, v int) { c.Vida = v },
	"vida_max":     func(c *Character, v int) { c.VidaMax = v },
	"sanidade":     func(c *Character, v int) { c.Sanidade = v },
	"sanidade_max": func(c *Character, v int) { c.SanidadeMax = v },
	"chakra":       func(c *Character, v int) { c.Chakra = v },
	"chakra_max":   func(c *Character, v int) { c.ChakraMax = v },

	"forca_fisica": func(c *Character, v int) { c.ForcaFisica = v },
	"destreza":     func(c *Character, v int) { c.Destreza = v },

	"taijutsu":     func(c *Character, v int) { c.Taijutsu = v },
	"forca_bruta":  func(c *Character, v int) { c.ForcaBruta = v },
	"imobilizacao": func(c *Character, v int) { c.Imobilizacao = v },

	"acrobacia":      func(c *Character, v int) { c.Acrobacia = v },
	"furtividade":    func(c *Character, v int) { c.Furtividade = v },
	"shurikenjutsu":  func(c *Character, v int) { c.Shurikenjutsu = v },
	"kenjutsu":       func(c *Character, v int) { c.Kenjutsu = v },
	"reflexos_ninja": func(c *Character, v int) { c.ReflexosNinja = v },
	"iniciativa":     func(c *Character, v int) { c.Iniciativa = v },

	"analise_combate":      func(c *Character, v int) { c.AnaliseCombate = v },
	"estrategia_tatica":    func(c *Character, v int) { c.EstrategiaTatica = v },
	"conhecimento_shinobi": func(c *Character, v int) { c.ConhecimentoShinobi = v },
	"conhecimento_clas":    func(c *Character, v int) { c.ConhecimentoClas = v },
	"fuinjutsu":            func(c *Character, v int) { c.Fuinjutsu = v },
	"sabotagem":            func(c *Character, v int) { c.Sabotagem = v },

	"genjutsu":             func(c *Character, v int) { c.Genjutsu = v },
	"resistencia_genjutsu": func(c *Character, v int) { c.ResistenciaGenjutsu = v },
	"concentracao":         func(c *Character, v int) { c.Concentracao = v },
	"intimidacao":          func(c *Character, v int) { c.Intimidacao = v },
	"vontade_ninja":        func(c *Character, v int) { c.VontadeNinja = v },

	"fortitude":          func(c *Character, v int) { c.Fortitude = v },
	"resistencia_fisica": func(c *Character, v int) { c.ResistenciaFisica = v },
	"recuperacao":        func(c *Character, v int) { c.Recuperacao = v },
	"tolerancia_dor":     func(c *Character, v int) { c.ToleranciaDor = v },
	"sobrevivencia":      func(c *Character, v int) { c.Sobrevivencia = v },

	"controle_chakra":    func(c *Character, v int) { c.ControleChakra = v },
	"moldagem_elemental": func(c *Character, v int) { c.MoldagemElemental = v },
	"ninjutsu_medico":    func(c *Character, v int) { c.NinjutsuMedico = v },
	"sensorial":          func(c *Character, v int) { c.Sensorial = v },
}

// textFields maps each free-text sheet key to its setter. Values are
// stored exactly as typed.
var textFields = map[string]func(*Character, string){
	"nome":       func(c *Character, v string) { c.Nome = v },
	"idade":      func(c *Character, v string) { c.Idade = v },
	"elementos":  func(c *Character, v string) { c.Elementos = v },
	"classe":     func(c *Character, v string) { c.Classe = v },
	"talento":    func(c *Character, v string) { c.Talento = v },
	"inventario": func(c *Character, v string) { c.Inventario = v },

	"maestria_fogo":  func(c *Character, v string) { c.MaestriaFogo = v },
	"maestria_vento": func(c *Character, v string) { c.MaestriaVento = v },
	"maestria_terra": func(c *Character, v string) { c.MaestriaTerra = v },
	"maestria_agua":  func(c *Character, v string) { c.MaestriaAgua = v },
	"maestria_raio":  func(c *Character, v string) { c.MaestriaRaio = v },

	"imagem_url": func(c *Character, v string) {
		if v == "" {
			c.ImagemURL = nil
			return
		}
		c.ImagemURL = &v
	},
}

// ApplyField sets one sheet field from its raw form value.
//
// Numeric keys coerce through [convert.ToInt] — empty or garbage input
// becomes 0, negatives are kept. Text keys store the value as-is. Unknown
// keys are rejected.
func ApplyField(character *Character, field, value string) error {
	if set, ok := intFields[field]; ok {
		set(character, convert.ToInt(value))
		return nil
	}
	if set, ok := textFields[field]; ok {
		set(character, value)
		return nil
	}
	return apperr.ValidationError("Unknown sheet field: " + field)
}
