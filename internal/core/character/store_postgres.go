package character

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shinobidex/fichas-api/internal/platform/database/schema"
	"github.com/shinobidex/fichas-api/internal/platform/dberr"
	"github.com/shinobidex/fichas-api/pkg/uuidv7"
)

// sheetColumns is the full column list in scan order. scanTargets and the
// initial migration must stay in sync with it.
var sheetColumns = []string{
	"id", "ip_address", "nome", "idade", "elementos", "classe", "talento",
	"imagem_url",
	"vida", "vida_max", "sanidade", "sanidade_max", "chakra", "chakra_max",
	"forca_fisica", "destreza",
	"taijutsu", "forca_bruta", "imobilizacao",
	"acrobacia", "furtividade", "shurikenjutsu", "kenjutsu", "reflexos_ninja", "iniciativa",
	"analise_combate", "estrategia_tatica", "conhecimento_shinobi", "conhecimento_clas", "fuinjutsu", "sabotagem",
	"genjutsu", "resistencia_genjutsu", "concentracao", "intimidacao", "vontade_ninja",
	"fortitude", "resistencia_fisica", "recuperacao", "tolerancia_dor", "sobrevivencia",
	"controle_chakra", "moldagem_elemental", "ninjutsu_medico", "sensorial",
	"maestria_fogo", "maestria_vento", "maestria_terra", "maestria_agua", "maestria_raio",
	"inventario",
	"created_at",
}

// scanTargets returns pointers into the character, one per column of
// sheetColumns, in the same order.
func scanTargets(character *Character) []any {
	return []any{
		&character.ID, &character.IPAddress, &character.Nome, &character.Idade,
		&character.Elementos, &character.Classe, &character.Talento,
		&character.ImagemURL,
		&character.Vida, &character.VidaMax, &character.Sanidade, &character.SanidadeMax,
		&character.Chakra, &character.ChakraMax,
		&character.ForcaFisica, &character.Destreza,
		&character.Taijutsu, &character.ForcaBruta, &character.Imobilizacao,
		&character.Acrobacia, &character.Furtividade, &character.Shurikenjutsu,
		&character.Kenjutsu, &character.ReflexosNinja, &character.Iniciativa,
		&character.AnaliseCombate, &character.EstrategiaTatica, &character.ConhecimentoShinobi,
		&character.ConhecimentoClas, &character.Fuinjutsu, &character.Sabotagem,
		&character.Genjutsu, &character.ResistenciaGenjutsu, &character.Concentracao,
		&character.Intimidacao, &character.VontadeNinja,
		&character.Fortitude, &character.ResistenciaFisica, &character.Recuperacao,
		&character.ToleranciaDor, &character.Sobrevivencia,
		&character.ControleChakra, &character.MoldagemElemental, &character.NinjutsuMedico,
		&character.Sensorial,
		&character.MaestriaFogo, &character.MaestriaVento, &character.MaestriaTerra,
		&character.MaestriaAgua, &character.MaestriaRaio,
		&character.Inventario,
		&character.CreatedAt,
	}
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCharacters(context context.Context, limit, offset int) ([]*Character, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CharacterSheet.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sheets")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, strings.Join(sheetColumns, ", "), schema.CharacterSheet.Table, schema.CharacterSheet.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sheets")
	}
	defer rows.Close()

	var characters []*Character
	for rows.Next() {
		character := &Character{}
		if err := rows.Scan(scanTargets(character)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_sheet")
		}
		characters = append(characters, character)
	}

	return characters, total, nil
}

func (repository *PostgresRepository) GetCharacter(context context.Context, id string) (*Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(sheetColumns, ", "), schema.CharacterSheet.Table, schema.CharacterSheet.ID)

	character := &Character{}
	if err := repository.db.QueryRow(context, query, id).Scan(scanTargets(character)...); err != nil {
		return nil, dberr.Wrap(err, "get_sheet")
	}
	return character, nil
}

func (repository *PostgresRepository) CreateCharacter(context context.Context, character *Character) error {
	character.ID = uuidv7.New()

	// All columns except created_at, which the database stamps.
	columns := sheetColumns[:len(sheetColumns)-1]
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`,
		schema.CharacterSheet.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		schema.CharacterSheet.CreatedAt,
	)

	args := scanTargets(character)[:len(columns)]
	err := repository.db.QueryRow(context, query, args...).Scan(&character.CreatedAt)
	return dberr.Wrap(err, "create_sheet")
}

func (repository *PostgresRepository) UpdateCharacter(context context.Context, character *Character) error {
	// Identity and provenance columns never change on update.
	fixed := map[string]bool{
		schema.CharacterSheet.ID:        true,
		schema.CharacterSheet.IPAddress: true,
		schema.CharacterSheet.CreatedAt: true,
	}

	targets := scanTargets(character)
	assignments := make([]string, 0, len(sheetColumns))
	args := []any{character.ID}

	for i, column := range sheetColumns {
		if fixed[column] {
			continue
		}
		args = append(args, targets[i])
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		schema.CharacterSheet.Table, strings.Join(assignments, ", "), schema.CharacterSheet.ID)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_sheet")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteCharacter(context context.Context, id string) error {
	// character_jutsus rows go with the sheet via ON DELETE CASCADE.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CharacterSheet.Table, schema.CharacterSheet.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_sheet")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
