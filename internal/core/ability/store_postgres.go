package ability

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shinobidex/fichas-api/internal/platform/database/schema"
	"github.com/shinobidex/fichas-api/internal/platform/dberr"
	"github.com/shinobidex/fichas-api/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.Jutsu.ID, schema.Jutsu.Nome, schema.Jutsu.Informacoes,
		schema.Jutsu.ImagemURL, schema.Jutsu.IPAddress, schema.Jutsu.CreatedAt,
	)
}

func scanAbility(row interface{ Scan(...any) error }) (*Ability, error) {
	ability := &Ability{}
	err := row.Scan(
		&ability.ID, &ability.Nome, &ability.Informacoes,
		&ability.ImagemURL, &ability.IPAddress, &ability.CreatedAt,
	)
	return ability, err
}

func (repository *PostgresRepository) ListAbilities(context context.Context, limit, offset int) ([]*Ability, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Jutsu.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_jutsus")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, selectColumns(), schema.Jutsu.Table, schema.Jutsu.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_jutsus")
	}
	defer rows.Close()

	var abilities []*Ability
	for rows.Next() {
		ability, err := scanAbility(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_jutsu")
		}
		abilities = append(abilities, ability)
	}

	return abilities, total, nil
}

func (repository *PostgresRepository) ListAllAbilities(context context.Context) ([]*Ability, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		selectColumns(), schema.Jutsu.Table, schema.Jutsu.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_jutsus")
	}
	defer rows.Close()

	var abilities []*Ability
	for rows.Next() {
		ability, err := scanAbility(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_jutsu")
		}
		abilities = append(abilities, ability)
	}

	return abilities, nil
}

func (repository *PostgresRepository) GetAbility(context context.Context, id string) (*Ability, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.Jutsu.Table, schema.Jutsu.ID)

	ability, err := scanAbility(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_jutsu")
	}
	return ability, nil
}

func (repository *PostgresRepository) CreateAbility(context context.Context, ability *Ability) error {
	ability.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.Jutsu.Table,
		schema.Jutsu.ID, schema.Jutsu.Nome, schema.Jutsu.Informacoes,
		schema.Jutsu.ImagemURL, schema.Jutsu.IPAddress, schema.Jutsu.CreatedAt,
		schema.Jutsu.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		ability.ID, ability.Nome, ability.Informacoes, ability.ImagemURL, ability.IPAddress,
	).Scan(&ability.CreatedAt)
	return dberr.Wrap(err, "create_jutsu")
}

func (repository *PostgresRepository) UpdateAbility(context context.Context, ability *Ability) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.Jutsu.Table,
		schema.Jutsu.Nome, schema.Jutsu.Informacoes, schema.Jutsu.ImagemURL,
		schema.Jutsu.ID,
		schema.Jutsu.IPAddress, schema.Jutsu.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		ability.ID, ability.Nome, ability.Informacoes, ability.ImagemURL,
	).Scan(&ability.IPAddress, &ability.CreatedAt)
	return dberr.Wrap(err, "update_jutsu")
}

func (repository *PostgresRepository) DeleteAbility(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Jutsu.Table, schema.Jutsu.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_jutsu")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
