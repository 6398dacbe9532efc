package assignment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shinobidex/fichas-api/internal/core/ability"
	"github.com/shinobidex/fichas-api/internal/platform/database/schema"
	"github.com/shinobidex/fichas-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLinked(context context.Context, characterID string) ([]*ability.Ability, error) {
	query := fmt.Sprintf(`
		SELECT j.%s, j.%s, j.%s, j.%s, j.%s, j.%s
		FROM %s j
		JOIN %s cj ON cj.%s = j.%s
		WHERE cj.%s = $1
		ORDER BY j.%s ASC
	`,
		schema.Jutsu.ID, schema.Jutsu.Nome, schema.Jutsu.Informacoes,
		schema.Jutsu.ImagemURL, schema.Jutsu.IPAddress, schema.Jutsu.CreatedAt,
		schema.Jutsu.Table,
		schema.CharacterJutsu.Table, schema.CharacterJutsu.JutsuID, schema.Jutsu.ID,
		schema.CharacterJutsu.CharacterID,
		schema.Jutsu.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, characterID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_linked_jutsus")
	}
	defer rows.Close()

	var abilities []*ability.Ability
	for rows.Next() {
		entry := &ability.Ability{}
		if err := rows.Scan(
			&entry.ID, &entry.Nome, &entry.Informacoes,
			&entry.ImagemURL, &entry.IPAddress, &entry.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_linked_jutsu")
		}
		abilities = append(abilities, entry)
	}

	return abilities, nil
}

// ReplaceLinks swaps the sheet's link set for the given one, atomically.
//
// Clear-and-insert inside a single transaction: a reader either sees the
// old complete set or the new complete set, never a half-written one.
func (repository *PostgresRepository) ReplaceLinks(context context.Context, characterID string, jutsuIDs []string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_links")
	}
	defer transaction.Rollback(context)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CharacterJutsu.Table, schema.CharacterJutsu.CharacterID)

	if _, err := transaction.Exec(context, deleteQuery, characterID); err != nil {
		return dberr.Wrap(err, "clear_links")
	}

	if len(jutsuIDs) > 0 {
		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.CharacterJutsu.Table, schema.CharacterJutsu.CharacterID, schema.CharacterJutsu.JutsuID)

		batch := &pgx.Batch{}
		for _, jutsuID := range jutsuIDs {
			batch.Queue(insertQuery, characterID, jutsuID)
		}

		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "insert_links")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_replace_links")
	}
	return nil
}
