package catalog

import (
	"context"
	"fmt"
	"strings"
)

// cascade names a dependent table cleared before its parent row is deleted.
type cascade struct {
	table  string
	column string
}

// entityDescriptor parameterizes the generic add/update/delete logic for the
// four top-level entities. Cascades are listed grandchild-first.
type entityDescriptor struct {
	entity   string
	table    string
	idColumn string
	cascades []cascade
}

var (
	cdEntity = entityDescriptor{
		entity:   "cd",
		table:    "cds",
		idColumn: "id",
		cascades: []cascade{
			{table: "tracks_artists", column: "cd_id"},
			{table: "tracks", column: "cd_id"},
		},
	}
	songEntity = entityDescriptor{
		entity:   "song",
		table:    "songs",
		idColumn: "id",
	}
	artistEntity = entityDescriptor{
		entity:   "artist",
		table:    "artists",
		idColumn: "id",
	}
	concertEntity = entityDescriptor{
		entity:   "concert",
		table:    "concerts",
		idColumn: "id",
		cascades: []cascade{
			{table: "artists_performances", column: "concert_id"},
			{table: "performances", column: "concert_id"},
		},
	}
)

// exists reports whether a row matching the where clause is present.
func (s *Store) exists(ctx context.Context, table, where string, args ...any) (bool, error) {
	var count int
	query := "SELECT COUNT(1) FROM " + table + " WHERE " + where
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return count > 0, nil
}

// addEntity checks id uniqueness and inserts one row. Columns and args hold
// the non-id fields in matching order.
func (s *Store) addEntity(ctx context.Context, desc entityDescriptor, id int64, columns []string, args []any) error {
	ok, err := s.exists(ctx, desc.table, desc.idColumn+" = ?", id)
	if err != nil {
		return err
	}
	if ok {
		return ErrIDExists
	}

	cols := append([]string{desc.idColumn}, columns...)
	query := "INSERT INTO " + desc.table + " (" + strings.Join(cols, ", ") +
		") VALUES (" + makePlaceholders(len(cols)) + ")"
	if _, err := s.db.ExecContext(ctx, query, append([]any{id}, args...)...); err != nil {
		return fmt.Errorf("insert %s: %w", desc.entity, err)
	}
	return nil
}

// updateEntity updates the mutable columns of one row. The id is immutable.
func (s *Store) updateEntity(ctx context.Context, desc entityDescriptor, id int64, columns []string, args []any) error {
	ok, err := s.exists(ctx, desc.table, desc.idColumn+" = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: desc.entity}
	}

	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = col + " = ?"
	}
	query := "UPDATE " + desc.table + " SET " + strings.Join(sets, ", ") +
		" WHERE " + desc.idColumn + " = ?"
	if _, err := s.db.ExecContext(ctx, query, append(args, id)...); err != nil {
		return fmt.Errorf("update %s: %w", desc.entity, err)
	}
	return nil
}

// deleteEntity removes one row and its cascaded dependents in a single
// transaction. Any statement failure rolls back the whole cascade.
func (s *Store) deleteEntity(ctx context.Context, desc entityDescriptor, id int64) error {
	ok, err := s.exists(ctx, desc.table, desc.idColumn+" = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: desc.entity}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range desc.cascades {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+c.table+" WHERE "+c.column+" = ?", id); err != nil {
			return fmt.Errorf("delete %s rows for %s: %w", c.table, desc.entity, err)
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+desc.table+" WHERE "+desc.idColumn+" = ?", id); err != nil {
		return fmt.Errorf("delete %s: %w", desc.entity, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
