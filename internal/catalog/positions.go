package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// positionDescriptor parameterizes the shared logic for the two composite-key
// position tables (tracks on a CD, performances in a concert) and their
// artist junction tables. The association order column differs from the
// position order column for performances, hence the separate name.
type positionDescriptor struct {
	entity           string
	table            string
	parent           entityDescriptor
	parentColumn     string
	orderColumn      string
	assocEntity      string
	assocTable       string
	assocOrderColumn string
}

var (
	trackPosition = positionDescriptor{
		entity:           "track",
		table:            "tracks",
		parent:           cdEntity,
		parentColumn:     "cd_id",
		orderColumn:      "track_number",
		assocEntity:      "track-artist",
		assocTable:       "tracks_artists",
		assocOrderColumn: "track_number",
	}
	performancePosition = positionDescriptor{
		entity:           "performance",
		table:            "performances",
		parent:           concertEntity,
		parentColumn:     "concert_id",
		orderColumn:      "number_of_order",
		assocEntity:      "performance-artist",
		assocTable:       "artists_performances",
		assocOrderColumn: "order_in_concert",
	}
)

func (d positionDescriptor) positionWhere() string {
	return d.parentColumn + " = ? AND " + d.orderColumn + " = ?"
}

func (d positionDescriptor) assocWhere() string {
	return d.parentColumn + " = ? AND " + d.assocOrderColumn + " = ?"
}

// positionSong returns the song currently assigned to a position, or ok=false
// when the position does not exist.
func (s *Store) positionSong(ctx context.Context, desc positionDescriptor, parentID, order int64) (int64, bool, error) {
	var songID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT song_id FROM "+desc.table+" WHERE "+desc.positionWhere(),
		parentID, order).Scan(&songID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", desc.entity, err)
	}
	return songID, true, nil
}

// addPosition creates a new position referencing a song, optionally with one
// initial artist association. Existence of the parent, the song, and the
// artist is checked first; a populated position is a conflict.
func (s *Store) addPosition(ctx context.Context, desc positionDescriptor, parentID, order, songID, artistID int64) error {
	if err := s.requireEntity(ctx, desc.parent, parentID); err != nil {
		return err
	}
	if err := s.requireEntity(ctx, songEntity, songID); err != nil {
		return err
	}
	if artistID > 0 {
		if err := s.requireEntity(ctx, artistEntity, artistID); err != nil {
			return err
		}
	}

	if _, ok, err := s.positionSong(ctx, desc, parentID, order); err != nil {
		return err
	} else if ok {
		return &ConflictError{Entity: desc.entity}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+desc.table+" ("+desc.parentColumn+", "+desc.orderColumn+", song_id) VALUES (?, ?, ?)",
		parentID, order, songID); err != nil {
		return fmt.Errorf("insert %s: %w", desc.entity, err)
	}
	if artistID > 0 {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO "+desc.assocTable+" ("+desc.parentColumn+", "+desc.assocOrderColumn+", artist_id) VALUES (?, ?, ?)",
			parentID, order, artistID); err != nil {
			return fmt.Errorf("insert %s: %w", desc.assocEntity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add: %w", err)
	}
	return nil
}

// addPositionArtist inserts one more artist association for an existing
// position. A missing position is rejected: new positions go through
// addPosition. A duplicate association is a conflict.
func (s *Store) addPositionArtist(ctx context.Context, desc positionDescriptor, parentID, order, artistID int64) error {
	if _, ok, err := s.positionSong(ctx, desc, parentID, order); err != nil {
		return err
	} else if !ok {
		return &NotFoundError{Entity: desc.entity}
	}
	if err := s.requireEntity(ctx, artistEntity, artistID); err != nil {
		return err
	}

	ok, err := s.exists(ctx, desc.assocTable, desc.assocWhere()+" AND artist_id = ?", parentID, order, artistID)
	if err != nil {
		return err
	}
	if ok {
		return &ConflictError{Entity: desc.assocEntity}
	}

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO "+desc.assocTable+" ("+desc.parentColumn+", "+desc.assocOrderColumn+", artist_id) VALUES (?, ?, ?)",
		parentID, order, artistID); err != nil {
		return fmt.Errorf("insert %s: %w", desc.assocEntity, err)
	}
	return nil
}

// reassignPosition edits an existing position along its two mutation axes:
// the song assigned to the position and one specific artist association.
// A zero newArtistID deletes the old association; equal submitted and stored
// values short-circuit with ErrUnchanged and write nothing.
func (s *Store) reassignPosition(ctx context.Context, desc positionDescriptor, parentID, order, songID, oldArtistID, newArtistID int64) error {
	currentSong, ok, err := s.positionSong(ctx, desc, parentID, order)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: desc.entity}
	}

	songChanged := songID != currentSong
	if songChanged {
		if err := s.requireEntity(ctx, songEntity, songID); err != nil {
			return err
		}
	}

	removeArtist := oldArtistID > 0 && newArtistID == 0
	replaceArtist := oldArtistID > 0 && newArtistID > 0 && newArtistID != oldArtistID

	if removeArtist || replaceArtist {
		ok, err := s.exists(ctx, desc.assocTable, desc.assocWhere()+" AND artist_id = ?", parentID, order, oldArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Entity: "artist"}
		}
	}
	if replaceArtist {
		if err := s.requireEntity(ctx, artistEntity, newArtistID); err != nil {
			return err
		}
		ok, err := s.exists(ctx, desc.assocTable, desc.assocWhere()+" AND artist_id = ?", parentID, order, newArtistID)
		if err != nil {
			return err
		}
		if ok {
			return &ConflictError{Entity: desc.assocEntity}
		}
	}

	if !songChanged && !removeArtist && !replaceArtist {
		return ErrUnchanged
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin edit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if songChanged {
		if _, err := tx.ExecContext(ctx,
			"UPDATE "+desc.table+" SET song_id = ? WHERE "+desc.positionWhere(),
			songID, parentID, order); err != nil {
			return fmt.Errorf("update %s song: %w", desc.entity, err)
		}
	}
	if removeArtist {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM "+desc.assocTable+" WHERE "+desc.assocWhere()+" AND artist_id = ?",
			parentID, order, oldArtistID); err != nil {
			return fmt.Errorf("delete %s: %w", desc.assocEntity, err)
		}
	}
	if replaceArtist {
		if _, err := tx.ExecContext(ctx,
			"UPDATE "+desc.assocTable+" SET artist_id = ? WHERE "+desc.assocWhere()+" AND artist_id = ?",
			newArtistID, parentID, order, oldArtistID); err != nil {
			return fmt.Errorf("update %s: %w", desc.assocEntity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit edit: %w", err)
	}
	return nil
}

// deletePosition removes a position and its artist associations in one
// transaction.
func (s *Store) deletePosition(ctx context.Context, desc positionDescriptor, parentID, order int64) error {
	if _, ok, err := s.positionSong(ctx, desc, parentID, order); err != nil {
		return err
	} else if !ok {
		return &NotFoundError{Entity: desc.entity}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM "+desc.assocTable+" WHERE "+desc.assocWhere(),
		parentID, order); err != nil {
		return fmt.Errorf("delete %s rows: %w", desc.assocEntity, err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM "+desc.table+" WHERE "+desc.positionWhere(),
		parentID, order); err != nil {
		return fmt.Errorf("delete %s: %w", desc.entity, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// positionArtists lists the artists associated with one position.
func (s *Store) positionArtists(ctx context.Context, desc positionDescriptor, parentID, order int64) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT a.id, a.name, a.group_name FROM "+desc.assocTable+" j JOIN artists a ON a.id = j.artist_id"+
			" WHERE j."+desc.parentColumn+" = ? AND j."+desc.assocOrderColumn+" = ? ORDER BY a.id",
		parentID, order)
	if err != nil {
		return nil, fmt.Errorf("list %s artists: %w", desc.entity, err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// requireEntity verifies a referenced entity exists before an association or
// dependent row is created.
func (s *Store) requireEntity(ctx context.Context, desc entityDescriptor, id int64) error {
	ok, err := s.exists(ctx, desc.table, desc.idColumn+" = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: desc.entity}
	}
	return nil
}
