package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var songColumns = []string{"title"}

// ListSongs returns songs ordered by title, optionally filtered by title.
func (s *Store) ListSongs(ctx context.Context, titleFilter string) ([]Song, error) {
	query := `SELECT id, title FROM songs`
	var args []any
	if titleFilter != "" {
		query += ` WHERE title LIKE ?`
		args = append(args, s.likePattern(titleFilter))
	}
	query += ` ORDER BY title, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// GetSong fetches one song by id. A missing id returns nil, not an error.
func (s *Store) GetSong(ctx context.Context, id int64) (*Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `SELECT id, title FROM songs WHERE id = ?`, id).
		Scan(&song.ID, &song.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return &song, nil
}

// SongDetail fetches a song plus every CD track and concert performance that
// references it.
func (s *Store) SongDetail(ctx context.Context, id int64) (*SongDetail, error) {
	song, err := s.GetSong(ctx, id)
	if err != nil || song == nil {
		return nil, err
	}

	detail := &SongDetail{Song: *song}

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.cd_id, c.title, t.track_number
         FROM tracks t JOIN cds c ON c.id = t.cd_id
         WHERE t.song_id = ? ORDER BY c.issued_date, t.cd_id, t.track_number`, id)
	if err != nil {
		return nil, fmt.Errorf("list song appearances: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var app SongAppearance
		if err := rows.Scan(&app.CDID, &app.CDTitle, &app.TrackNumber); err != nil {
			return nil, err
		}
		detail.Appearances = append(detail.Appearances, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	perfRows, err := s.db.QueryContext(ctx,
		`SELECT p.concert_id, c.title, p.number_of_order
         FROM performances p JOIN concerts c ON c.id = p.concert_id
         WHERE p.song_id = ? ORDER BY c.held_date, p.concert_id, p.number_of_order`, id)
	if err != nil {
		return nil, fmt.Errorf("list song performances: %w", err)
	}
	defer perfRows.Close()
	for perfRows.Next() {
		var perf SongPerformance
		if err := perfRows.Scan(&perf.ConcertID, &perf.ConcertTitle, &perf.NumberOfOrder); err != nil {
			return nil, err
		}
		detail.Performances = append(detail.Performances, perf)
	}
	return detail, perfRows.Err()
}

// AddSong inserts a new song. A duplicate id fails with ErrIDExists.
func (s *Store) AddSong(ctx context.Context, song Song) error {
	return s.addEntity(ctx, songEntity, song.ID, songColumns, []any{song.Title})
}

// UpdateSong updates a song's title; the id is immutable.
func (s *Store) UpdateSong(ctx context.Context, song Song) error {
	return s.updateEntity(ctx, songEntity, song.ID, songColumns, []any{song.Title})
}

// DeleteSong removes a song. Songs have no application-level cascade: a song
// still referenced by a track or performance fails the foreign-key
// constraint and the delete is reported as a storage error.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	return s.deleteEntity(ctx, songEntity, id)
}
