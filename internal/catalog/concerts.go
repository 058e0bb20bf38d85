package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var concertColumns = []string{"title", "held_date"}

// ListConcerts returns concerts ordered by held date, optionally filtered by
// title.
func (s *Store) ListConcerts(ctx context.Context, titleFilter string) ([]Concert, error) {
	query := `SELECT id, title, held_date FROM concerts`
	var args []any
	if titleFilter != "" {
		query += ` WHERE title LIKE ?`
		args = append(args, s.likePattern(titleFilter))
	}
	query += ` ORDER BY held_date, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	defer rows.Close()

	var concerts []Concert
	for rows.Next() {
		concert, err := scanConcert(rows)
		if err != nil {
			return nil, err
		}
		concerts = append(concerts, concert)
	}
	return concerts, rows.Err()
}

// GetConcert fetches one concert by id. A missing id returns nil, not an
// error.
func (s *Store) GetConcert(ctx context.Context, id int64) (*Concert, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, title, held_date FROM concerts WHERE id = ?`, id)
	concert, err := scanConcert(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get concert: %w", err)
	}
	return &concert, nil
}

// ConcertDetail fetches a concert together with its setlist, songs, and the
// artists on each slot.
func (s *Store) ConcertDetail(ctx context.Context, id int64) (*ConcertDetail, error) {
	concert, err := s.GetConcert(ctx, id)
	if err != nil || concert == nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.number_of_order, s.id, s.title
         FROM performances p JOIN songs s ON s.id = p.song_id
         WHERE p.concert_id = ? ORDER BY p.number_of_order`, id)
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	defer rows.Close()

	detail := &ConcertDetail{Concert: *concert}
	index := make(map[int64]int)
	for rows.Next() {
		var entry SetlistEntry
		if err := rows.Scan(&entry.NumberOfOrder, &entry.SongID, &entry.SongTitle); err != nil {
			return nil, err
		}
		index[entry.NumberOfOrder] = len(detail.Setlist)
		detail.Setlist = append(detail.Setlist, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	artistRows, err := s.db.QueryContext(ctx,
		`SELECT ap.order_in_concert, a.id, a.name, a.group_name
         FROM artists_performances ap JOIN artists a ON a.id = ap.artist_id
         WHERE ap.concert_id = ? ORDER BY ap.order_in_concert, a.id`, id)
	if err != nil {
		return nil, fmt.Errorf("list performance artists: %w", err)
	}
	defer artistRows.Close()

	for artistRows.Next() {
		var order int64
		var artist Artist
		var group sql.NullString
		if err := artistRows.Scan(&order, &artist.ID, &artist.Name, &group); err != nil {
			return nil, err
		}
		artist.GroupName = group.String
		if i, ok := index[order]; ok {
			detail.Setlist[i].Artists = append(detail.Setlist[i].Artists, artist)
		}
	}
	return detail, artistRows.Err()
}

// AddConcert inserts a new concert. A duplicate id fails with ErrIDExists.
func (s *Store) AddConcert(ctx context.Context, concert Concert) error {
	return s.addEntity(ctx, concertEntity, concert.ID, concertColumns,
		[]any{concert.Title, concert.HeldDate})
}

// UpdateConcert updates a concert's title and held date; the id is immutable.
func (s *Store) UpdateConcert(ctx context.Context, concert Concert) error {
	return s.updateEntity(ctx, concertEntity, concert.ID, concertColumns,
		[]any{concert.Title, concert.HeldDate})
}

// DeleteConcert removes a concert, its performances, and their artist
// associations in one transaction.
func (s *Store) DeleteConcert(ctx context.Context, id int64) error {
	return s.deleteEntity(ctx, concertEntity, id)
}

func scanConcert(scanner interface{ Scan(dest ...any) error }) (Concert, error) {
	var concert Concert
	var held sql.NullString
	if err := scanner.Scan(&concert.ID, &concert.Title, &held); err != nil {
		return Concert{}, err
	}
	concert.HeldDate = held.String
	return concert, nil
}
