package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var cdColumns = []string{"title", "series_name", "order_in_series", "issued_date"}

func cdArgs(cd CD) []any {
	return []any{
		cd.Title,
		nullableString(cd.SeriesName),
		nullableInt(cd.OrderInSeries),
		cd.IssuedDate,
	}
}

// ListCDs returns CDs ordered by issue date, optionally filtered by title.
func (s *Store) ListCDs(ctx context.Context, titleFilter string) ([]CD, error) {
	query := `SELECT id, title, series_name, order_in_series, issued_date FROM cds`
	var args []any
	if titleFilter != "" {
		query += ` WHERE title LIKE ?`
		args = append(args, s.likePattern(titleFilter))
	}
	query += ` ORDER BY issued_date, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cds: %w", err)
	}
	defer rows.Close()

	var cds []CD
	for rows.Next() {
		cd, err := scanCD(rows)
		if err != nil {
			return nil, err
		}
		cds = append(cds, cd)
	}
	return cds, rows.Err()
}

// GetCD fetches one CD by id. A missing id returns nil, not an error.
func (s *Store) GetCD(ctx context.Context, id int64) (*CD, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, series_name, order_in_series, issued_date FROM cds WHERE id = ?`, id)
	cd, err := scanCD(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cd: %w", err)
	}
	return &cd, nil
}

// CDDetail fetches a CD together with its track listing, songs, and the
// artists credited on each track.
func (s *Store) CDDetail(ctx context.Context, id int64) (*CDDetail, error) {
	cd, err := s.GetCD(ctx, id)
	if err != nil || cd == nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.track_number, s.id, s.title
         FROM tracks t JOIN songs s ON s.id = t.song_id
         WHERE t.cd_id = ? ORDER BY t.track_number`, id)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	detail := &CDDetail{CD: *cd}
	index := make(map[int64]int)
	for rows.Next() {
		var listing TrackListing
		if err := rows.Scan(&listing.TrackNumber, &listing.SongID, &listing.SongTitle); err != nil {
			return nil, err
		}
		index[listing.TrackNumber] = len(detail.Tracks)
		detail.Tracks = append(detail.Tracks, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	artistRows, err := s.db.QueryContext(ctx,
		`SELECT ta.track_number, a.id, a.name, a.group_name
         FROM tracks_artists ta JOIN artists a ON a.id = ta.artist_id
         WHERE ta.cd_id = ? ORDER BY ta.track_number, a.id`, id)
	if err != nil {
		return nil, fmt.Errorf("list track artists: %w", err)
	}
	defer artistRows.Close()

	for artistRows.Next() {
		var trackNumber int64
		var artist Artist
		var group sql.NullString
		if err := artistRows.Scan(&trackNumber, &artist.ID, &artist.Name, &group); err != nil {
			return nil, err
		}
		artist.GroupName = group.String
		if i, ok := index[trackNumber]; ok {
			detail.Tracks[i].Artists = append(detail.Tracks[i].Artists, artist)
		}
	}
	return detail, artistRows.Err()
}

// AddCD inserts a new CD. A duplicate id fails with ErrIDExists.
func (s *Store) AddCD(ctx context.Context, cd CD) error {
	return s.addEntity(ctx, cdEntity, cd.ID, cdColumns, cdArgs(cd))
}

// UpdateCD updates the mutable fields of a CD; the id is immutable. A blank
// OrderInSeries is written as SQL NULL.
func (s *Store) UpdateCD(ctx context.Context, cd CD) error {
	return s.updateEntity(ctx, cdEntity, cd.ID, cdColumns, cdArgs(cd))
}

// DeleteCD removes a CD, its tracks, and their artist associations in one
// transaction.
func (s *Store) DeleteCD(ctx context.Context, id int64) error {
	return s.deleteEntity(ctx, cdEntity, id)
}

func scanCD(scanner interface{ Scan(dest ...any) error }) (CD, error) {
	var cd CD
	var series sql.NullString
	var issued sql.NullString
	if err := scanner.Scan(&cd.ID, &cd.Title, &series, &cd.OrderInSeries, &issued); err != nil {
		return CD{}, err
	}
	cd.SeriesName = series.String
	cd.IssuedDate = issued.String
	return cd, nil
}
