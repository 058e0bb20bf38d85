package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var artistColumns = []string{"name", "group_name"}

func artistArgs(artist Artist) []any {
	return []any{artist.Name, nullableString(artist.GroupName)}
}

// ListArtists returns artists ordered by name, optionally filtered by name.
func (s *Store) ListArtists(ctx context.Context, nameFilter string) ([]Artist, error) {
	query := `SELECT id, name, group_name FROM artists`
	var args []any
	if nameFilter != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, s.likePattern(nameFilter))
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
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

// GetArtist fetches one artist by id. A missing id returns nil, not an error.
func (s *Store) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, group_name FROM artists WHERE id = ?`, id)
	artist, err := scanArtist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &artist, nil
}

// ArtistDetail fetches an artist plus every track and setlist slot they are
// credited on.
func (s *Store) ArtistDetail(ctx context.Context, id int64) (*ArtistDetail, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil || artist == nil {
		return nil, err
	}

	detail := &ArtistDetail{Artist: *artist}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ta.cd_id, c.title, ta.track_number, s.title
         FROM tracks_artists ta
         JOIN cds c ON c.id = ta.cd_id
         JOIN tracks t ON t.cd_id = ta.cd_id AND t.track_number = ta.track_number
         JOIN songs s ON s.id = t.song_id
         WHERE ta.artist_id = ?
         ORDER BY c.issued_date, ta.cd_id, ta.track_number`, id)
	if err != nil {
		return nil, fmt.Errorf("list artist tracks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var credit ArtistTrackCredit
		if err := rows.Scan(&credit.CDID, &credit.CDTitle, &credit.TrackNumber, &credit.SongTitle); err != nil {
			return nil, err
		}
		detail.Tracks = append(detail.Tracks, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	perfRows, err := s.db.QueryContext(ctx,
		`SELECT ap.concert_id, c.title, ap.order_in_concert, s.title
         FROM artists_performances ap
         JOIN concerts c ON c.id = ap.concert_id
         JOIN performances p ON p.concert_id = ap.concert_id AND p.number_of_order = ap.order_in_concert
         JOIN songs s ON s.id = p.song_id
         WHERE ap.artist_id = ?
         ORDER BY c.held_date, ap.concert_id, ap.order_in_concert`, id)
	if err != nil {
		return nil, fmt.Errorf("list artist performances: %w", err)
	}
	defer perfRows.Close()
	for perfRows.Next() {
		var credit ArtistPerformanceCredit
		if err := perfRows.Scan(&credit.ConcertID, &credit.ConcertTitle, &credit.NumberOfOrder, &credit.SongTitle); err != nil {
			return nil, err
		}
		detail.Performances = append(detail.Performances, credit)
	}
	return detail, perfRows.Err()
}

// AddArtist inserts a new artist. A zero id lets the database assign the
// next one; an explicit duplicate id fails with ErrIDExists.
func (s *Store) AddArtist(ctx context.Context, artist Artist) error {
	if artist.ID == 0 {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO artists (name, group_name) VALUES (?, ?)`,
			artistArgs(artist)...); err != nil {
			return fmt.Errorf("insert artist: %w", err)
		}
		return nil
	}
	return s.addEntity(ctx, artistEntity, artist.ID, artistColumns, artistArgs(artist))
}

// UpdateArtist updates an artist's name and group; the id is immutable.
func (s *Store) UpdateArtist(ctx context.Context, artist Artist) error {
	return s.updateEntity(ctx, artistEntity, artist.ID, artistColumns, artistArgs(artist))
}

// DeleteArtist removes an artist. Artists have no application-level cascade:
// an artist still associated with a track or performance fails the
// foreign-key constraint and the delete is reported as a storage error.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return s.deleteEntity(ctx, artistEntity, id)
}

func scanArtist(scanner interface{ Scan(dest ...any) error }) (Artist, error) {
	var artist Artist
	var group sql.NullString
	if err := scanner.Scan(&artist.ID, &artist.Name, &group); err != nil {
		return Artist{}, err
	}
	artist.GroupName = group.String
	return artist, nil
}
