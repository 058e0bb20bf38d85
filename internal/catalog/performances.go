package catalog

import "context"

// GetPerformance returns one performance or nil when the slot is empty.
func (s *Store) GetPerformance(ctx context.Context, concertID, numberOfOrder int64) (*Performance, error) {
	songID, ok, err := s.positionSong(ctx, performancePosition, concertID, numberOfOrder)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Performance{ConcertID: concertID, NumberOfOrder: numberOfOrder, SongID: songID}, nil
}

// AddPerformance records a song performed at a concert, optionally crediting
// one artist. An artistID of zero records the performance without an artist.
func (s *Store) AddPerformance(ctx context.Context, performance Performance, artistID int64) error {
	return s.addPosition(ctx, performancePosition, performance.ConcertID, performance.NumberOfOrder, performance.SongID, artistID)
}

// AddPerformanceArtist credits one more artist on an existing performance.
func (s *Store) AddPerformanceArtist(ctx context.Context, concertID, numberOfOrder, artistID int64) error {
	return s.addPositionArtist(ctx, performancePosition, concertID, numberOfOrder, artistID)
}

// ReassignPerformance changes the song on a performance, or swaps one artist
// credit for another. A zero newArtistID drops the oldArtistID credit. When
// nothing would change the call returns ErrUnchanged.
func (s *Store) ReassignPerformance(ctx context.Context, concertID, numberOfOrder, songID, oldArtistID, newArtistID int64) error {
	return s.reassignPosition(ctx, performancePosition, concertID, numberOfOrder, songID, oldArtistID, newArtistID)
}

// DeletePerformance removes a performance and its artist credits.
func (s *Store) DeletePerformance(ctx context.Context, concertID, numberOfOrder int64) error {
	return s.deletePosition(ctx, performancePosition, concertID, numberOfOrder)
}

// PerformanceArtists lists the artists credited on one performance.
func (s *Store) PerformanceArtists(ctx context.Context, concertID, numberOfOrder int64) ([]Artist, error) {
	return s.positionArtists(ctx, performancePosition, concertID, numberOfOrder)
}
