package catalog

import "context"

// GetTrack returns one track or nil when the position is empty.
func (s *Store) GetTrack(ctx context.Context, cdID, trackNumber int64) (*Track, error) {
	songID, ok, err := s.positionSong(ctx, trackPosition, cdID, trackNumber)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Track{CDID: cdID, TrackNumber: trackNumber, SongID: songID}, nil
}

// AddTrack creates a track on a CD, optionally crediting one artist.
// An artistID of zero records the track without an artist.
func (s *Store) AddTrack(ctx context.Context, track Track, artistID int64) error {
	return s.addPosition(ctx, trackPosition, track.CDID, track.TrackNumber, track.SongID, artistID)
}

// AddTrackArtist credits one more artist on an existing track.
func (s *Store) AddTrackArtist(ctx context.Context, cdID, trackNumber, artistID int64) error {
	return s.addPositionArtist(ctx, trackPosition, cdID, trackNumber, artistID)
}

// ReassignTrack changes the song on a track, or swaps one artist credit for
// another. A zero newArtistID drops the oldArtistID credit. When nothing
// would change the call returns ErrUnchanged.
func (s *Store) ReassignTrack(ctx context.Context, cdID, trackNumber, songID, oldArtistID, newArtistID int64) error {
	return s.reassignPosition(ctx, trackPosition, cdID, trackNumber, songID, oldArtistID, newArtistID)
}

// DeleteTrack removes a track and its artist credits.
func (s *Store) DeleteTrack(ctx context.Context, cdID, trackNumber int64) error {
	return s.deletePosition(ctx, trackPosition, cdID, trackNumber)
}

// TrackArtists lists the artists credited on one track.
func (s *Store) TrackArtists(ctx context.Context, cdID, trackNumber int64) ([]Artist, error) {
	return s.positionArtists(ctx, trackPosition, cdID, trackNumber)
}
