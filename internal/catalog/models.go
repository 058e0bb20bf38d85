package catalog

import "database/sql"

// CD is one disc in the discography. Ids are externally supplied and
// immutable after creation. SeriesName and OrderInSeries are optional.
type CD struct {
	ID            int64
	Title         string
	SeriesName    string
	OrderInSeries sql.NullInt64
	IssuedDate    string
}

// Song is one composition, referenced by tracks and performances.
type Song struct {
	ID    int64
	Title string
}

// Artist is one performer, optionally part of a group.
type Artist struct {
	ID        int64
	Name      string
	GroupName string
}

// Concert is one live event with an ordered setlist.
type Concert struct {
	ID       int64
	Title    string
	HeldDate string
}

// Track is one position on a CD's track listing. Identity is
// (CDID, TrackNumber).
type Track struct {
	CDID        int64
	TrackNumber int64
	SongID      int64
}

// Performance is one setlist slot in a concert. Identity is
// (ConcertID, NumberOfOrder).
type Performance struct {
	ConcertID     int64
	NumberOfOrder int64
	SongID        int64
}

// TrackListing is one row of a CD detail page: the track position, its song,
// and the artists credited on it.
type TrackListing struct {
	TrackNumber int64
	SongID      int64
	SongTitle   string
	Artists     []Artist
}

// CDDetail is a CD with its full track listing.
type CDDetail struct {
	CD     CD
	Tracks []TrackListing
}

// SetlistEntry is one row of a concert detail page.
type SetlistEntry struct {
	NumberOfOrder int64
	SongID        int64
	SongTitle     string
	Artists       []Artist
}

// ConcertDetail is a concert with its full setlist.
type ConcertDetail struct {
	Concert Concert
	Setlist []SetlistEntry
}

// SongAppearance records a CD position where a song appears.
type SongAppearance struct {
	CDID        int64
	CDTitle     string
	TrackNumber int64
}

// SongPerformance records a concert slot where a song was performed.
type SongPerformance struct {
	ConcertID     int64
	ConcertTitle  string
	NumberOfOrder int64
}

// SongDetail is a song with every place it shows up.
type SongDetail struct {
	Song         Song
	Appearances  []SongAppearance
	Performances []SongPerformance
}

// ArtistTrackCredit records a track an artist is credited on.
type ArtistTrackCredit struct {
	CDID        int64
	CDTitle     string
	TrackNumber int64
	SongTitle   string
}

// ArtistPerformanceCredit records a setlist slot an artist performed.
type ArtistPerformanceCredit struct {
	ConcertID     int64
	ConcertTitle  string
	NumberOfOrder int64
	SongTitle     string
}

// ArtistDetail is an artist with their studio and live credits.
type ArtistDetail struct {
	Artist       Artist
	Tracks       []ArtistTrackCredit
	Performances []ArtistPerformanceCredit
}
