package catalog_test

import (
	"context"
	"errors"
	"testing"

	"discograph/internal/catalog"
	"discograph/internal/testsupport"
)

func seedTrackFixture(t *testing.T) *catalog.Store {
	t.Helper()

	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Album"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Opening")
	testsupport.SeedSong(t, store, 2, "Closing")
	testsupport.SeedArtist(t, store, 1, "Lead")
	testsupport.SeedArtist(t, store, 2, "Support")
	return store
}

func TestAddTrackWithArtist(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	track, err := store.GetTrack(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GetTrack: %v", err)
	}
	if track == nil || track.SongID != 1 {
		t.Fatalf("unexpected track: %+v", track)
	}
	artists, err := store.TrackArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 1 || artists[0].ID != 1 {
		t.Fatalf("unexpected credits: %+v", artists)
	}
}

func TestAddTrackWithoutArtist(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 0); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	artists, err := store.TrackArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected no credits, got %+v", artists)
	}
}

func TestAddTrackMissingReferences(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		track  catalog.Track
		artist int64
		entity string
	}{
		{"missing cd", catalog.Track{CDID: 9, TrackNumber: 1, SongID: 1}, 0, "cd"},
		{"missing song", catalog.Track{CDID: 1, TrackNumber: 1, SongID: 9}, 0, "song"},
		{"missing artist", catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 9, "artist"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.AddTrack(ctx, tc.track, tc.artist)
			var notFound *catalog.NotFoundError
			if !errors.As(err, &notFound) || notFound.Entity != tc.entity {
				t.Fatalf("expected %s not-found, got %v", tc.entity, err)
			}
		})
	}
}

func TestAddTrackDuplicatePosition(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 0); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 2}, 0)
	var conflict *catalog.ConflictError
	if !errors.As(err, &conflict) || conflict.Entity != "track" {
		t.Fatalf("expected track conflict, got %v", err)
	}
}

func TestAddTrackArtist(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.AddTrackArtist(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddTrackArtist: %v", err)
	}

	err := store.AddTrackArtist(ctx, 1, 1, 2)
	var conflict *catalog.ConflictError
	if !errors.As(err, &conflict) || conflict.Entity != "track-artist" {
		t.Fatalf("expected track-artist conflict, got %v", err)
	}

	err = store.AddTrackArtist(ctx, 1, 5, 1)
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "track" {
		t.Fatalf("expected track not-found, got %v", err)
	}
}

func TestReassignTrackSong(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.ReassignTrack(ctx, 1, 1, 2, 1, 1); err != nil {
		t.Fatalf("ReassignTrack: %v", err)
	}
	track, err := store.GetTrack(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GetTrack: %v", err)
	}
	if track.SongID != 2 {
		t.Fatalf("expected song 2, got %+v", track)
	}
}

func TestReassignTrackReplaceArtist(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.ReassignTrack(ctx, 1, 1, 1, 1, 2); err != nil {
		t.Fatalf("ReassignTrack: %v", err)
	}
	artists, err := store.TrackArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 1 || artists[0].ID != 2 {
		t.Fatalf("expected credit swapped to 2, got %+v", artists)
	}
}

func TestReassignTrackRemoveArtist(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.ReassignTrack(ctx, 1, 1, 1, 1, 0); err != nil {
		t.Fatalf("ReassignTrack: %v", err)
	}
	artists, err := store.TrackArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected credit removed, got %+v", artists)
	}
}

func TestReassignTrackUnchanged(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	err := store.ReassignTrack(ctx, 1, 1, 1, 1, 1)
	if !errors.Is(err, catalog.ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
}

func TestReassignTrackDuplicateAssociation(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.AddTrackArtist(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddTrackArtist: %v", err)
	}
	err := store.ReassignTrack(ctx, 1, 1, 1, 1, 2)
	var conflict *catalog.ConflictError
	if !errors.As(err, &conflict) || conflict.Entity != "track-artist" {
		t.Fatalf("expected track-artist conflict, got %v", err)
	}
}

func TestReassignMissingTrack(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	err := store.ReassignTrack(ctx, 1, 8, 1, 0, 0)
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "track" {
		t.Fatalf("expected track not-found, got %v", err)
	}
}

func TestDeleteTrackRemovesCredits(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.DeleteTrack(ctx, 1, 1); err != nil {
		t.Fatalf("DeleteTrack: %v", err)
	}
	if track, err := store.GetTrack(ctx, 1, 1); err != nil || track != nil {
		t.Fatalf("expected track gone, got %+v err %v", track, err)
	}
	artists, err := store.TrackArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected credits gone, got %+v", artists)
	}

	err = store.DeleteTrack(ctx, 1, 1)
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "track" {
		t.Fatalf("expected track not-found, got %v", err)
	}
}

func TestPerformanceLifecycle(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddConcert(ctx, catalog.Concert{ID: 1, Title: "Live", HeldDate: "2004-08-01"}); err != nil {
		t.Fatalf("AddConcert: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Anthem")
	testsupport.SeedSong(t, store, 2, "Encore")
	testsupport.SeedArtist(t, store, 1, "Vocalist")
	testsupport.SeedArtist(t, store, 2, "Guest")

	if err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 1, NumberOfOrder: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}

	err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 1, NumberOfOrder: 1, SongID: 2}, 0)
	var conflict *catalog.ConflictError
	if !errors.As(err, &conflict) || conflict.Entity != "performance" {
		t.Fatalf("expected performance conflict, got %v", err)
	}

	if err := store.AddPerformanceArtist(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddPerformanceArtist: %v", err)
	}
	err = store.AddPerformanceArtist(ctx, 1, 1, 2)
	if !errors.As(err, &conflict) || conflict.Entity != "performance-artist" {
		t.Fatalf("expected performance-artist conflict, got %v", err)
	}

	if err := store.ReassignPerformance(ctx, 1, 1, 2, 2, 0); err != nil {
		t.Fatalf("ReassignPerformance: %v", err)
	}
	perf, err := store.GetPerformance(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GetPerformance: %v", err)
	}
	if perf.SongID != 2 {
		t.Fatalf("expected song 2, got %+v", perf)
	}
	artists, err := store.PerformanceArtists(ctx, 1, 1)
	if err != nil {
		t.Fatalf("PerformanceArtists: %v", err)
	}
	if len(artists) != 1 || artists[0].ID != 1 {
		t.Fatalf("expected only vocalist left, got %+v", artists)
	}

	if err := store.DeletePerformance(ctx, 1, 1); err != nil {
		t.Fatalf("DeletePerformance: %v", err)
	}
	if perf, err := store.GetPerformance(ctx, 1, 1); err != nil || perf != nil {
		t.Fatalf("expected performance gone, got %+v err %v", perf, err)
	}
}

func TestConcertDetailSetlist(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddConcert(ctx, catalog.Concert{ID: 1, Title: "Live", HeldDate: "2004-08-01"}); err != nil {
		t.Fatalf("AddConcert: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Anthem")
	testsupport.SeedArtist(t, store, 1, "Vocalist")
	if err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 1, NumberOfOrder: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}

	detail, err := store.ConcertDetail(ctx, 1)
	if err != nil {
		t.Fatalf("ConcertDetail: %v", err)
	}
	if detail == nil || len(detail.Setlist) != 1 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	entry := detail.Setlist[0]
	if entry.SongTitle != "Anthem" || len(entry.Artists) != 1 || entry.Artists[0].Name != "Vocalist" {
		t.Fatalf("unexpected setlist entry: %+v", entry)
	}
}

func TestArtistDetailCredits(t *testing.T) {
	store := seedTrackFixture(t)
	ctx := context.Background()

	if err := store.AddConcert(ctx, catalog.Concert{ID: 1, Title: "Live", HeldDate: "2004-08-01"}); err != nil {
		t.Fatalf("AddConcert: %v", err)
	}
	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 3, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 1, NumberOfOrder: 5, SongID: 2}, 1); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}

	detail, err := store.ArtistDetail(ctx, 1)
	if err != nil {
		t.Fatalf("ArtistDetail: %v", err)
	}
	if detail == nil {
		t.Fatal("expected detail, got nil")
	}
	if len(detail.Tracks) != 1 || detail.Tracks[0].TrackNumber != 3 || detail.Tracks[0].SongTitle != "Opening" {
		t.Fatalf("unexpected track credits: %+v", detail.Tracks)
	}
	if len(detail.Performances) != 1 || detail.Performances[0].NumberOfOrder != 5 || detail.Performances[0].SongTitle != "Closing" {
		t.Fatalf("unexpected performance credits: %+v", detail.Performances)
	}
}
