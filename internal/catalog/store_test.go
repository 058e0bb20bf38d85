package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"discograph/internal/catalog"
	"discograph/internal/config"
	"discograph/internal/testsupport"
)

func TestAddAndGetCD(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	cd := catalog.CD{
		ID:            10,
		Title:         "First Press",
		SeriesName:    "Singles",
		OrderInSeries: sql.NullInt64{Int64: 3, Valid: true},
		IssuedDate:    "2001-04-25",
	}
	if err := store.AddCD(ctx, cd); err != nil {
		t.Fatalf("AddCD: %v", err)
	}

	got, err := store.GetCD(ctx, 10)
	if err != nil {
		t.Fatalf("GetCD: %v", err)
	}
	if got == nil {
		t.Fatal("expected CD, got nil")
	}
	if got.Title != cd.Title || got.SeriesName != cd.SeriesName || got.IssuedDate != cd.IssuedDate {
		t.Fatalf("unexpected CD: %+v", got)
	}
	if !got.OrderInSeries.Valid || got.OrderInSeries.Int64 != 3 {
		t.Fatalf("unexpected order in series: %+v", got.OrderInSeries)
	}
}

func TestAddCDDuplicateID(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "One"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Other"})
	if !errors.Is(err, catalog.ErrIDExists) {
		t.Fatalf("expected ErrIDExists, got %v", err)
	}
}

func TestAddArtistWithoutIDAutoAssigns(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddArtist(ctx, catalog.Artist{ID: 7, Name: "Seeded"}); err != nil {
		t.Fatalf("AddArtist: %v", err)
	}
	if err := store.AddArtist(ctx, catalog.Artist{Name: "Appended"}); err != nil {
		t.Fatalf("AddArtist without id: %v", err)
	}

	artists, err := store.ListArtists(ctx, "Appended")
	if err != nil {
		t.Fatalf("ListArtists: %v", err)
	}
	if len(artists) != 1 {
		t.Fatalf("expected one artist, got %d", len(artists))
	}
	if artists[0].ID <= 7 {
		t.Fatalf("expected an id above the seeded one, got %d", artists[0].ID)
	}
}

func TestOptionalFieldsStoredAsNull(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 2, Title: "Bare"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	got, err := store.GetCD(ctx, 2)
	if err != nil {
		t.Fatalf("GetCD: %v", err)
	}
	if got.OrderInSeries.Valid {
		t.Fatalf("expected NULL order in series, got %+v", got.OrderInSeries)
	}
	if got.SeriesName != "" || got.IssuedDate != "" {
		t.Fatalf("expected empty optional fields, got %+v", got)
	}
}

func TestGetMissingEntityReturnsNil(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	got, err := store.GetCD(ctx, 99)
	if err != nil {
		t.Fatalf("GetCD: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing CD, got %+v", got)
	}
}

func TestUpdateCD(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 3, Title: "Before"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	updated := catalog.CD{ID: 3, Title: "After", IssuedDate: "1999-01-01"}
	if err := store.UpdateCD(ctx, updated); err != nil {
		t.Fatalf("UpdateCD: %v", err)
	}
	got, err := store.GetCD(ctx, 3)
	if err != nil {
		t.Fatalf("GetCD: %v", err)
	}
	if got.Title != "After" || got.IssuedDate != "1999-01-01" {
		t.Fatalf("unexpected CD after update: %+v", got)
	}
}

func TestUpdateMissingCD(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	err := store.UpdateCD(ctx, catalog.CD{ID: 404, Title: "Ghost"})
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "cd" {
		t.Fatalf("expected cd not-found error, got %v", err)
	}
}

func TestDeleteCDCascades(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 5, Title: "Album"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	testsupport.SeedSong(t, store, 7, "Opening")
	testsupport.SeedArtist(t, store, 9, "Lead")
	if err := store.AddTrack(ctx, catalog.Track{CDID: 5, TrackNumber: 1, SongID: 7}, 9); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	if err := store.DeleteCD(ctx, 5); err != nil {
		t.Fatalf("DeleteCD: %v", err)
	}

	if got, err := store.GetCD(ctx, 5); err != nil || got != nil {
		t.Fatalf("expected CD gone, got %+v err %v", got, err)
	}
	if track, err := store.GetTrack(ctx, 5, 1); err != nil || track != nil {
		t.Fatalf("expected track gone, got %+v err %v", track, err)
	}
	artists, err := store.TrackArtists(ctx, 5, 1)
	if err != nil {
		t.Fatalf("TrackArtists: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected credits gone, got %+v", artists)
	}

	// Referenced song and artist survive the cascade.
	if song, err := store.GetSong(ctx, 7); err != nil || song == nil {
		t.Fatalf("expected song to survive, got %+v err %v", song, err)
	}
	if artist, err := store.GetArtist(ctx, 9); err != nil || artist == nil {
		t.Fatalf("expected artist to survive, got %+v err %v", artist, err)
	}
}

func TestDeleteConcertCascades(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddConcert(ctx, catalog.Concert{ID: 4, Title: "Tour Final", HeldDate: "2003-12-24"}); err != nil {
		t.Fatalf("AddConcert: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Encore")
	testsupport.SeedArtist(t, store, 2, "Vocalist")
	if err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 4, NumberOfOrder: 1, SongID: 1}, 2); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}

	if err := store.DeleteConcert(ctx, 4); err != nil {
		t.Fatalf("DeleteConcert: %v", err)
	}
	if got, err := store.GetConcert(ctx, 4); err != nil || got != nil {
		t.Fatalf("expected concert gone, got %+v err %v", got, err)
	}
	if perf, err := store.GetPerformance(ctx, 4, 1); err != nil || perf != nil {
		t.Fatalf("expected performance gone, got %+v err %v", perf, err)
	}
}

func TestDeleteReferencedSongFails(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Album"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Kept")
	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 0); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	if err := store.DeleteSong(ctx, 1); err == nil {
		t.Fatal("expected delete of referenced song to fail")
	}
	if song, err := store.GetSong(ctx, 1); err != nil || song == nil {
		t.Fatalf("expected song to remain, got %+v err %v", song, err)
	}
}

func TestListCDsSubstringFilter(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	seed := []catalog.CD{
		{ID: 1, Title: "Winter Tales", IssuedDate: "1998-12-01"},
		{ID: 2, Title: "Endless Summer", IssuedDate: "1999-07-07"},
		{ID: 3, Title: "Summer Again", IssuedDate: "2000-07-07"},
	}
	for _, cd := range seed {
		if err := store.AddCD(ctx, cd); err != nil {
			t.Fatalf("AddCD %d: %v", cd.ID, err)
		}
	}

	got, err := store.ListCDs(ctx, "Summer")
	if err != nil {
		t.Fatalf("ListCDs: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected filtered list: %+v", got)
	}

	all, err := store.ListCDs(ctx, "")
	if err != nil {
		t.Fatalf("ListCDs all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 CDs, got %d", len(all))
	}
}

func TestListCDsExactFilter(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFilterMatch(config.FilterMatchExact))
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Summer"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	if err := store.AddCD(ctx, catalog.CD{ID: 2, Title: "Endless Summer"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}

	got, err := store.ListCDs(ctx, "Summer")
	if err != nil {
		t.Fatalf("ListCDs: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected exact match only, got %+v", got)
	}
}

func TestCDDetailMergesCredits(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Album"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	testsupport.SeedSong(t, store, 1, "Opening")
	testsupport.SeedSong(t, store, 2, "Closing")
	testsupport.SeedArtist(t, store, 1, "Lead")
	testsupport.SeedArtist(t, store, 2, "Support")
	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 1, SongID: 1}, 1); err != nil {
		t.Fatalf("AddTrack 1: %v", err)
	}
	if err := store.AddTrackArtist(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddTrackArtist: %v", err)
	}
	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 2, SongID: 2}, 0); err != nil {
		t.Fatalf("AddTrack 2: %v", err)
	}

	detail, err := store.CDDetail(ctx, 1)
	if err != nil {
		t.Fatalf("CDDetail: %v", err)
	}
	if detail == nil || len(detail.Tracks) != 2 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	first := detail.Tracks[0]
	if first.TrackNumber != 1 || first.SongTitle != "Opening" || len(first.Artists) != 2 {
		t.Fatalf("unexpected first track: %+v", first)
	}
	second := detail.Tracks[1]
	if second.SongTitle != "Closing" || len(second.Artists) != 0 {
		t.Fatalf("unexpected second track: %+v", second)
	}
}

func TestSongDetailListsAppearances(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.SeedSong(t, store, 1, "Anthem")
	if err := store.AddCD(ctx, catalog.CD{ID: 1, Title: "Album", IssuedDate: "2000-01-01"}); err != nil {
		t.Fatalf("AddCD: %v", err)
	}
	if err := store.AddConcert(ctx, catalog.Concert{ID: 1, Title: "Live", HeldDate: "2000-06-01"}); err != nil {
		t.Fatalf("AddConcert: %v", err)
	}
	if err := store.AddTrack(ctx, catalog.Track{CDID: 1, TrackNumber: 4, SongID: 1}, 0); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := store.AddPerformance(ctx, catalog.Performance{ConcertID: 1, NumberOfOrder: 2, SongID: 1}, 0); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}

	detail, err := store.SongDetail(ctx, 1)
	if err != nil {
		t.Fatalf("SongDetail: %v", err)
	}
	if detail == nil {
		t.Fatal("expected detail, got nil")
	}
	if len(detail.Appearances) != 1 || detail.Appearances[0].CDTitle != "Album" || detail.Appearances[0].TrackNumber != 4 {
		t.Fatalf("unexpected appearances: %+v", detail.Appearances)
	}
	if len(detail.Performances) != 1 || detail.Performances[0].ConcertTitle != "Live" {
		t.Fatalf("unexpected performances: %+v", detail.Performances)
	}
}
