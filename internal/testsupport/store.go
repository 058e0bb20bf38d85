package testsupport

import (
	"context"
	"testing"

	"discograph/internal/catalog"
	"discograph/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedSong inserts a song for tests using the provided store.
func SeedSong(t testing.TB, store *catalog.Store, id int64, title string) {
	t.Helper()

	if err := store.AddSong(context.Background(), catalog.Song{ID: id, Title: title}); err != nil {
		t.Fatalf("store.AddSong: %v", err)
	}
}

// SeedArtist inserts an artist for tests using the provided store.
func SeedArtist(t testing.TB, store *catalog.Store, id int64, name string) {
	t.Helper()

	if err := store.AddArtist(context.Background(), catalog.Artist{ID: id, Name: name}); err != nil {
		t.Fatalf("store.AddArtist: %v", err)
	}
}
