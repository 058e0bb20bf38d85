// Package catalog manages discography persistence backed by SQLite.
//
// Six entity tables (cds, songs, artists, concerts, tracks, performances)
// and two junction tables (tracks_artists, artists_performances) hold the
// record set. Lookups return nil for missing rows; write conflicts surface
// as typed errors so handlers can map them to outcome codes. Deletes of CDs
// and concerts cascade through their dependent rows explicitly, inside a
// single transaction.
package catalog
