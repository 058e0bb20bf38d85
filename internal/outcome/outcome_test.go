package outcome

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	cases := []Outcome{
		Added("cd"),
		Added("song"),
		Added("track"),
		Updated(),
		Deleted(),
		Unchanged(),
		DatabaseError(),
		ControlCharacter(),
		InvalidNumber("id"),
		InvalidNumber("order_in_series"),
		InvalidNumber("new_artist_id"),
		IDExists(),
		NotFound("id"),
		NotFound("song"),
		NotFound("performance"),
		PositionExists("track"),
		AssociationExists(),
	}
	for _, o := range cases {
		parsed := Parse(o.Token())
		if parsed != o {
			t.Fatalf("round trip failed for %q: got %+v, want %+v", o.Token(), parsed, o)
		}
	}
}

func TestWellKnownTokens(t *testing.T) {
	cases := map[string]Outcome{
		"cd-added":                    Added("cd"),
		"id-has-invalid-charactor":    InvalidNumber("id"),
		"include-control-charactor":   ControlCharacter(),
		"id-already-exists":           IDExists(),
		"song-does-not-exist":         NotFound("song"),
		"database-error":              DatabaseError(),
		"unchanged":                   Unchanged(),
		"artist-already-assigned":     AssociationExists(),
		"performance-already-exists":  PositionExists("performance"),
	}
	for token, want := range cases {
		if got := Parse(token); got != want {
			t.Fatalf("Parse(%q) = %+v, want %+v", token, got, want)
		}
		if want.Token() != token {
			t.Fatalf("Token() = %q, want %q", want.Token(), token)
		}
	}
}

func TestUnknownTokenRendersCodeError(t *testing.T) {
	for _, token := range []string{"", "nonsense", "cds-added", "salary-does-not-exist"} {
		o := Parse(token)
		if o.Kind != KindUnknown {
			t.Fatalf("Parse(%q) = %+v, want unknown", token, o)
		}
		if o.Message() != "code error" {
			t.Fatalf("unknown message = %q", o.Message())
		}
	}
}

func TestMessages(t *testing.T) {
	if msg := Added("cd").Message(); msg != "Added a new CD." {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := InvalidNumber("order_in_series").Message(); msg != "The order in series must be specified with digits only." {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := NotFound("track").Message(); msg == "" || msg == "code error" {
		t.Fatalf("track not-found message missing guidance: %q", msg)
	}
}
