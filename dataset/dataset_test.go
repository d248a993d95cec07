package dataset

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

const sample = `[
  {"name": "Black", "hex_code": "#000000"},
  {"name": "Snow", "hex_code": "#fffafa"},
  {"name": "Broken", "hex_code": "#GGG"},
  {"name": "Navy", "hex_code": "#000080"}
]`

func serve(t *testing.T, hits *int32, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.WriteHeader(status)
		w.Write([]byte(sample))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache", "colors.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFetchURL(t *testing.T) {
	var hits int32
	srv := serve(t, &hits, http.StatusOK)
	colors, err := Fetch(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 {
		t.Fatalf("got %d colours, want 3", len(colors))
	}
	if colors[1] != (Color{Name: "Snow", Hex: "#FFFAFA"}) {
		t.Errorf("hex not normalized: %+v", colors[1])
	}
}

func TestFetchErrors(t *testing.T) {
	var hits int32
	srv := serve(t, &hits, http.StatusNotFound)
	if _, err := Fetch(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("non-200 response should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, srv.Client(), srv.URL); err == nil {
		t.Error("cancelled context should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(context.Background(), nil, bad); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	colors, err := Fetch(context.Background(), nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 || colors[2].Name != "Navy" {
		t.Errorf("Fetch(file) = %+v", colors)
	}
}

func TestApply(t *testing.T) {
	colors := []Color{
		{"Black", "#000000"},
		{"Snow", "#FFFAFA"},
		{"Broken", "#GGG"},
		{"Navy", "#000080"},
		{"Mid", "#808080"},
	}
	tests := []struct {
		f    Filter
		want []string
	}{
		{All, []string{"Black", "Snow", "Broken", "Navy", "Mid"}},
		{Dark, []string{"Black", "Navy"}},
		{Light, []string{"Snow", "Mid"}},
	}
	for _, tt := range tests {
		got := Apply(colors, tt.f)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d entries, want %d", tt.f, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].Name != tt.want[i] {
				t.Errorf("%s[%d] = %s, want %s", tt.f, i, got[i].Name, tt.want[i])
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{"all": All, "DARK": Dark, " light ": Light} {
		if got, err := ParseFilter(in); err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFilter("medium"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("err = %v, want ErrUnknownFilter", err)
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := Pick(nil, rng); ok {
		t.Error("Pick on an empty list should report false")
	}
	c, ok := Pick([]Color{{"Navy", "#000080"}}, rng)
	if !ok || c.Name != "Navy" {
		t.Errorf("Pick = %+v, %v", c, ok)
	}
}

func TestStore(t *testing.T) {
	s := openStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	colors := []Color{{"Black", "#000000"}, {"Navy", "#000080"}}

	if _, err := s.Load("src", time.Hour, now); !errors.Is(err, ErrNotCached) {
		t.Fatalf("empty store: err = %v, want ErrNotCached", err)
	}
	if err := s.Save("src", colors, now); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load("src", time.Hour, now.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != colors[0] || got[1] != colors[1] {
		t.Errorf("Load = %+v", got)
	}
	if _, err := s.Load("src", time.Hour, now.Add(2*time.Hour)); !errors.Is(err, ErrNotCached) {
		t.Errorf("stale copy: err = %v, want ErrNotCached", err)
	}
	if _, err := s.Load("src", 0, now.Add(1000*time.Hour)); err != nil {
		t.Errorf("maxAge 0 should accept any age: %v", err)
	}

	if err := s.Save("src", colors[:1], now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Load("src", 0, now)
	if len(got) != 1 {
		t.Errorf("Save should replace the list, got %+v", got)
	}
	if at, ok := s.FetchedAt("src"); !ok || !at.Equal(now.Add(time.Hour)) {
		t.Errorf("FetchedAt = %v, %v", at, ok)
	}
}

func TestLoaderCachesAndRefreshes(t *testing.T) {
	var hits int32
	srv := serve(t, &hits, http.StatusOK)
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	l := &Loader{
		Store:  openStore(t),
		Client: srv.Client(),
		TTL:    time.Hour,
		Now:    func() time.Time { return now },
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		colors, err := l.Get(ctx, srv.URL, false)
		if err != nil {
			t.Fatal(err)
		}
		if len(colors) != 3 {
			t.Fatalf("got %d colours", len(colors))
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}

	if _, err := l.Get(ctx, srv.URL, true); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("refresh should refetch, hits = %d", n)
	}

	now = now.Add(2 * time.Hour)
	if _, err := l.Get(ctx, srv.URL, false); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Errorf("stale cache should refetch, hits = %d", n)
	}
}

func TestLoaderFallsBackToStaleCopy(t *testing.T) {
	var hits int32
	srv := serve(t, &hits, http.StatusOK)
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	l := &Loader{Store: openStore(t), Client: srv.Client(), TTL: time.Hour, Now: func() time.Time { return now }}
	if _, err := l.Get(context.Background(), srv.URL, false); err != nil {
		t.Fatal(err)
	}

	srv.Close()
	now = now.Add(48 * time.Hour)
	colors, err := l.Get(context.Background(), srv.URL, false)
	if err != nil {
		t.Fatalf("expected stale copy, got %v", err)
	}
	if len(colors) != 3 {
		t.Errorf("got %d colours", len(colors))
	}

	bare := &Loader{Client: srv.Client()}
	if _, err := bare.Get(context.Background(), srv.URL, false); err == nil {
		t.Error("no cache and no server should fail")
	}
}
