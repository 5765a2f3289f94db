package blend

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/rushteam/blendkit/catalog"
	"github.com/rushteam/blendkit/core"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// fixtureCatalog: seeds a and b share the Action genre with candidate c;
// candidate d shares nothing with either seed.
func fixtureCatalog() core.Catalog {
	return catalog.NewMemoryCatalog([]*core.Film{
		{
			ID: "a", Title: "Seed A", Year: 1995,
			Runtime: intPtr(120), Popularity: floatPtr(70),
			Genres: []int64{28, 80}, Keywords: []int64{901},
		},
		{
			ID: "b", Title: "Seed B", Year: 2005,
			Runtime: intPtr(100), Popularity: floatPtr(30),
			Genres: []int64{28, 18}, Keywords: []int64{902},
		},
		{
			ID: "c", Title: "Shared Taste", Year: 2000,
			Runtime: intPtr(110), Popularity: floatPtr(50),
			Genres: []int64{28}, Keywords: []int64{901, 902},
		},
		{
			ID: "d", Title: "Nothing In Common", Year: 2000,
			Runtime: intPtr(110), Popularity: floatPtr(50),
			Genres: []int64{99}, Keywords: []int64{903},
		},
	}, catalog.WithGenreNames(map[int64]string{
		18: "Drama", 28: "Action", 80: "Crime", 99: "Documentary",
	}))
}

func TestService_Blend(t *testing.T) {
	svc := NewService(fixtureCatalog())

	resp, err := svc.Blend(context.Background(), "caller-1", RawParams{FilmA: "a", FilmB: "b"})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}

	if resp.Meta.Alpha != core.DefaultAlpha || resp.Meta.Limit != core.DefaultLimit {
		t.Errorf("meta = %+v, want defaults echoed", resp.Meta)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2 (seeds excluded)", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.Film.ID == "a" || r.Film.ID == "b" {
			t.Fatalf("seed %s leaked into results", r.Film.ID)
		}
	}

	// The candidate sharing the Action genre with both seeds outranks the one
	// sharing nothing.
	if resp.Results[0].Film.ID != "c" {
		t.Errorf("top result = %s, want c", resp.Results[0].Film.ID)
	}
	if resp.Results[0].Combined <= resp.Results[1].Combined {
		t.Errorf("combined %v should exceed %v", resp.Results[0].Combined, resp.Results[1].Combined)
	}

	// The top result's reasons name the shared genre.
	joined := strings.Join(resp.Results[0].Reasons, " | ")
	if !strings.Contains(joined, "Action") {
		t.Errorf("reasons = %q, want the shared genre named", joined)
	}

	// Breakdowns are populated per seed.
	top := resp.Results[0]
	if top.BreakdownA[string(core.DimGenre)] == 0 {
		t.Errorf("breakdown_a genre = %v, want > 0", top.BreakdownA[string(core.DimGenre)])
	}
	if top.BreakdownB[string(core.DimGenre)] == 0 {
		t.Errorf("breakdown_b genre = %v, want > 0", top.BreakdownB[string(core.DimGenre)])
	}
}

func TestService_Blend_AlphaSteering(t *testing.T) {
	// Catalog where candidate ca mirrors seed a and cb mirrors seed b.
	cat := catalog.NewMemoryCatalog([]*core.Film{
		{ID: "a", Title: "Seed A", Genres: []int64{28}, Keywords: []int64{901}},
		{ID: "b", Title: "Seed B", Genres: []int64{18}, Keywords: []int64{902}},
		{ID: "ca", Title: "Like A", Genres: []int64{28}, Keywords: []int64{901}},
		{ID: "cb", Title: "Like B", Genres: []int64{18}, Keywords: []int64{902}},
	})
	svc := NewService(cat)

	// alpha=1: only taste A counts.
	resp, err := svc.Blend(context.Background(), "caller-1", RawParams{
		FilmA: "a", FilmB: "b", Alpha: Float64(1),
	})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if resp.Results[0].Film.ID != "ca" {
		t.Errorf("alpha=1 top = %s, want ca", resp.Results[0].Film.ID)
	}
	for _, r := range resp.Results {
		if r.Combined != r.ScoreA {
			t.Errorf("alpha=1: combined %v != score_a %v for %s", r.Combined, r.ScoreA, r.Film.ID)
		}
	}

	// alpha=0: only taste B counts.
	resp, err = svc.Blend(context.Background(), "caller-1", RawParams{
		FilmA: "a", FilmB: "b", Alpha: Float64(0),
	})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if resp.Results[0].Film.ID != "cb" {
		t.Errorf("alpha=0 top = %s, want cb", resp.Results[0].Film.ID)
	}
	for _, r := range resp.Results {
		if r.Combined != r.ScoreB {
			t.Errorf("alpha=0: combined %v != score_b %v for %s", r.Combined, r.ScoreB, r.Film.ID)
		}
	}
}

func TestService_Blend_EmptyPool(t *testing.T) {
	// Catalog holding only the two seeds: an empty result set, not an error.
	cat := catalog.NewMemoryCatalog([]*core.Film{
		{ID: "a", Title: "Seed A", Genres: []int64{28}},
		{ID: "b", Title: "Seed B", Genres: []int64{18}},
	})
	svc := NewService(cat)

	resp, err := svc.Blend(context.Background(), "caller-1", RawParams{FilmA: "a", FilmB: "b"})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if resp.Results == nil {
		t.Fatal("results should be an empty slice, not nil")
	}
	if len(resp.Results) != 0 {
		t.Errorf("got %d results, want 0", len(resp.Results))
	}
}

func TestService_Blend_Unauthenticated(t *testing.T) {
	svc := NewService(fixtureCatalog())

	_, err := svc.Blend(context.Background(), "", RawParams{FilmA: "a", FilmB: "b"})
	if !core.IsUnauthenticated(err) {
		t.Errorf("Blend() error = %v, want UNAUTHENTICATED", err)
	}
}

func TestService_Blend_LimitTruncates(t *testing.T) {
	films := []*core.Film{
		{ID: "a", Title: "Seed A", Genres: []int64{28}},
		{ID: "b", Title: "Seed B", Genres: []int64{18}},
	}
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5"} {
		films = append(films, &core.Film{ID: id, Title: id, Genres: []int64{28, 18}})
	}
	svc := NewService(catalog.NewMemoryCatalog(films))

	resp, err := svc.Blend(context.Background(), "caller-1", RawParams{
		FilmA: "a", FilmB: "b", Limit: Int(3),
	})
	if err != nil {
		t.Fatalf("Blend() error = %v", err)
	}
	if len(resp.Results) != 3 {
		t.Errorf("got %d results, want 3", len(resp.Results))
	}
	if resp.Meta.Limit != 3 {
		t.Errorf("meta limit = %d, want 3", resp.Meta.Limit)
	}
}

func TestService_Blend_ValidationRejection(t *testing.T) {
	svc := NewService(fixtureCatalog())

	_, err := svc.Blend(context.Background(), "caller-1", RawParams{FilmA: "a", FilmB: "a"})
	if !core.IsIdenticalSeeds(err) {
		t.Errorf("Blend() error = %v, want IDENTICAL_SEEDS", err)
	}

	_, err = svc.Blend(context.Background(), "caller-1", RawParams{FilmA: "a", FilmB: "ghost"})
	if !core.IsSeedNotFound(err) {
		t.Errorf("Blend() error = %v, want SEED_NOT_FOUND", err)
	}

	// NaN never enters the scoring path: it would propagate into every
	// combined score and wreck the deterministic sort.
	resp, err := svc.Blend(context.Background(), "caller-1", RawParams{
		FilmA: "a", FilmB: "b", Alpha: Float64(math.NaN()),
	})
	if !core.IsOutOfRangeAlpha(err) {
		t.Fatalf("Blend() error = %v, want OUT_OF_RANGE_ALPHA for NaN alpha", err)
	}
	if resp != nil {
		t.Error("Blend() should not produce a response for NaN alpha")
	}
}
