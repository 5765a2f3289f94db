package explain

import (
	"context"
	"strings"
	"testing"

	"github.com/rushteam/blendkit/catalog"
	"github.com/rushteam/blendkit/core"
)

func set(ids ...int64) map[int64]struct{} {
	s := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func namedCatalog() core.Catalog {
	return catalog.NewMemoryCatalog(nil,
		catalog.WithGenreNames(map[int64]string{18: "Drama", 28: "Action"}),
		catalog.WithKeywordNames(map[int64]string{901: "heist"}),
		catalog.WithPersonNames(map[int64]string{7: "R. Calloway"}),
	)
}

func explainContext() *core.BlendContext {
	return &core.BlendContext{
		Request: &core.BlendRequest{FilmA: "a", FilmB: "b", Alpha: 0.5, Limit: 20},
		SeedA:   &core.Film{ID: "a", Title: "Seed A"},
		SeedB:   &core.Film{ID: "b", Title: "Seed B"},
		ProfileA: &core.FeatureProfile{
			FilmID: "a", Genres: set(28), Keywords: set(901), People: set(7),
		},
		ProfileB: &core.FeatureProfile{
			FilmID: "b", Genres: set(28, 18), Keywords: set(), People: set(),
		},
	}
}

func scoredCandidate() *core.Candidate {
	c := core.NewCandidate(&core.Film{ID: "c", Title: "Candidate C"})
	c.Profile = &core.FeatureProfile{
		FilmID: "c", Genres: set(28), Keywords: set(901), People: set(7),
	}
	c.BreakdownA = []core.DimensionScore{
		{Dimension: core.DimGenre, Score: 1.0},
		{Dimension: core.DimKeyword, Score: 1.0},
		{Dimension: core.DimPeople, Score: 1.0},
		{Dimension: core.DimYear, Score: 0.8},
	}
	c.BreakdownB = []core.DimensionScore{
		{Dimension: core.DimGenre, Score: 0.5},
		{Dimension: core.DimKeyword, Score: 0.0},
		{Dimension: core.DimPeople, Score: 0.0},
		{Dimension: core.DimYear, Score: 0.6},
	}
	return c
}

func TestBuilder_SalienceOrderAndCap(t *testing.T) {
	b := &Builder{Catalog: namedCatalog()}

	cands, err := b.Process(context.Background(), explainContext(), []*core.Candidate{scoredCandidate()})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	reasons := cands[0].Reasons

	// Four dimensions qualify (salience genre .30, keyword .20, people .15,
	// year .08) but at most three reasons are emitted, most salient first.
	if len(reasons) != 3 {
		t.Fatalf("got %d reasons, want 3: %v", len(reasons), reasons)
	}
	if !strings.Contains(reasons[0], "genres") {
		t.Errorf("first reason should be the genre dimension, got %q", reasons[0])
	}
	if !strings.Contains(reasons[1], "keywords") {
		t.Errorf("second reason should be the keyword dimension, got %q", reasons[1])
	}
	if !strings.Contains(reasons[2], "cast & crew") {
		t.Errorf("third reason should be the people dimension, got %q", reasons[2])
	}
}

func TestBuilder_NamesSharedMembers(t *testing.T) {
	b := &Builder{Catalog: namedCatalog()}

	cands, _ := b.Process(context.Background(), explainContext(), []*core.Candidate{scoredCandidate()})
	reasons := cands[0].Reasons

	// Genre 28 is shared with both seeds: the reason names it and says "both".
	if !strings.Contains(reasons[0], "Shared genres with both: Action") {
		t.Errorf("genre reason = %q, want shared-with-both naming Action", reasons[0])
	}
	// Keyword 901 is shared with seed A only.
	if !strings.Contains(reasons[1], "Seed A") || !strings.Contains(reasons[1], "heist") {
		t.Errorf("keyword reason = %q, want seed A naming heist", reasons[1])
	}
}

func TestBuilder_SkipsMissingAndZeroDimensions(t *testing.T) {
	b := &Builder{Catalog: namedCatalog()}

	c := core.NewCandidate(&core.Film{ID: "c", Title: "Candidate C"})
	c.Profile = &core.FeatureProfile{FilmID: "c", Genres: set(18)}
	// Runtime is absent from both breakdowns (skipped for missing data);
	// keyword scored zero on both sides.
	c.BreakdownA = []core.DimensionScore{
		{Dimension: core.DimGenre, Score: 0.0},
		{Dimension: core.DimKeyword, Score: 0.0},
	}
	c.BreakdownB = []core.DimensionScore{
		{Dimension: core.DimGenre, Score: 0.5},
		{Dimension: core.DimKeyword, Score: 0.0},
	}

	cands, _ := b.Process(context.Background(), explainContext(), []*core.Candidate{c})
	reasons := cands[0].Reasons

	if len(reasons) != 1 {
		t.Fatalf("got %d reasons, want 1 (only genre qualifies): %v", len(reasons), reasons)
	}
	for _, r := range reasons {
		if strings.Contains(r, "runtime") || strings.Contains(r, "keywords") {
			t.Errorf("reason %q references a skipped or zero-scored dimension", r)
		}
	}
}

func TestBuilder_NumericPhrasing(t *testing.T) {
	b := &Builder{Catalog: namedCatalog()}

	c := core.NewCandidate(&core.Film{ID: "c", Title: "Candidate C"})
	c.Profile = &core.FeatureProfile{FilmID: "c"}
	c.BreakdownA = []core.DimensionScore{{Dimension: core.DimYear, Score: 0.9}}
	c.BreakdownB = []core.DimensionScore{{Dimension: core.DimYear, Score: 0.8}}

	cands, _ := b.Process(context.Background(), explainContext(), []*core.Candidate{c})
	reasons := cands[0].Reasons
	if len(reasons) != 1 || !strings.Contains(reasons[0], "release year") {
		t.Fatalf("reasons = %v, want a single release-year reason", reasons)
	}
	if !strings.Contains(reasons[0], "both picks") {
		t.Errorf("reason = %q, want attribution to both picks", reasons[0])
	}
}
