package recall

import (
	"context"
	"testing"

	"github.com/rushteam/blendkit/catalog"
	"github.com/rushteam/blendkit/core"
)

func poolContext() *core.BlendContext {
	return &core.BlendContext{
		Request: &core.BlendRequest{FilmA: "a", FilmB: "b", Alpha: 0.5, Limit: 20},
		SeedA:   &core.Film{ID: "a", Genres: []int64{28}, Keywords: []int64{901}},
		SeedB:   &core.Film{ID: "b", Genres: []int64{18}},
	}
}

func TestCandidatePool_ExcludesSeeds(t *testing.T) {
	cat := catalog.NewMemoryCatalog([]*core.Film{
		{ID: "a", Genres: []int64{28}},
		{ID: "b", Genres: []int64{18}},
		{ID: "c", Genres: []int64{28}},
		{ID: "d", Genres: []int64{99}},
	})

	out, err := (&CandidatePool{Catalog: cat}).Process(context.Background(), poolContext(), nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	for _, c := range out {
		if c.Film.ID == "a" || c.Film.ID == "b" {
			t.Errorf("seed %s leaked into the pool", c.Film.ID)
		}
		if _, ok := c.Labels["recall_source"]; !ok {
			t.Errorf("candidate %s missing recall_source label", c.Film.ID)
		}
	}
}

func TestCandidatePool_EmptyCatalogPool(t *testing.T) {
	// Only the seeds exist: an empty pool is a valid outcome, not an error.
	cat := catalog.NewMemoryCatalog([]*core.Film{
		{ID: "a"}, {ID: "b"},
	})

	out, err := (&CandidatePool{Catalog: cat}).Process(context.Background(), poolContext(), nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates, want 0", len(out))
	}
}

func TestCandidatePool_SharedTagOnly(t *testing.T) {
	cat := catalog.NewMemoryCatalog([]*core.Film{
		{ID: "a"}, {ID: "b"},
		{ID: "genre-match", Genres: []int64{28}},
		{ID: "keyword-match", Keywords: []int64{901}},
		{ID: "no-overlap", Genres: []int64{99}, Keywords: []int64{903}},
	})

	out, err := (&CandidatePool{Catalog: cat, SharedTagOnly: true}).
		Process(context.Background(), poolContext(), nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2 (tag prefilter applied)", len(out))
	}
	for _, c := range out {
		if c.Film.ID == "no-overlap" {
			t.Error("candidate without any shared tag survived the prefilter")
		}
	}
}
