package feature

import (
	"math"
	"testing"

	"github.com/rushteam/blendkit/core"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestObserveRange(t *testing.T) {
	pool := []*core.Film{
		{ID: "c1", Year: 1990, Runtime: intPtr(100)},
		{ID: "c2", Year: 2010},
	}
	seedA := &core.Film{ID: "a", Year: 2020, Runtime: intPtr(80)}
	seedB := &core.Film{ID: "b"} // year 0 = missing

	r := NewExtractor().ObserveRange(pool, seedA, seedB)

	lo, hi, ok := r.Bounds(core.DimYear)
	if !ok || lo != 1990 || hi != 2020 {
		t.Errorf("year bounds = (%v, %v, %v), want (1990, 2020, true)", lo, hi, ok)
	}
	lo, hi, ok = r.Bounds(core.DimRuntime)
	if !ok || lo != 80 || hi != 100 {
		t.Errorf("runtime bounds = (%v, %v, %v), want (80, 100, true)", lo, hi, ok)
	}
	// No film carries popularity: the dimension has no observed range at all.
	if _, _, ok := r.Bounds(core.DimPopularity); ok {
		t.Error("popularity bounds should be unobserved")
	}
}

func TestProfile_Normalization(t *testing.T) {
	r := core.NewPoolRange()
	r.Observe(core.DimYear, 1990)
	r.Observe(core.DimYear, 2010)
	r.Observe(core.DimPopularity, 10)
	r.Observe(core.DimPopularity, 10) // degenerate: single observed value

	f := &core.Film{
		ID:         "f",
		Year:       2000,
		Popularity: floatPtr(10),
		Genres:     []int64{28},
	}

	p := NewExtractor().Profile(f, r)

	if v, ok := p.NumericValue(core.DimYear); !ok || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("year = (%v, %v), want (0.5, true)", v, ok)
	}
	// max == min: every film gets the midpoint, no artificial separation
	if v, ok := p.NumericValue(core.DimPopularity); !ok || v != 0.5 {
		t.Errorf("popularity = (%v, %v), want (0.5, true) for degenerate range", v, ok)
	}
	// Missing fields stay absent instead of defaulting to 0.
	if _, ok := p.NumericValue(core.DimRuntime); ok {
		t.Error("runtime should be absent for a film without runtime")
	}
	if _, ok := p.NumericValue(core.DimCriticScore); ok {
		t.Error("critic score should be absent for a film without critic score")
	}
	if _, ok := p.Genres[28]; !ok {
		t.Error("genre set should carry raw genre IDs")
	}
}

func TestProfile_ClampsOutOfRange(t *testing.T) {
	// A value outside the observed range (possible when ranges and films are
	// assembled from different snapshots) is clamped to [0,1].
	r := core.NewPoolRange()
	r.Observe(core.DimYear, 2000)
	r.Observe(core.DimYear, 2010)

	p := NewExtractor().Profile(&core.Film{ID: "f", Year: 1950}, r)
	if v, _ := p.NumericValue(core.DimYear); v != 0 {
		t.Errorf("year = %v, want clamped to 0", v)
	}

	p = NewExtractor().Profile(&core.Film{ID: "f", Year: 2050}, r)
	if v, _ := p.NumericValue(core.DimYear); v != 1 {
		t.Errorf("year = %v, want clamped to 1", v)
	}
}
