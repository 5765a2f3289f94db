package similarity

import (
	"math"
	"testing"

	"github.com/rushteam/blendkit/core"
)

func profile(id string, numeric map[core.Dimension]float64, genres, keywords, people []int64) *core.FeatureProfile {
	return &core.FeatureProfile{
		FilmID:   id,
		Numeric:  numeric,
		Genres:   set(genres...),
		Keywords: set(keywords...),
		People:   set(people...),
	}
}

func TestEngineScore_SelfSimilarity(t *testing.T) {
	// A film compared against itself scores 1.0 on every present dimension.
	p := profile("f1",
		map[core.Dimension]float64{
			core.DimYear:    0.4,
			core.DimRuntime: 0.7,
		},
		[]int64{28, 18}, []int64{901}, []int64{1, 2},
	)

	scores, total := NewEngine().Score(p, p)
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("self similarity = %v, want 1.0", total)
	}
	for _, s := range scores {
		if math.Abs(s.Score-1.0) > 1e-9 {
			t.Errorf("dimension %s = %v, want 1.0", s.Dimension, s.Score)
		}
	}
}

func TestEngineScore_MissingDimensionSkipped(t *testing.T) {
	// Runtime missing on the candidate side: the dimension must not enter
	// either the weighted sum or the normalizing denominator.
	cand := profile("c",
		map[core.Dimension]float64{core.DimYear: 0.5},
		[]int64{28}, nil, nil,
	)
	seed := profile("s",
		map[core.Dimension]float64{core.DimYear: 0.5, core.DimRuntime: 0.9},
		[]int64{28}, nil, nil,
	)

	scores, total := NewEngine().Score(cand, seed)

	for _, s := range scores {
		if s.Dimension == core.DimRuntime {
			t.Fatalf("runtime should be absent from breakdown, got score %v", s.Score)
		}
	}

	// Present dimensions: genre=1, keyword=0, people=0 (set dims always score),
	// year=1. Weighted: .30*1 + .20*0 + .15*0 + .10*1 = .40; present weight
	// sum: .30+.20+.15+.10 = .75.
	want := 0.40 / 0.75
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", total, want)
	}
}

func TestEngineScore_NumericDistance(t *testing.T) {
	cand := profile("c", map[core.Dimension]float64{core.DimYear: 0.2}, nil, nil, nil)
	seed := profile("s", map[core.Dimension]float64{core.DimYear: 0.7}, nil, nil, nil)

	scores, _ := NewEngine().Score(cand, seed)

	var yearScore float64
	found := false
	for _, s := range scores {
		if s.Dimension == core.DimYear {
			yearScore, found = s.Score, true
		}
	}
	if !found {
		t.Fatal("year dimension missing from breakdown")
	}
	if math.Abs(yearScore-0.5) > 1e-9 {
		t.Errorf("year score = %v, want 0.5 (1 - |0.2-0.7|)", yearScore)
	}
}

func TestEngineScore_Bounds(t *testing.T) {
	tests := []struct {
		name string
		cand *core.FeatureProfile
		seed *core.FeatureProfile
	}{
		{
			name: "no signal anywhere",
			cand: profile("c", nil, nil, nil, nil),
			seed: profile("s", nil, nil, nil, nil),
		},
		{
			name: "maximum distance on all numeric dims",
			cand: profile("c", map[core.Dimension]float64{
				core.DimYear: 0, core.DimRuntime: 0, core.DimPopularity: 0, core.DimCriticScore: 0,
			}, []int64{1}, []int64{2}, []int64{3}),
			seed: profile("s", map[core.Dimension]float64{
				core.DimYear: 1, core.DimRuntime: 1, core.DimPopularity: 1, core.DimCriticScore: 1,
			}, []int64{9}, []int64{8}, []int64{7}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total := NewEngine().Score(tt.cand, tt.seed)
			if total < 0 || total > 1 {
				t.Errorf("total = %v, want within [0,1]", total)
			}
		})
	}
}

func TestEngineScore_CustomWeights(t *testing.T) {
	// Zero weight on a dimension removes its influence entirely.
	e := &Engine{Weights: core.Weights{Genre: 1.0}}

	cand := profile("c", map[core.Dimension]float64{core.DimYear: 0.0}, []int64{1}, nil, nil)
	seed := profile("s", map[core.Dimension]float64{core.DimYear: 1.0}, []int64{1}, nil, nil)

	_, total := e.Score(cand, seed)
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("total = %v, want 1.0 (only genre weighted)", total)
	}
}
