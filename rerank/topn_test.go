package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/blendkit/core"
)

func floatPtr(v float64) *float64 { return &v }

func cand(id string, combined float64, popularity *float64) *core.Candidate {
	c := core.NewCandidate(&core.Film{ID: id, Popularity: popularity})
	c.Combined = combined
	return c
}

func ids(cands []*core.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Film.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTopNNode_Ordering(t *testing.T) {
	tests := []struct {
		name  string
		cands []*core.Candidate
		want  []string
	}{
		{
			name: "combined score descending",
			cands: []*core.Candidate{
				cand("low", 0.2, nil),
				cand("high", 0.9, nil),
				cand("mid", 0.5, nil),
			},
			want: []string{"high", "mid", "low"},
		},
		{
			name: "tie broken by popularity descending",
			cands: []*core.Candidate{
				cand("cold", 0.5, floatPtr(10)),
				cand("hot", 0.5, floatPtr(90)),
			},
			want: []string{"hot", "cold"},
		},
		{
			name: "missing popularity ranks as zero in tie-break",
			cands: []*core.Candidate{
				cand("nopop", 0.5, nil),
				cand("somepop", 0.5, floatPtr(1)),
			},
			want: []string{"somepop", "nopop"},
		},
		{
			name: "full tie broken by film ID ascending",
			cands: []*core.Candidate{
				cand("zeta", 0.5, floatPtr(10)),
				cand("alpha", 0.5, floatPtr(10)),
			},
			want: []string{"alpha", "zeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := (&TopNNode{N: 10}).Process(context.Background(), nil, tt.cands)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got := ids(out); !equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopNNode_InputOrderInvariance(t *testing.T) {
	// The ranking depends only on scores, never on arrival order.
	build := func() []*core.Candidate {
		return []*core.Candidate{
			cand("a", 0.3, floatPtr(5)),
			cand("b", 0.9, floatPtr(1)),
			cand("c", 0.3, floatPtr(8)),
		}
	}
	forward := build()
	reversed := build()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	node := &TopNNode{N: 10}
	out1, _ := node.Process(context.Background(), nil, forward)
	out2, _ := node.Process(context.Background(), nil, reversed)
	if !equal(ids(out1), ids(out2)) {
		t.Errorf("order differs by input order: %v vs %v", ids(out1), ids(out2))
	}
}

func TestTopNNode_Truncation(t *testing.T) {
	cands := []*core.Candidate{
		cand("a", 0.9, nil),
		cand("b", 0.8, nil),
		cand("c", 0.7, nil),
	}

	out, err := (&TopNNode{N: 2}).Process(context.Background(), nil, cands)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := ids(out); !equal(got, []string{"a", "b"}) {
		t.Errorf("truncated = %v, want [a b]", got)
	}

	// N unset: falls back to the request limit.
	bctx := &core.BlendContext{Request: &core.BlendRequest{Limit: 1}}
	out, err = (&TopNNode{}).Process(context.Background(), bctx, cands)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := ids(out); !equal(got, []string{"a"}) {
		t.Errorf("limit-truncated = %v, want [a]", got)
	}

	// Fewer candidates than the limit: return all, never pad.
	out, _ = (&TopNNode{N: 10}).Process(context.Background(), nil, cands)
	if len(out) != 3 {
		t.Errorf("len = %d, want 3", len(out))
	}
}
