package recall

import (
	"context"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/pipeline"
	"github.com/rushteam/blendkit/pkg/utils"
)

// CandidatePool 是候选池召回节点：目录中除两部种子片之外的全部影片。
//
// 空候选池（目录里只有两部种子片）是合法结果：返回空集，不报错。
type CandidatePool struct {
	// Catalog 只读影片目录
	Catalog core.Catalog

	// SharedTagOnly 为 true 时，只保留与任一种子片至少共享一个
	// 类型或关键词的影片。这是一个召回期优化：毫无标签交集的候选
	// 在集合维度上注定得 0 分。默认关闭，候选池即"全部非种子影片"。
	SharedTagOnly bool
}

func (n *CandidatePool) Name() string        { return "recall.pool" }
func (n *CandidatePool) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *CandidatePool) Process(
	ctx context.Context,
	bctx *core.BlendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Catalog == nil || bctx == nil || bctx.Request == nil {
		return nil, nil
	}

	films, err := n.Catalog.AllFilms(ctx)
	if err != nil {
		return nil, err
	}

	var tagUnion map[int64]struct{}
	var keywordUnion map[int64]struct{}
	if n.SharedTagOnly {
		tagUnion = unionSets(seedGenres(bctx))
		keywordUnion = unionSets(seedKeywords(bctx))
	}

	out := make([]*core.Candidate, 0, len(films))
	for _, f := range films {
		if f == nil || bctx.IsSeed(f.ID) {
			continue
		}
		if n.SharedTagOnly && !sharesAny(f, tagUnion, keywordUnion) {
			continue
		}
		c := core.NewCandidate(f)
		c.PutLabel("recall_source", utils.Label{Value: n.Name(), Source: "recall"})
		out = append(out, c)
	}
	return out, nil
}

func seedGenres(bctx *core.BlendContext) []map[int64]struct{} {
	sets := make([]map[int64]struct{}, 0, 2)
	if bctx.SeedA != nil {
		sets = append(sets, bctx.SeedA.GenreSet())
	}
	if bctx.SeedB != nil {
		sets = append(sets, bctx.SeedB.GenreSet())
	}
	return sets
}

func seedKeywords(bctx *core.BlendContext) []map[int64]struct{} {
	sets := make([]map[int64]struct{}, 0, 2)
	if bctx.SeedA != nil {
		sets = append(sets, bctx.SeedA.KeywordSet())
	}
	if bctx.SeedB != nil {
		sets = append(sets, bctx.SeedB.KeywordSet())
	}
	return sets
}

func unionSets(sets []map[int64]struct{}) map[int64]struct{} {
	out := make(map[int64]struct{})
	for _, s := range sets {
		for id := range s {
			out[id] = struct{}{}
		}
	}
	return out
}

func sharesAny(f *core.Film, genres, keywords map[int64]struct{}) bool {
	for _, id := range f.Genres {
		if _, ok := genres[id]; ok {
			return true
		}
	}
	for _, id := range f.Keywords {
		if _, ok := keywords[id]; ok {
			return true
		}
	}
	return false
}
