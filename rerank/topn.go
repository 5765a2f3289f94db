package rerank

import (
	"context"
	"sort"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/pipeline"
)

// TopNNode 是排序与截断节点：按合成分确定性排序后截取前 N 个候选。
//
// 排序是全序（确定性、可测试）：
//  1. combined_score 降序
//  2. 候选热度降序（缺失热度按 0 参与并列裁决）
//  3. 候选影片 ID 升序
//
// 排序只依赖分数本身，存储层候选顺序的变化不影响返回的排名。
type TopNNode struct {
	// N 要保留的候选数量。
	// 如果 N <= 0，则取请求的 limit（常规用法）。
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	bctx *core.BlendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(cands) == 0 {
		return cands, nil
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Combined != b.Combined {
			return a.Combined > b.Combined
		}
		pa, pb := a.Film.PopularityOrZero(), b.Film.PopularityOrZero()
		if pa != pb {
			return pa > pb
		}
		return a.Film.ID < b.Film.ID
	})

	limit := n.N
	if limit <= 0 && bctx != nil && bctx.Request != nil {
		limit = bctx.Request.Limit
	}
	if limit <= 0 || len(cands) <= limit {
		return cands, nil
	}
	return cands[:limit], nil
}
