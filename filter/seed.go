package filter

import (
	"context"

	"github.com/rushteam/blendkit/core"
)

// SeedFilter 兜底剔除种子片本身。
// recall.CandidatePool 已经排除了种子片；配置驱动的自定义召回源
// 可能忘记排除，此过滤器保证种子片永远不会出现在结果里。
type SeedFilter struct{}

func (f *SeedFilter) Name() string {
	return "filter.seed"
}

func (f *SeedFilter) ShouldFilter(
	_ context.Context,
	bctx *core.BlendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil || cand.Film == nil {
		return true, nil
	}
	if bctx == nil {
		return false, nil
	}
	return bctx.IsSeed(cand.Film.ID), nil
}
