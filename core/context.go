package core

import "github.com/rushteam/blendkit/pkg/utils"

// BlendContext 承载单次混搭请求的上下文，贯穿整个 Pipeline 透传。
//
// CallerID 由外部认证网关填入；引擎只要求"已认证"，不关心认证方式。
// SeedA/SeedB 与两份种子画像、池范围在校验和打分阶段填充，
// 均为请求内临时状态，不跨请求共享。
type BlendContext struct {
	CallerID string

	Request *BlendRequest

	SeedA *Film
	SeedB *Film

	// ProfileA/ProfileB/Range 由打分节点基于当前候选池计算后回填，
	// 供解释节点复用。归一化范围依赖候选池，不得缓存。
	ProfileA *FeatureProfile
	ProfileB *FeatureProfile
	Range    *PoolRange

	// Params 请求级扩展参数（规则过滤表达式可引用）。
	Params map[string]any

	// Labels 是请求级标签，可驱动 Pipeline 行为。
	Labels map[string]utils.Label
}

// IsSeed 判断影片是否为本次请求的种子片。
func (bctx *BlendContext) IsSeed(filmID string) bool {
	if bctx.Request == nil {
		return false
	}
	return filmID == bctx.Request.FilmA || filmID == bctx.Request.FilmB
}

// PutLabel 写入请求级 Label。
func (bctx *BlendContext) PutLabel(key string, lbl utils.Label) {
	if bctx.Labels == nil {
		bctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := bctx.Labels[key]; ok {
		bctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	bctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (bctx *BlendContext) GetLabel(key string) (utils.Label, bool) {
	if bctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := bctx.Labels[key]
	return lbl, ok
}
