package core

import "github.com/rushteam/blendkit/pkg/utils"

// Candidate 是推荐链路中的统一承载结构：影片、画像、分数、解释、标签。
// Combined 用于排序决策；Labels 用于解释与观测。
//
// 生命周期：召回阶段创建，打分阶段填充分数与拆解，解释阶段填充 Reasons，
// 响应组装后整体丢弃，不做任何持久化。
type Candidate struct {
	Film    *Film
	Profile *FeatureProfile

	ScoreA   float64 // 与种子 A 的相似度
	ScoreB   float64 // 与种子 B 的相似度
	Combined float64 // alpha·ScoreA + (1-alpha)·ScoreB，排序键

	BreakdownA []DimensionScore // 对种子 A 的逐维拆解
	BreakdownB []DimensionScore // 对种子 B 的逐维拆解

	Reasons []string

	Labels map[string]utils.Label
}

func NewCandidate(film *Film) *Candidate {
	return &Candidate{
		Film:   film,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}
