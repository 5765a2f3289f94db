package similarity

import (
	"math"

	"github.com/rushteam/blendkit/core"
)

// Engine 计算候选画像与单个种子画像的多维相似度。
//
// 维度与公式：
//   - 集合维度（genre/keyword/people）：Jaccard 重合度，两侧均空时记 0
//   - 数值维度（year/runtime/popularity/critic_score）：1 - |归一化差|；
//     任一侧缺失时整条维度跳过（不进入加权和，也不进入分母）
//
// 标量相似度是在场维度的加权和，按在场权重之和重新归一化：
//
//	similarity = Σ(w_d · s_d) / Σ(w_d, d 在场)
//
// 缺数据因此不会悄悄压低候选的分数。
type Engine struct {
	// Weights 各维度权重；零值时使用 core.DefaultWeights()。
	Weights core.Weights
}

// NewEngine 创建使用默认权重的相似度引擎。
func NewEngine() *Engine {
	return &Engine{Weights: core.DefaultWeights()}
}

func (e *Engine) weights() core.Weights {
	if e.Weights.Sum() == 0 {
		return core.DefaultWeights()
	}
	return e.Weights
}

// Score 返回逐维拆解（顺序固定，只含在场维度）与 [0,1] 的标量相似度。
func (e *Engine) Score(cand, seed *core.FeatureProfile) ([]core.DimensionScore, float64) {
	w := e.weights()

	scores := make([]core.DimensionScore, 0, 7)
	var weighted, present float64

	for _, d := range core.SetDimensions() {
		s := Jaccard(cand.SetOf(d), seed.SetOf(d))
		scores = append(scores, core.DimensionScore{Dimension: d, Score: s})
		weighted += w.Of(d) * s
		present += w.Of(d)
	}

	for _, d := range core.NumericDimensions() {
		cv, cok := cand.NumericValue(d)
		sv, sok := seed.NumericValue(d)
		if !cok || !sok {
			// 任一侧无信号：跳过，不当作最大差异
			continue
		}
		s := 1 - math.Abs(cv-sv)
		scores = append(scores, core.DimensionScore{Dimension: d, Score: s})
		weighted += w.Of(d) * s
		present += w.Of(d)
	}

	if present == 0 {
		return scores, 0
	}

	total := weighted / present
	// 浮点噪声防御：结果按约定落在 [0,1]
	if total < 0 {
		total = 0
	} else if total > 1 {
		total = 1
	}
	return scores, total
}
