package pipeline

import (
	"context"

	"github.com/rushteam/blendkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall      Kind = "recall"      // 召回阶段：生成候选池
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的候选
	KindFeature     Kind = "feature"     // 特征阶段：打分前补齐候选/种子的特征信号
	KindRank        Kind = "rank"        // 排序阶段：对候选打分
	KindReRank      Kind = "rerank"      // 重排阶段：排序、并列裁决与截断
	KindPostProcess Kind = "postprocess" // 后处理阶段：解释生成或最终结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 candidates -> 输出 candidates"的形态，
// 方便召回生成、过滤截断、打分、重排与解释等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		bctx *core.BlendContext,
		cands []*core.Candidate,
	) ([]*core.Candidate, error)
}
