package filter

import (
	"context"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/pkg/dsl"
)

// RuleFilter 是基于 CEL 表达式的规则过滤器：表达式求值为 true 的候选被剔除。
//
// 典型用法是给候选池加质量门槛：
//
//	&filter.RuleFilter{Expr: `candidate.vote_count < 10`}
//
// 表达式可引用 candidate（影片字段与分数）、label、bctx（请求参数）。
type RuleFilter struct {
	// Expr CEL 表达式；为空时不过滤任何候选
	Expr string
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	bctx *core.BlendContext,
	cand *core.Candidate,
) (bool, error) {
	if f.Expr == "" {
		return false, nil
	}
	matched, err := dsl.NewEval(cand, bctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return matched, nil
}
