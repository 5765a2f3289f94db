package pipeline

import (
	"context"

	"github.com/rushteam/blendkit/core"
)

// Pipeline 是 blendkit 的核心抽象：把混搭推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	bctx *core.BlendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := cands
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, bctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
