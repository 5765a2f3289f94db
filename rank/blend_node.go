package rank

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/feature"
	"github.com/rushteam/blendkit/pipeline"
	"github.com/rushteam/blendkit/similarity"
)

// DefaultWorkers 是候选打分的默认并发度。
const DefaultWorkers = 8

// BlendNode 是混搭打分节点：对每个候选计算与两部种子片的相似度，
// 并按 alpha 加权合成排序分。
//
//	score_a   = 候选 vs 种子 A
//	score_b   = 候选 vs 种子 B
//	combined  = alpha·score_a + (1-alpha)·score_b
//
// alpha=0 时 combined 精确等于 score_b，alpha=1 时精确等于 score_a
// （按公式直接成立，不做任何额外修正项）。
//
// 并发模型：候选之间相互独立，按固定上限的 worker 扇出打分再扇入；
// 扇入顺序无关紧要，排序由 rerank 节点显式完成。调用上下文取消时
// 立即放弃在途打分，整个请求失败——绝不返回部分结果。
//
// 单个候选画像异常属于数据缺陷：剔除该候选并记录日志，请求照常继续
// （推荐场景下健壮优先于完整）。
type BlendNode struct {
	// Similarity 相似度引擎；nil 时使用默认权重
	Similarity *similarity.Engine

	// Extractor 特征抽取器；nil 时使用默认抽取器
	Extractor *feature.Extractor

	// Workers 打分并发上限；<=0 取 DefaultWorkers
	Workers int

	// Logger 结构化日志，零值为 no-op
	Logger zerolog.Logger
}

func (n *BlendNode) Name() string        { return "rank.blend" }
func (n *BlendNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *BlendNode) Process(
	ctx context.Context,
	bctx *core.BlendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if bctx == nil || bctx.Request == nil || bctx.SeedA == nil || bctx.SeedB == nil {
		return nil, nil
	}
	if len(cands) == 0 {
		return cands, nil
	}

	engine := n.Similarity
	if engine == nil {
		engine = similarity.NewEngine()
	}
	extractor := n.Extractor
	if extractor == nil {
		extractor = feature.NewExtractor()
	}

	// 1. 观察本次请求的数值范围（候选池 ∪ 种子片），构建种子画像。
	// 范围依赖候选池，是请求内临时值，回填到 bctx 供解释节点复用。
	films := make([]*core.Film, 0, len(cands))
	for _, c := range cands {
		if c != nil {
			films = append(films, c.Film)
		}
	}
	r := extractor.ObserveRange(films, bctx.SeedA, bctx.SeedB)
	bctx.Range = r
	bctx.ProfileA = extractor.Profile(bctx.SeedA, r)
	bctx.ProfileB = extractor.Profile(bctx.SeedB, r)

	// 2. 扇出打分，固定并发上限。
	workers := n.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	alpha := bctx.Request.Alpha
	dropped := make([]bool, len(cands))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, cand := range cands {
		i, cand := i, cand
		eg.Go(func() error {
			// 取消即放弃：部分结果永远不对外暴露
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if err := n.score(cand, bctx, extractor, engine, alpha); err != nil {
				dropped[i] = true
				n.Logger.Warn().Err(err).Str("node", n.Name()).Msg("candidate dropped")
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*core.Candidate, 0, len(cands))
	for i, cand := range cands {
		if cand == nil || dropped[i] {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

// score 为单个候选计算画像、双侧相似度与合成分。
// 画像异常（含 panic）转换为 error，由调用方剔除该候选。
func (n *BlendNode) score(
	cand *core.Candidate,
	bctx *core.BlendContext,
	extractor *feature.Extractor,
	engine *similarity.Engine,
	alpha float64,
) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed candidate profile: %v", rec)
		}
	}()

	if cand == nil || cand.Film == nil || cand.Film.ID == "" {
		return fmt.Errorf("candidate without film record")
	}

	cand.Profile = extractor.Profile(cand.Film, bctx.Range)
	cand.BreakdownA, cand.ScoreA = engine.Score(cand.Profile, bctx.ProfileA)
	cand.BreakdownB, cand.ScoreB = engine.Score(cand.Profile, bctx.ProfileB)
	cand.Combined = alpha*cand.ScoreA + (1-alpha)*cand.ScoreB
	return nil
}
