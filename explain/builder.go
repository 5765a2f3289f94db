package explain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/pipeline"
	"github.com/rushteam/blendkit/pkg/utils"
	"github.com/rushteam/blendkit/similarity"
)

// DefaultMaxReasons 是单个候选最多输出的理由条数。
const DefaultMaxReasons = 3

// Builder 是解释生成节点：为每个候选产出按显著度排序的人类可读理由。
//
// 显著度 = weight_d · max(score_d_vs_A, score_d_vs_B)，降序；并列时按
// 固定的维度顺序裁决。只有 score > 0 且 weight > 0 的维度才产生理由，
// 因缺数据被跳过的维度永远不会出现在理由里（它们根本不在拆解中）。
//
// 集合维度的理由会点名具体的共享成员（类型/关键词/影人名称，
// 经 Catalog 解析）；名称表不可用时退化为不点名的泛化表述，
// 解释生成的故障不应拖垮整个请求。
type Builder struct {
	// Catalog 用于解析共享成员名称
	Catalog core.Catalog

	// Weights 与打分一致的权重；零值取默认
	Weights core.Weights

	// MaxReasons 理由条数上限；<=0 取 DefaultMaxReasons
	MaxReasons int
}

func (n *Builder) Name() string        { return "explain.blend" }
func (n *Builder) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *Builder) Process(
	ctx context.Context,
	bctx *core.BlendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if bctx == nil || len(cands) == 0 {
		return cands, nil
	}

	w := n.Weights
	if w.Sum() == 0 {
		w = core.DefaultWeights()
	}
	maxReasons := n.MaxReasons
	if maxReasons <= 0 {
		maxReasons = DefaultMaxReasons
	}

	for _, cand := range cands {
		if cand == nil {
			continue
		}
		cand.Reasons = n.reasons(ctx, bctx, cand, w, maxReasons)
		if len(cand.Reasons) > 0 {
			cand.PutLabel("explained", utils.Label{Value: "true", Source: "explain"})
		}
	}
	return cands, nil
}

// salient 是参与显著度排序的一条维度记录。
type salient struct {
	dim      core.Dimension
	scoreA   float64
	scoreB   float64
	salience float64
}

func (n *Builder) reasons(
	ctx context.Context,
	bctx *core.BlendContext,
	cand *core.Candidate,
	w core.Weights,
	maxReasons int,
) []string {
	scoreA := breakdownMap(cand.BreakdownA)
	scoreB := breakdownMap(cand.BreakdownB)

	// 只考虑至少在一侧拆解中"在场"的维度
	entries := make([]salient, 0, 7)
	for _, d := range core.AllDimensions() {
		sa, okA := scoreA[d]
		sb, okB := scoreB[d]
		if !okA && !okB {
			continue // 双侧都因缺数据跳过
		}
		maxScore := sa
		if sb > maxScore {
			maxScore = sb
		}
		if maxScore <= 0 || w.Of(d) <= 0 {
			continue // 低于相关性门槛
		}
		entries = append(entries, salient{
			dim:      d,
			scoreA:   sa,
			scoreB:   sb,
			salience: w.Of(d) * maxScore,
		})
	}

	// 显著度降序；并列按固定维度顺序（entries 本身按该顺序构建，
	// 稳定排序即可保证确定性）
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].salience > entries[j].salience
	})

	out := make([]string, 0, maxReasons)
	for _, e := range entries {
		if len(out) >= maxReasons {
			break
		}
		if reason := n.phrase(ctx, bctx, cand, e); reason != "" {
			out = append(out, reason)
		}
	}
	return out
}

// phrase 生成单条理由文本。
func (n *Builder) phrase(ctx context.Context, bctx *core.BlendContext, cand *core.Candidate, e salient) string {
	switch e.dim {
	case core.DimGenre, core.DimKeyword, core.DimPeople:
		return n.setPhrase(ctx, bctx, cand, e)
	default:
		return numericPhrase(bctx, e)
	}
}

// setPhrase 点名集合维度的共享成员，措辞沿用混搭模式的既有文案：
// "Shared genres with both: Action, Drama"。
func (n *Builder) setPhrase(ctx context.Context, bctx *core.BlendContext, cand *core.Candidate, e salient) string {
	if cand.Profile == nil {
		return ""
	}
	candSet := cand.Profile.SetOf(e.dim)

	var setA, setB map[int64]struct{}
	if bctx.ProfileA != nil {
		setA = bctx.ProfileA.SetOf(e.dim)
	}
	if bctx.ProfileB != nil {
		setB = bctx.ProfileB.SetOf(e.dim)
	}

	sharedA := similarity.Intersect(candSet, setA)
	sharedB := similarity.Intersect(candSet, setB)
	both := similarity.Intersect(toSet(sharedA), toSet(sharedB))

	noun := setNoun(e.dim)

	var ids []int64
	var target string
	switch {
	case len(both) > 0:
		ids, target = both, "both"
	case len(sharedA) > 0 && e.scoreA >= e.scoreB:
		ids, target = sharedA, seedTitle(bctx.SeedA)
	case len(sharedB) > 0:
		ids, target = sharedB, seedTitle(bctx.SeedB)
	case len(sharedA) > 0:
		ids, target = sharedA, seedTitle(bctx.SeedA)
	default:
		return ""
	}

	names := n.resolveNames(ctx, e.dim, ids)
	if len(names) == 0 {
		// 名称不可得时的泛化表述
		return fmt.Sprintf("Strong %s overlap with %s", noun, target)
	}
	sort.Strings(names)
	return fmt.Sprintf("Shared %s with %s: %s", noun, target, strings.Join(names, ", "))
}

// numericPhrase 生成数值维度的理由文本。
func numericPhrase(bctx *core.BlendContext, e salient) string {
	noun := numericNoun(e.dim)
	// 双侧都在场且都为正时归于"both"，否则点名更接近的一侧
	switch {
	case e.scoreA > 0 && e.scoreB > 0:
		return fmt.Sprintf("Close in %s to both picks", noun)
	case e.scoreA >= e.scoreB:
		return fmt.Sprintf("Close in %s to %s", noun, seedTitle(bctx.SeedA))
	default:
		return fmt.Sprintf("Close in %s to %s", noun, seedTitle(bctx.SeedB))
	}
}

func (n *Builder) resolveNames(ctx context.Context, d core.Dimension, ids []int64) []string {
	if n.Catalog == nil || len(ids) == 0 {
		return nil
	}
	var table map[int64]string
	var err error
	switch d {
	case core.DimGenre:
		table, err = n.Catalog.GenreNames(ctx, ids)
	case core.DimKeyword:
		table, err = n.Catalog.KeywordNames(ctx, ids)
	case core.DimPeople:
		table, err = n.Catalog.PersonNames(ctx, ids)
	}
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(table))
	for _, name := range table {
		names = append(names, name)
	}
	return names
}

func breakdownMap(scores []core.DimensionScore) map[core.Dimension]float64 {
	m := make(map[core.Dimension]float64, len(scores))
	for _, s := range scores {
		m[s.Dimension] = s.Score
	}
	return m
}

func setNoun(d core.Dimension) string {
	switch d {
	case core.DimGenre:
		return "genres"
	case core.DimKeyword:
		return "keywords"
	case core.DimPeople:
		return "cast & crew"
	default:
		return string(d)
	}
}

func numericNoun(d core.Dimension) string {
	switch d {
	case core.DimYear:
		return "release year"
	case core.DimRuntime:
		return "runtime"
	case core.DimPopularity:
		return "popularity"
	case core.DimCriticScore:
		return "critic score"
	default:
		return string(d)
	}
}

func seedTitle(f *core.Film) string {
	if f == nil || f.Title == "" {
		return "one pick"
	}
	return f.Title
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
