package feature

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/feast"
	"github.com/rushteam/blendkit/pipeline"
)

// 默认的特征命名（Feast 特征视图 film_stats，实体键 film_id）。
const (
	DefaultEntityKey          = "film_id"
	DefaultPopularityFeature  = "film_stats:popularity"
	DefaultCriticScoreFeature = "film_stats:critic_score"
)

// StatsEnricher 是统计特征回填节点：在打分之前，用 Feast 在线特征存储
// 补齐目录快照里缺失的热度/媒体评分。
//
// 目录是进程生命周期内的不可变快照，统计类信号（热度、评分）由离线任务
// 持续物化到在线特征存储；两边的新鲜度天然不同，回填让打分尽量不因为
// 快照滞后而跳过数值维度。
//
// 约束：
//   - 只补缺口，绝不覆盖目录已有的值
//   - 特征存储里也没有的，维持缺失（下游照常跳过该维度）
//   - 回填失败只记日志，不中断请求：增强是可选的
//   - 目录影片是共享只读数据，写入前做浅拷贝（copy-on-write）
type StatsEnricher struct {
	// Client Feast 客户端；为 nil 时节点是 no-op
	Client feast.Client

	// Project Feast 项目名
	Project string

	// EntityKey 实体键名，默认 "film_id"
	EntityKey string

	// PopularityFeature / CriticScoreFeature 特征名，空值取默认
	PopularityFeature  string
	CriticScoreFeature string

	// EnrichSeeds 是否同时回填两部种子片（默认建议开启：
	// 数值维度在任一侧缺失时整条跳过）
	EnrichSeeds bool

	// Logger 结构化日志，零值为 no-op
	Logger zerolog.Logger
}

func (n *StatsEnricher) Name() string        { return "feature.stats" }
func (n *StatsEnricher) Kind() pipeline.Kind { return pipeline.KindFeature }

func (n *StatsEnricher) Process(
	ctx context.Context,
	bctx *core.BlendContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Client == nil {
		return cands, nil
	}

	// 收集有缺口的影片
	type slot struct {
		cand *core.Candidate // 为 nil 表示种子片
		seed **core.Film
	}
	slots := make([]slot, 0, len(cands))
	rows := make([]map[string]any, 0, len(cands))

	entityKey := n.EntityKey
	if entityKey == "" {
		entityKey = DefaultEntityKey
	}

	add := func(f *core.Film, s slot) {
		if f == nil {
			return
		}
		if f.Popularity != nil && f.CriticScore != nil {
			return
		}
		slots = append(slots, s)
		rows = append(rows, map[string]any{entityKey: f.ID})
	}

	for _, c := range cands {
		if c == nil {
			continue
		}
		add(c.Film, slot{cand: c})
	}
	if n.EnrichSeeds && bctx != nil {
		add(bctx.SeedA, slot{seed: &bctx.SeedA})
		add(bctx.SeedB, slot{seed: &bctx.SeedB})
	}

	if len(rows) == 0 {
		return cands, nil
	}

	popFeature := n.PopularityFeature
	if popFeature == "" {
		popFeature = DefaultPopularityFeature
	}
	criticFeature := n.CriticScoreFeature
	if criticFeature == "" {
		criticFeature = DefaultCriticScoreFeature
	}

	resp, err := n.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   []string{popFeature, criticFeature},
		EntityRows: rows,
		Project:    n.Project,
	})
	if err != nil {
		// 回填是可选增强：失败降级为跳过，不中断请求
		n.Logger.Warn().Err(err).Int("films", len(rows)).Msg("feast stats enrich skipped")
		return cands, nil
	}
	if len(resp.FeatureVectors) != len(slots) {
		n.Logger.Warn().Int("want", len(slots)).Int("got", len(resp.FeatureVectors)).
			Msg("feast stats enrich: row count mismatch, skipped")
		return cands, nil
	}

	for i, fv := range resp.FeatureVectors {
		s := slots[i]
		var film *core.Film
		if s.cand != nil {
			film = s.cand.Film
		} else {
			film = *s.seed
		}

		patched := *film // 共享只读数据，copy-on-write
		touched := false
		if patched.Popularity == nil {
			if v, ok := fv.Float64(popFeature); ok {
				patched.Popularity = &v
				touched = true
			}
		}
		if patched.CriticScore == nil {
			if v, ok := fv.Float64(criticFeature); ok {
				patched.CriticScore = &v
				touched = true
			}
		}
		if !touched {
			continue
		}
		if s.cand != nil {
			s.cand.Film = &patched
		} else {
			*s.seed = &patched
		}
	}

	return cands, nil
}
