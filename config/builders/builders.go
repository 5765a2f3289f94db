// Package builders 在 init 中注册全部内置 Node 的配置构建器。
// 配置驱动的入口处 import _ 本包即可启用。
package builders

import (
	"fmt"

	"github.com/rushteam/blendkit/config"
	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/explain"
	"github.com/rushteam/blendkit/feature"
	"github.com/rushteam/blendkit/filter"
	"github.com/rushteam/blendkit/pipeline"
	"github.com/rushteam/blendkit/pkg/conv"
	"github.com/rushteam/blendkit/rank"
	"github.com/rushteam/blendkit/recall"
	"github.com/rushteam/blendkit/rerank"
	"github.com/rushteam/blendkit/similarity"
)

func init() {
	config.Register("recall.pool", BuildPoolNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rank.blend", BuildBlendNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("explain.blend", BuildExplainNode)
	config.Register("feature.stats", BuildStatsNode)
}

// BuildPoolNode 构建候选池召回节点。目录是运行时依赖，
// 构建后由 config.WireCatalog 注入。
func BuildPoolNode(cfg map[string]any) (pipeline.Node, error) {
	return &recall.CandidatePool{
		SharedTagOnly: conv.ConfigGet(cfg, "shared_tag_only", false),
	}, nil
}

// BuildFilterNode 构建过滤节点，filters 为过滤器列表：
//
//	filters:
//	  - type: seed
//	  - type: rule
//	    expr: "candidate.vote_count < 10"
func BuildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet(filterMap, "type", ""); filterType {
		case "seed":
			filters = append(filters, &filter.SeedFilter{})
		case "rule":
			expr := conv.ConfigGet(filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("rule filter requires expr")
			}
			filters = append(filters, &filter.RuleFilter{Expr: expr})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}

// BuildBlendNode 构建混搭打分节点，可覆盖各维度权重与并发度：
//
//	weights:
//	  genre: 0.30
//	  keyword: 0.20
//	workers: 8
func BuildBlendNode(cfg map[string]any) (pipeline.Node, error) {
	node := &rank.BlendNode{
		Workers: conv.ConfigGetInt(cfg, "workers", 0),
	}
	if wm, ok := cfg["weights"].(map[string]any); ok {
		node.Similarity = &similarity.Engine{Weights: weightsFromConfig(wm)}
	}
	return node, nil
}

// BuildTopNNode 构建排序截断节点。n 缺省时取请求的 limit。
func BuildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{
		N: conv.ConfigGetInt(cfg, "n", 0),
	}, nil
}

// BuildExplainNode 构建解释生成节点。目录由 config.WireCatalog 注入。
func BuildExplainNode(cfg map[string]any) (pipeline.Node, error) {
	node := &explain.Builder{
		MaxReasons: conv.ConfigGetInt(cfg, "max_reasons", 0),
	}
	if wm, ok := cfg["weights"].(map[string]any); ok {
		node.Weights = weightsFromConfig(wm)
	}
	return node, nil
}

// BuildStatsNode 构建统计特征回填节点。Feast 客户端是运行时依赖，
// 配置只描述特征命名；未注入客户端时节点为 no-op。
func BuildStatsNode(cfg map[string]any) (pipeline.Node, error) {
	return &feature.StatsEnricher{
		Project:            conv.ConfigGet(cfg, "project", ""),
		EntityKey:          conv.ConfigGet(cfg, "entity_key", ""),
		PopularityFeature:  conv.ConfigGet(cfg, "popularity_feature", ""),
		CriticScoreFeature: conv.ConfigGet(cfg, "critic_score_feature", ""),
		EnrichSeeds:        conv.ConfigGet(cfg, "enrich_seeds", true),
	}, nil
}

func weightsFromConfig(m map[string]any) core.Weights {
	d := core.DefaultWeights()
	return core.Weights{
		Genre:       conv.ConfigGetFloat64(m, "genre", d.Genre),
		Keyword:     conv.ConfigGetFloat64(m, "keyword", d.Keyword),
		People:      conv.ConfigGetFloat64(m, "people", d.People),
		Year:        conv.ConfigGetFloat64(m, "year", d.Year),
		Runtime:     conv.ConfigGetFloat64(m, "runtime", d.Runtime),
		Popularity:  conv.ConfigGetFloat64(m, "popularity", d.Popularity),
		CriticScore: conv.ConfigGetFloat64(m, "critic_score", d.CriticScore),
	}
}
