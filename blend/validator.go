package blend

import (
	"context"

	"github.com/rushteam/blendkit/core"
)

// Validator 是请求校验器：把 RawParams 解析成合法的 BlendRequest，
// 并从目录加载两部种子片。
//
// 校验顺序固定，同时违反多条规则时按此顺序报告第一条：
//  1. 参数在场性（film_a_id、film_b_id 均必填）
//  2. 种子互异性（两个 ID 不得相同）
//  3. alpha 范围 [0,1]（缺省取 0.5）
//  4. limit 范围 [1,50]（缺省取 20）
//  5. 种子存在性（先查 A 再查 B）
//
// 目录查询故障（非"不存在"）映射为 CATALOG_UNAVAILABLE，调用方可重试。
type Validator struct {
	Catalog core.Catalog
}

// Validate 执行校验，返回解析后的请求和两部种子片。
// 任何一条规则不满足时返回对应的 DomainError，请求不会进入打分链路。
func (v *Validator) Validate(ctx context.Context, raw RawParams) (*core.BlendRequest, *core.Film, *core.Film, error) {
	if raw.FilmA == "" {
		return nil, nil, nil, core.NewMissingParameter("film_a_id")
	}
	if raw.FilmB == "" {
		return nil, nil, nil, core.NewMissingParameter("film_b_id")
	}
	if raw.FilmA == raw.FilmB {
		return nil, nil, nil, core.ErrIdenticalSeeds
	}

	alpha := core.DefaultAlpha
	if raw.Alpha != nil {
		// 闭区间判定取反，NaN 与任何值比较均为 false，因此同样落入拒绝分支
		if !(*raw.Alpha >= core.MinAlpha && *raw.Alpha <= core.MaxAlpha) {
			return nil, nil, nil, core.ErrOutOfRangeAlpha
		}
		alpha = *raw.Alpha
	}

	limit := core.DefaultLimit
	if raw.Limit != nil {
		if *raw.Limit < core.MinLimit || *raw.Limit > core.MaxLimit {
			return nil, nil, nil, core.ErrOutOfRangeLimit
		}
		limit = *raw.Limit
	}

	seedA, err := v.lookup(ctx, raw.FilmA)
	if err != nil {
		return nil, nil, nil, err
	}
	seedB, err := v.lookup(ctx, raw.FilmB)
	if err != nil {
		return nil, nil, nil, err
	}

	req := &core.BlendRequest{
		FilmA: raw.FilmA,
		FilmB: raw.FilmB,
		Alpha: alpha,
		Limit: limit,
	}
	return req, seedA, seedB, nil
}

// lookup 加载种子片，区分"不存在"和"目录不可用"。
func (v *Validator) lookup(ctx context.Context, filmID string) (*core.Film, error) {
	if v.Catalog == nil {
		return nil, core.ErrCatalogUnavailable
	}
	f, err := v.Catalog.GetFilm(ctx, filmID)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, core.NewSeedNotFound(filmID)
		}
		return nil, core.ErrCatalogUnavailable
	}
	return f, nil
}
