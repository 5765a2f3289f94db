package blend

import (
	"github.com/rushteam/blendkit/pkg/conv"
)

// RawParams 是校验前的原始请求参数。
//
// Alpha/Limit 用指针区分"完全缺省"和"传了零值"：缺省（nil）取默认值，
// 传了但越界直接报错，绝不静默回退到默认（两段式解析）。
type RawParams struct {
	FilmA string `json:"film_a_id"`
	FilmB string `json:"film_b_id"`

	Alpha *float64 `json:"alpha,omitempty"`
	Limit *int     `json:"limit,omitempty"`
}

// Float64 便于在调用方内联构造 Alpha 指针。
func Float64(v float64) *float64 { return &v }

// Int 便于在调用方内联构造 Limit 指针。
func Int(v int) *int { return &v }

// ParamsFromMap 从泛型参数表（如 URL query 解析结果）构造 RawParams。
// 键缺失视为缺省；键存在但无法转换视为越界由校验器报错。
func ParamsFromMap(m map[string]any) RawParams {
	p := RawParams{}
	if v, ok := m["film_a_id"]; ok {
		p.FilmA, _ = v.(string)
	}
	if v, ok := m["film_b_id"]; ok {
		p.FilmB, _ = v.(string)
	}
	if _, ok := m["alpha"]; ok {
		p.Alpha = Float64(conv.ConfigGetFloat64(m, "alpha", -1))
	}
	if _, ok := m["limit"]; ok {
		p.Limit = Int(conv.ConfigGetInt(m, "limit", -1))
	}
	return p
}
