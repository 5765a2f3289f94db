package core

// 请求参数的默认值与边界。alpha/limit 仅在"完全缺省"时取默认值；
// 传了但越界时直接报错，绝不静默回退（见 blend 包的两段式解析）。
const (
	DefaultAlpha = 0.5
	DefaultLimit = 20

	MinAlpha = 0.0
	MaxAlpha = 1.0
	MinLimit = 1
	MaxLimit = 50
)

// BlendRequest 是校验通过后的混搭请求。非法请求不会进入打分链路。
type BlendRequest struct {
	FilmA string  `json:"film_a_id"`
	FilmB string  `json:"film_b_id"`
	Alpha float64 `json:"alpha"` // 种子 A 的权重，种子 B 得 1-Alpha
	Limit int     `json:"limit"`
}
