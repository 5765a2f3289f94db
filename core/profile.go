package core

// FeatureProfile 是单次请求内影片的归一化特征画像。
//
// Numeric 只收录"有信号"的数值维度：目录里缺失的字段不会出现在 map 中，
// 下游据此跳过整条维度，而不是把缺失当作 0。
//
// 归一化区间取决于本次请求的候选池 ∪ 两部种子片，因此 profile 是
// 请求内临时值，随响应一起丢弃，绝不能跨请求缓存或挂到影片实体上。
type FeatureProfile struct {
	FilmID  string
	Numeric map[Dimension]float64

	Genres   map[int64]struct{}
	Keywords map[int64]struct{}
	People   map[int64]struct{}
}

// NumericValue 返回某数值维度的归一化值；第二返回值表示该维度是否有信号。
func (p *FeatureProfile) NumericValue(d Dimension) (float64, bool) {
	v, ok := p.Numeric[d]
	return v, ok
}

// SetOf 返回某集合维度对应的原始 ID 集合；非集合维度返回 nil。
func (p *FeatureProfile) SetOf(d Dimension) map[int64]struct{} {
	switch d {
	case DimGenre:
		return p.Genres
	case DimKeyword:
		return p.Keywords
	case DimPeople:
		return p.People
	default:
		return nil
	}
}

// PoolRange 是本次请求观察到的数值范围（候选池 ∪ 两部种子片），
// 作为归一化的分母。Min/Max 中没有条目的维度表示整个池都无信号。
type PoolRange struct {
	Min map[Dimension]float64
	Max map[Dimension]float64
}

// NewPoolRange 创建空的数值范围。
func NewPoolRange() *PoolRange {
	return &PoolRange{
		Min: make(map[Dimension]float64, 4),
		Max: make(map[Dimension]float64, 4),
	}
}

// Observe 将一个观测值并入范围。
func (r *PoolRange) Observe(d Dimension, v float64) {
	if cur, ok := r.Min[d]; !ok || v < cur {
		r.Min[d] = v
	}
	if cur, ok := r.Max[d]; !ok || v > cur {
		r.Max[d] = v
	}
}

// Bounds 返回某维度的 (min, max)；第三返回值表示该维度是否出现过观测值。
func (r *PoolRange) Bounds(d Dimension) (float64, float64, bool) {
	lo, ok := r.Min[d]
	if !ok {
		return 0, 0, false
	}
	return lo, r.Max[d], true
}
