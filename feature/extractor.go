package feature

import "github.com/rushteam/blendkit/core"

// Extractor 将原始影片记录转换为归一化的特征画像。
//
// 数值维度按本次请求观察到的范围（候选池 ∪ 两部种子片）做 min-max 归一化：
//
//	normalized = (value - min) / (max - min)，并截断到 [0,1]
//
// 退化情形 max == min（比如池中只有一个候选）时，该维度对所有影片固定取
// 0.5，避免制造虚假区分度。缺失的数值不产生任何贡献——画像中直接没有
// 该维度的条目，而不是默认成 0。
//
// 画像依赖当前候选池的范围，属于请求内临时值；不要缓存到影片实体上。
type Extractor struct{}

// NewExtractor 创建特征抽取器。
func NewExtractor() *Extractor { return &Extractor{} }

// ObserveRange 扫描候选池与种子片，得到各数值维度的观察范围。
func (e *Extractor) ObserveRange(pool []*core.Film, seeds ...*core.Film) *core.PoolRange {
	r := core.NewPoolRange()
	observe := func(f *core.Film) {
		if f == nil {
			return
		}
		for _, d := range core.NumericDimensions() {
			if v, ok := rawNumeric(f, d); ok {
				r.Observe(d, v)
			}
		}
	}
	for _, f := range pool {
		observe(f)
	}
	for _, f := range seeds {
		observe(f)
	}
	return r
}

// Profile 基于观察范围构建影片的特征画像。
func (e *Extractor) Profile(f *core.Film, r *core.PoolRange) *core.FeatureProfile {
	p := &core.FeatureProfile{
		FilmID:   f.ID,
		Numeric:  make(map[core.Dimension]float64, 4),
		Genres:   f.GenreSet(),
		Keywords: f.KeywordSet(),
		People:   f.PeopleSet(),
	}

	for _, d := range core.NumericDimensions() {
		v, ok := rawNumeric(f, d)
		if !ok {
			continue // 无信号，整条维度留空
		}
		lo, hi, seen := r.Bounds(d)
		if !seen {
			continue
		}
		if hi == lo {
			// 退化池：所有影片在该维度取中点
			p.Numeric[d] = 0.5
			continue
		}
		n := (v - lo) / (hi - lo)
		if n < 0 {
			n = 0
		} else if n > 1 {
			n = 1
		}
		p.Numeric[d] = n
	}

	return p
}

// rawNumeric 读取影片某数值维度的原始值；缺失时 ok 为 false。
func rawNumeric(f *core.Film, d core.Dimension) (float64, bool) {
	switch d {
	case core.DimYear:
		if f.Year == 0 {
			return 0, false
		}
		return float64(f.Year), true
	case core.DimRuntime:
		if f.Runtime == nil {
			return 0, false
		}
		return float64(*f.Runtime), true
	case core.DimPopularity:
		if f.Popularity == nil {
			return 0, false
		}
		return *f.Popularity, true
	case core.DimCriticScore:
		if f.CriticScore == nil {
			return 0, false
		}
		return *f.CriticScore, true
	default:
		return 0, false
	}
}
