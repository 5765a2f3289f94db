package core

// Dimension 是一条比较轴：集合维度（类型/关键词/影人）或数值维度（年份/片长/热度/评分）。
type Dimension string

const (
	DimGenre       Dimension = "genre_overlap"
	DimKeyword     Dimension = "keyword_overlap"
	DimPeople      Dimension = "people_overlap"
	DimYear        Dimension = "year_proximity"
	DimRuntime     Dimension = "runtime_proximity"
	DimPopularity  Dimension = "popularity_proximity"
	DimCriticScore Dimension = "critic_score_proximity"
)

// SetDimensions 是三条集合维度，按 Jaccard 重合度打分。
func SetDimensions() []Dimension {
	return []Dimension{DimGenre, DimKeyword, DimPeople}
}

// NumericDimensions 是四条数值维度，按归一化距离打分；任一侧缺失时整条维度跳过。
func NumericDimensions() []Dimension {
	return []Dimension{DimYear, DimRuntime, DimPopularity, DimCriticScore}
}

// AllDimensions 返回全部维度，顺序固定（集合维度在前），用于确定性的遍历与输出。
func AllDimensions() []Dimension {
	return []Dimension{
		DimGenre, DimKeyword, DimPeople,
		DimYear, DimRuntime, DimPopularity, DimCriticScore,
	}
}

// DimensionScore 是单一维度上的相似度，Score ∈ [0,1]。
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
}

// Weights 是各维度的打分权重。维度缺失时按"在场权重和"重新归一化，
// 因此权重之间只有相对意义；默认值之和为 1。
type Weights struct {
	Genre       float64 `yaml:"genre" json:"genre"`
	Keyword     float64 `yaml:"keyword" json:"keyword"`
	People      float64 `yaml:"people" json:"people"`
	Year        float64 `yaml:"year" json:"year"`
	Runtime     float64 `yaml:"runtime" json:"runtime"`
	Popularity  float64 `yaml:"popularity" json:"popularity"`
	CriticScore float64 `yaml:"critic_score" json:"critic_score"`
}

// DefaultWeights 返回默认权重：genre 0.30 / keyword 0.20 / people 0.15 /
// year 0.10 / runtime 0.10 / popularity 0.10 / critic_score 0.05。
func DefaultWeights() Weights {
	return Weights{
		Genre:       0.30,
		Keyword:     0.20,
		People:      0.15,
		Year:        0.10,
		Runtime:     0.10,
		Popularity:  0.10,
		CriticScore: 0.05,
	}
}

// Of 返回指定维度的权重，未知维度返回 0。
func (w Weights) Of(d Dimension) float64 {
	switch d {
	case DimGenre:
		return w.Genre
	case DimKeyword:
		return w.Keyword
	case DimPeople:
		return w.People
	case DimYear:
		return w.Year
	case DimRuntime:
		return w.Runtime
	case DimPopularity:
		return w.Popularity
	case DimCriticScore:
		return w.CriticScore
	default:
		return 0
	}
}

// Sum 返回全部权重之和。
func (w Weights) Sum() float64 {
	return w.Genre + w.Keyword + w.People + w.Year + w.Runtime + w.Popularity + w.CriticScore
}

// Normalize 将权重等比例缩放到和为 1；全零时回退到默认权重。
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum == 0 {
		return DefaultWeights()
	}
	return Weights{
		Genre:       w.Genre / sum,
		Keyword:     w.Keyword / sum,
		People:      w.People / sum,
		Year:        w.Year / sum,
		Runtime:     w.Runtime / sum,
		Popularity:  w.Popularity / sum,
		CriticScore: w.CriticScore / sum,
	}
}
