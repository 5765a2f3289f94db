package blend

import (
	"github.com/rushteam/blendkit/core"
)

// Meta 回显本次请求实际生效的参数（含缺省解析结果）。
type Meta struct {
	FilmA string  `json:"film_a_id"`
	FilmB string  `json:"film_b_id"`
	Alpha float64 `json:"alpha"`
	Limit int     `json:"limit"`
}

// FilmCard 是结果中展示用的影片摘要。
type FilmCard struct {
	ID          string   `json:"id"`
	TmdbID      int64    `json:"tmdb_id,omitempty"`
	Title       string   `json:"title"`
	Year        int      `json:"year,omitempty"`
	PosterPath  string   `json:"poster_path,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty"`
	CriticScore *float64 `json:"critic_score,omitempty"`
}

// Result 是单个候选的完整输出：摘要、合成分、双侧分与维度拆解、理由。
//
// BreakdownA/BreakdownB 只包含参与打分的维度；
// 因缺数据被跳过的维度不在其中（调用方据此区分"0 分"和"无信号"）。
type Result struct {
	Film FilmCard `json:"film"`

	Combined float64 `json:"combined_score"`
	ScoreA   float64 `json:"score_a"`
	ScoreB   float64 `json:"score_b"`

	BreakdownA map[string]float64 `json:"breakdown_a"`
	BreakdownB map[string]float64 `json:"breakdown_b"`

	Reasons []string `json:"reasons"`
}

// Response 是混搭请求的最终响应。候选池为空时 Results 为空切片而非 nil。
type Response struct {
	Meta    Meta     `json:"meta"`
	Results []Result `json:"results"`
}

// buildResponse 把排好序的候选装配为对外响应。
func buildResponse(req *core.BlendRequest, cands []*core.Candidate) *Response {
	resp := &Response{
		Meta: Meta{
			FilmA: req.FilmA,
			FilmB: req.FilmB,
			Alpha: req.Alpha,
			Limit: req.Limit,
		},
		Results: make([]Result, 0, len(cands)),
	}

	for _, cand := range cands {
		if cand == nil || cand.Film == nil {
			continue
		}
		f := cand.Film
		resp.Results = append(resp.Results, Result{
			Film: FilmCard{
				ID:          f.ID,
				TmdbID:      f.TmdbID,
				Title:       f.Title,
				Year:        f.Year,
				PosterPath:  f.PosterPath,
				Runtime:     f.Runtime,
				Popularity:  f.Popularity,
				CriticScore: f.CriticScore,
			},
			Combined:   cand.Combined,
			ScoreA:     cand.ScoreA,
			ScoreB:     cand.ScoreB,
			BreakdownA: breakdownJSON(cand.BreakdownA),
			BreakdownB: breakdownJSON(cand.BreakdownB),
			Reasons:    reasonsOrEmpty(cand.Reasons),
		})
	}
	return resp
}

func breakdownJSON(scores []core.DimensionScore) map[string]float64 {
	m := make(map[string]float64, len(scores))
	for _, s := range scores {
		m[string(s.Dimension)] = s.Score
	}
	return m
}

func reasonsOrEmpty(reasons []string) []string {
	if reasons == nil {
		return []string{}
	}
	return reasons
}
