package core

// Role 表示影人参与影片的角色。
type Role string

const (
	RoleCast     Role = "cast"
	RoleDirector Role = "director"
)

// Credit 是影片的演职员条目，按 BillingOrder 排序。
type Credit struct {
	PersonID     int64 `json:"person_id"`
	Role         Role  `json:"role"`
	BillingOrder int   `json:"billing_order"`
}

// Film 是只读目录中的影片记录。引擎只读取，不会修改。
//
// 数值字段使用指针表达"缺失"：缺失表示该维度无信号，
// 绝不能当作 0 参与打分（见 feature 包的归一化规则）。
// Year 为 0 时同样视为缺失。
type Film struct {
	ID          string   `json:"id"`
	TmdbID      int64    `json:"tmdb_id,omitempty"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview,omitempty"`
	Year        int      `json:"year"`
	PosterPath  string   `json:"poster_path,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`      // 分钟
	Popularity  *float64 `json:"popularity,omitempty"`
	CriticScore *float64 `json:"critic_score,omitempty"` // 0-10，可空
	VoteCount   int      `json:"vote_count"`

	Genres   []int64  `json:"genres,omitempty"`
	Keywords []int64  `json:"keywords,omitempty"`
	Credits  []Credit `json:"credits,omitempty"`
}

// GenreSet 返回影片类型 ID 的集合形式。
func (f *Film) GenreSet() map[int64]struct{} {
	return toSet(f.Genres)
}

// KeywordSet 返回关键词 ID 的集合形式。
func (f *Film) KeywordSet() map[int64]struct{} {
	return toSet(f.Keywords)
}

// PeopleSet 返回演职员（演员与导演）的人员 ID 集合。
func (f *Film) PeopleSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(f.Credits))
	for _, c := range f.Credits {
		set[c.PersonID] = struct{}{}
	}
	return set
}

// PopularityOrZero 返回热度值；缺失时返回 0（仅用于并列排序，不参与打分）。
func (f *Film) PopularityOrZero() float64 {
	if f.Popularity == nil {
		return 0
	}
	return *f.Popularity
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
