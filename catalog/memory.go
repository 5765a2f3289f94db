package catalog

import (
	"context"

	"github.com/rushteam/blendkit/core"
)

// MemoryCatalog 是不可变内存快照实现的目录，用于测试/开发/小目录场景。
//
// 构造完成后不再写入，因此并发读无需加锁：目录数据在进程生命周期内
// 不可变，刷新由进程外的摄取任务整体替换快照。
type MemoryCatalog struct {
	films map[string]*core.Film
	order []string // 稳定的遍历顺序（构造时的插入顺序）

	genreNames   map[int64]string
	keywordNames map[int64]string
	personNames  map[int64]string
}

// MemoryCatalogOption 配置内存目录。
type MemoryCatalogOption func(*MemoryCatalog)

// WithGenreNames 注入类型名称表。
func WithGenreNames(names map[int64]string) MemoryCatalogOption {
	return func(c *MemoryCatalog) { c.genreNames = names }
}

// WithKeywordNames 注入关键词名称表。
func WithKeywordNames(names map[int64]string) MemoryCatalogOption {
	return func(c *MemoryCatalog) { c.keywordNames = names }
}

// WithPersonNames 注入影人名称表。
func WithPersonNames(names map[int64]string) MemoryCatalogOption {
	return func(c *MemoryCatalog) { c.personNames = names }
}

// NewMemoryCatalog 由影片列表构建不可变目录快照。
func NewMemoryCatalog(films []*core.Film, opts ...MemoryCatalogOption) *MemoryCatalog {
	c := &MemoryCatalog{
		films:        make(map[string]*core.Film, len(films)),
		order:        make([]string, 0, len(films)),
		genreNames:   map[int64]string{},
		keywordNames: map[int64]string{},
		personNames:  map[int64]string{},
	}
	for _, f := range films {
		if f == nil {
			continue
		}
		if _, ok := c.films[f.ID]; ok {
			continue
		}
		c.films[f.ID] = f
		c.order = append(c.order, f.ID)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCatalog) Name() string { return "memory" }

func (c *MemoryCatalog) GetFilm(ctx context.Context, id string) (*core.Film, error) {
	f, ok := c.films[id]
	if !ok {
		return nil, core.ErrCatalogNotFound
	}
	return f, nil
}

func (c *MemoryCatalog) AllFilms(ctx context.Context) ([]*core.Film, error) {
	out := make([]*core.Film, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.films[id])
	}
	return out, nil
}

func (c *MemoryCatalog) GenreNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return lookupNames(c.genreNames, ids), nil
}

func (c *MemoryCatalog) KeywordNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return lookupNames(c.keywordNames, ids), nil
}

func (c *MemoryCatalog) PersonNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return lookupNames(c.personNames, ids), nil
}

func lookupNames(table map[int64]string, ids []int64) map[int64]string {
	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if name, ok := table[id]; ok {
			out[id] = name
		}
	}
	return out
}

var _ core.Catalog = (*MemoryCatalog)(nil)
