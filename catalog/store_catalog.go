package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rushteam/blendkit/core"
)

// Key 布局：摄取任务按此布局写入，目录侧只读。
//
//	<prefix>films           Hash: film_id -> JSON(core.Film)
//	<prefix>names:genre     Hash: genre_id -> name
//	<prefix>names:keyword   Hash: keyword_id -> name
//	<prefix>names:person    Hash: person_id -> name
const (
	keyFilms        = "films"
	keyGenreNames   = "names:genre"
	keyKeywordNames = "names:keyword"
	keyPersonNames  = "names:person"
)

// DefaultTimeout 是单次目录访问的默认有界超时。
const DefaultTimeout = 2 * time.Second

// StoreCatalog 是基于 core.KeyValueStore 的目录实现（Memory/Redis 均可）。
//
// 目录访问是打分链路中唯一的悬挂点：每次访问都带有界超时，
// 超时或后端故障统一映射为 core.ErrCatalogUnavailable（瞬态，可重试），
// 绝不降级为部分/空结果。
type StoreCatalog struct {
	// Store 后端存储（见 store 包）
	Store core.KeyValueStore

	// Prefix key 前缀（多租户/多目录共存时使用）
	Prefix string

	// Timeout 单次访问超时；<=0 取 DefaultTimeout
	Timeout time.Duration
}

// NewStoreCatalog 创建基于存储后端的目录。
func NewStoreCatalog(st core.KeyValueStore) *StoreCatalog {
	return &StoreCatalog{Store: st, Timeout: DefaultTimeout}
}

func (c *StoreCatalog) Name() string {
	if c.Store != nil {
		return "store:" + c.Store.Name()
	}
	return "store"
}

func (c *StoreCatalog) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *StoreCatalog) key(suffix string) string {
	return c.Prefix + suffix
}

func (c *StoreCatalog) GetFilm(ctx context.Context, id string) (*core.Film, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	raw, err := c.Store.HGet(ctx, c.key(keyFilms), id)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, core.ErrCatalogNotFound
		}
		return nil, core.ErrCatalogUnavailable
	}

	var film core.Film
	if err := json.Unmarshal(raw, &film); err != nil {
		return nil, core.ErrCatalogUnavailable
	}
	return &film, nil
}

func (c *StoreCatalog) AllFilms(ctx context.Context) ([]*core.Film, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	raw, err := c.Store.HGetAll(ctx, c.key(keyFilms))
	if err != nil {
		return nil, core.ErrCatalogUnavailable
	}

	out := make([]*core.Film, 0, len(raw))
	for _, data := range raw {
		var film core.Film
		if err := json.Unmarshal(data, &film); err != nil {
			// 单条损坏记录视为缺陷数据，跳过而不是整体失败
			continue
		}
		out = append(out, &film)
	}
	return out, nil
}

func (c *StoreCatalog) GenreNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return c.names(ctx, c.key(keyGenreNames), ids)
}

func (c *StoreCatalog) KeywordNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return c.names(ctx, c.key(keyKeywordNames), ids)
}

func (c *StoreCatalog) PersonNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return c.names(ctx, c.key(keyPersonNames), ids)
}

func (c *StoreCatalog) names(ctx context.Context, key string, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		raw, err := c.Store.HGet(ctx, key, strconv.FormatInt(id, 10))
		if err != nil {
			if core.IsStoreNotFound(err) {
				continue // 无法解析的 ID 不出现在结果里
			}
			return nil, core.ErrCatalogUnavailable
		}
		out[id] = string(raw)
	}
	return out, nil
}

var _ core.Catalog = (*StoreCatalog)(nil)

// SeedStore 把影片与名称表按 StoreCatalog 的 key 布局写入存储，
// 供测试与原型使用；生产环境由独立的摄取任务完成。
func SeedStore(
	ctx context.Context,
	st core.KeyValueStore,
	prefix string,
	films []*core.Film,
	genreNames, keywordNames, personNames map[int64]string,
) error {
	for _, f := range films {
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		if err := st.HSet(ctx, prefix+keyFilms, f.ID, data); err != nil {
			return err
		}
	}
	tables := []struct {
		key   string
		names map[int64]string
	}{
		{prefix + keyGenreNames, genreNames},
		{prefix + keyKeywordNames, keywordNames},
		{prefix + keyPersonNames, personNames},
	}
	for _, t := range tables {
		for id, name := range t.names {
			if err := st.HSet(ctx, t.key, strconv.FormatInt(id, 10), []byte(name)); err != nil {
				return err
			}
		}
	}
	return nil
}
