package core

import "context"

// Catalog 是只读影片目录的领域接口（Catalog Reader）。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（catalog）实现
//   - 引擎只读取，目录的写入/刷新由进程外的摄取任务负责
//   - 必须支持无锁并发读：backing 数据在进程生命周期内不可变
//
// 实现：
//   - catalog.MemoryCatalog：不可变内存快照，测试/原型/小目录
//   - catalog.StoreCatalog：基于 core.Store（Memory/Redis）的生产实现，
//     带有界超时，超时/故障映射为 ErrCatalogUnavailable
type Catalog interface {
	// Name 返回目录后端名称（用于日志/监控）
	Name() string

	// GetFilm 按 ID 读取影片；不存在时返回 ErrCatalogNotFound
	GetFilm(ctx context.Context, id string) (*Film, error)

	// AllFilms 返回目录中的全部影片（候选池的来源）
	AllFilms(ctx context.Context) ([]*Film, error)

	// GenreNames 批量解析类型名称；无法解析的 ID 不出现在结果中
	GenreNames(ctx context.Context, ids []int64) (map[int64]string, error)

	// KeywordNames 批量解析关键词名称
	KeywordNames(ctx context.Context, ids []int64) (map[int64]string, error)

	// PersonNames 批量解析影人名称
	PersonNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
