package feast

import "context"

// Client 是 Feast Feature Store 的客户端接口（遵循 DDD 原则，高内聚低耦合）。
//
// blendkit 用它在打分前回填目录缺失的影片统计信号（热度、媒体评分等）：
// 目录是只读快照，统计类特征的新鲜值往往由离线任务物化到在线特征存储。
//
// 使用方式：
//   - 方式1：使用 GrpcClient（基于官方 SDK）
//   - 方式2：自行实现此接口（如 HTTP Feature Server）
//
// 参考：https://github.com/feast-dev/feast
type Client interface {
	// GetOnlineFeatures 获取在线特征（用于实时打分）
	//
	// 参数：
	//   - Features: 特征名称列表，例如 ["film_stats:popularity", "film_stats:critic_score"]
	//   - EntityRows: 实体行，例如 [{"film_id": "..."}]
	//
	// 返回按实体行对齐的特征向量；存储中没有的特征不会出现在向量里。
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["film_stats:popularity"]
	Features []string

	// EntityRows 实体行，例如 [{"film_id": "uuid-1"}, {"film_id": "uuid-2"}]
	EntityRows []map[string]any

	// Project 项目名称（可选，缺省取客户端配置）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，每个元素对应一个实体行
	FeatureVectors []FeatureVector
}

// FeatureVector 特征向量
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]any

	// EntityRow 对应的实体行
	EntityRow map[string]any
}

// Float64 按特征名取数值；特征缺失或非数值时 ok 为 false。
func (v FeatureVector) Float64(feature string) (float64, bool) {
	raw, ok := v.Values[feature]
	if !ok {
		return 0, false
	}
	switch val := raw.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}
