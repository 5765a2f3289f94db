package blend

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rushteam/blendkit/core"
	"github.com/rushteam/blendkit/explain"
	"github.com/rushteam/blendkit/filter"
	"github.com/rushteam/blendkit/pipeline"
	"github.com/rushteam/blendkit/rank"
	"github.com/rushteam/blendkit/recall"
	"github.com/rushteam/blendkit/rerank"
	"github.com/rushteam/blendkit/similarity"
)

// Service 是混搭推荐的引擎入口：校验请求、执行 Pipeline、装配响应。
//
// 引擎本身不做认证，只要求调用方已通过外部网关认证（CallerID 非空）；
// 未认证的请求在进入任何业务逻辑之前被拒绝。
//
// Service 不持有跨请求状态，单个实例可被多个 goroutine 并发调用。
type Service struct {
	catalog   core.Catalog
	validator *Validator
	pipe      *pipeline.Pipeline
	logger    zerolog.Logger
}

// Option 配置 Service。
type Option func(*Service)

// WithPipeline 替换默认 Pipeline（例如从 YAML 配置构建的链路）。
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(s *Service) { s.pipe = p }
}

// WithLogger 设置结构化日志。
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService 创建引擎入口。默认 Pipeline 为标准五段链路：
//
//	recall.pool -> filter(seed) -> rank.blend -> rerank.topn -> explain.blend
func NewService(catalog core.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:   catalog,
		validator: &Validator{Catalog: catalog},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pipe == nil {
		s.pipe = defaultPipeline(catalog, s.logger)
	}
	return s
}

func defaultPipeline(catalog core.Catalog, logger zerolog.Logger) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&recall.CandidatePool{Catalog: catalog},
			&filter.FilterNode{Filters: []filter.Filter{&filter.SeedFilter{}}},
			&rank.BlendNode{
				Similarity: similarity.NewEngine(),
				Logger:     logger,
			},
			&rerank.TopNNode{},
			&explain.Builder{Catalog: catalog},
		},
	}
}

// Blend 执行一次混搭请求。
//
// callerID 为外部认证网关填入的调用方标识，为空直接拒绝。
// 候选池为空时返回空结果而非错误；上下文取消时整个请求失败，
// 绝不返回部分结果。
func (s *Service) Blend(ctx context.Context, callerID string, raw RawParams) (*Response, error) {
	if callerID == "" {
		return nil, core.ErrUnauthenticated
	}

	req, seedA, seedB, err := s.validator.Validate(ctx, raw)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("film_a_id", raw.FilmA).
			Str("film_b_id", raw.FilmB).
			Msg("blend request rejected")
		return nil, err
	}

	bctx := &core.BlendContext{
		CallerID: callerID,
		Request:  req,
		SeedA:    seedA,
		SeedB:    seedB,
	}

	cands, err := s.pipe.Run(ctx, bctx, nil)
	if err != nil {
		if core.GetDomainError(err) != nil {
			return nil, err
		}
		// 召回期的目录故障统一映射为可重试错误
		s.logger.Error().Err(err).Str("caller_id", callerID).Msg("blend pipeline failed")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, core.ErrCatalogUnavailable
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Str("film_a_id", req.FilmA).
		Str("film_b_id", req.FilmB).
		Float64("alpha", req.Alpha).
		Int("results", len(cands)).
		Msg("blend request served")

	return buildResponse(req, cands), nil
}
