package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/blendkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("candidate", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("bctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选过滤规则的解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：candidate.vote_count < 10 / candidate.popularity >= 5.0
//   - 逻辑：candidate.year < 1990 && candidate.vote_count < 50
//   - 标签：label.recall_source != null
//   - 请求参数：bctx.alpha > 0.5
//
// 示例：
//   - `candidate.vote_count < 10` → 过滤掉评价数过少的低质量影片
//   - `candidate.year < 1950` → 过滤掉过旧的影片
type Eval struct {
	cand *core.Candidate
	bctx *core.BlendContext
	env  *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(cand *core.Candidate, bctx *core.BlendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		cand: cand,
		bctx: bctx,
		env:  env,
	}
}

// Evaluate 解析并执行规则表达式，返回布尔结果。
//
// 注意：has(label.key) 可以用 label.key != null 替代
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 用户应该使用 label.key != null 来检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]any {
	labels := make(map[string]any)
	if e.cand != nil {
		for k, v := range e.cand.Labels {
			labels[k] = map[string]any{
				"value":  v.Value,
				"source": v.Source,
			}
		}
	}

	candidate := map[string]any{}
	if e.cand != nil && e.cand.Film != nil {
		f := e.cand.Film
		candidate = map[string]any{
			"id":         f.ID,
			"title":      f.Title,
			"year":       f.Year,
			"vote_count": f.VoteCount,
			"popularity": f.PopularityOrZero(),
			"combined":   e.cand.Combined,
			"score_a":    e.cand.ScoreA,
			"score_b":    e.cand.ScoreB,
		}
	}

	bctx := map[string]any{}
	if e.bctx != nil {
		bctx["caller_id"] = e.bctx.CallerID
		if req := e.bctx.Request; req != nil {
			bctx["film_a_id"] = req.FilmA
			bctx["film_b_id"] = req.FilmB
			bctx["alpha"] = req.Alpha
			bctx["limit"] = req.Limit
		}
		for k, v := range e.bctx.Params {
			bctx[k] = v
		}
	}

	return map[string]any{
		"candidate": candidate,
		"label":     labels,
		"bctx":      bctx,
	}
}
