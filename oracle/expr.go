package oracle

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/askrank/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// getCELEnv 获取或创建 CEL 环境：candidate / reference 两个动态类型变量
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("candidate", cel.DynType),
			cel.Variable("reference", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// ExprOracle 用 CEL (Common Expression Language) 表达式代替人工回答，
// 适用于无人值守排序、批处理与确定性测试。
//
// 表达式可访问 candidate 与 reference（原始物品），必须返回布尔值：
//   - preferred：candidate 是否优于 reference，例如 `candidate.size() > reference.size()`
//   - equivalent：二者是否大致相当，例如 `candidate.size() == reference.size()`
//
// equivalent 为空时视为"从不相当"。
type ExprOracle struct {
	preferred  cel.Program
	equivalent cel.Program
}

var _ core.Oracle = (*ExprOracle)(nil)

// NewExprOracle 编译表达式。preferred 不能为空。
func NewExprOracle(preferred, equivalent string) (*ExprOracle, error) {
	if preferred == "" {
		return nil, core.NewDomainError(core.ModuleOracle, core.ErrorCodeInvalidInput, "preferred expression is required")
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	o := &ExprOracle{}
	if o.preferred, err = compileBool(env, preferred); err != nil {
		return nil, fmt.Errorf("preferred expression: %w", err)
	}
	if equivalent != "" {
		if o.equivalent, err = compileBool(env, equivalent); err != nil {
			return nil, fmt.Errorf("equivalent expression: %w", err)
		}
	}
	return o, nil
}

func compileBool(env *cel.Env, expr string) (cel.Program, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return prg, nil
}

func (o *ExprOracle) AskPreferred(ctx context.Context, candidate, reference any) (bool, error) {
	return eval(ctx, o.preferred, candidate, reference)
}

func (o *ExprOracle) AskEquivalent(ctx context.Context, candidate, reference any) (bool, error) {
	if o.equivalent == nil {
		return false, nil
	}
	return eval(ctx, o.equivalent, candidate, reference)
}

func eval(ctx context.Context, prg cel.Program, candidate, reference any) (bool, error) {
	out, _, err := prg.ContextEval(ctx, map[string]any{
		"candidate": candidate,
		"reference": reference,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}
