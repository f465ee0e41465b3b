package oracle

import (
	"context"

	"github.com/rushteam/askrank/core"
)

// Funcs 把两个普通函数适配为 core.Oracle。Equivalent 为 nil 时视为"从不相当"。
type Funcs struct {
	Preferred  func(candidate, reference any) bool
	Equivalent func(candidate, reference any) bool
}

var _ core.Oracle = Funcs{}

func (f Funcs) AskPreferred(ctx context.Context, candidate, reference any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if f.Preferred == nil {
		return false, nil
	}
	return f.Preferred(candidate, reference), nil
}

func (f Funcs) AskEquivalent(ctx context.Context, candidate, reference any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if f.Equivalent == nil {
		return false, nil
	}
	return f.Equivalent(candidate, reference), nil
}
