package core

import "context"

// Oracle 是外部裁决者（通常是人）的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由 oracle 包实现（终端交互、CEL 表达式、函数）
//   - 每次调用都是阻塞的同步请求/应答，排序流程在应答前整体挂起
//   - 不重试：无法识别的应答由实现归一化为 false
//
// error 仅用于基础设施失败（输入流关闭、表达式执行失败、ctx 取消），
// 出错后整个排序会话作废。
type Oracle interface {
	// AskPreferred 询问 candidate 是否优于 reference
	AskPreferred(ctx context.Context, candidate, reference any) (bool, error)

	// AskEquivalent 询问 candidate 与 reference 是否大致相当
	AskEquivalent(ctx context.Context, candidate, reference any) (bool, error)
}
