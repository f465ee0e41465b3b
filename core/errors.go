package core

import "errors"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX），可穿透 fmt.Errorf("%w") 包装
//
// 使用场景：
//   - 配置错误：同一会话中 caching 设置不一致（CONFIGURATION）
//   - 可变性错误：开启缓存时传入了可变对象（MUTABLE_ITEM）
//   - 一致性错误：关系缓存的细化与已有关系冲突（INCONSISTENT_RELATION），属于逻辑缺陷
//
// 所有 DomainError 都是致命的：不会重试，出错后整个排序会话作废。
type DomainError struct {
	Code    string // 错误代码（如 "CONFIGURATION", "MUTABLE_ITEM"）
	Message string // 错误消息
	Module  string // 模块名称（如 "compare", "ranker"）
}

func (e *DomainError) Error() string {
	return e.Module + ": " + e.Message
}

// IsDomainError 检查错误链中是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链中的 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeConfiguration = "CONFIGURATION"         // 会话配置冲突（如 caching 不一致）
	ErrorCodeMutability    = "MUTABLE_ITEM"          // 开启缓存时物品可能可变
	ErrorCodeConsistency   = "INCONSISTENT_RELATION" // 关系代数内部矛盾
	ErrorCodeInvalidInput  = "INVALID_INPUT"         // 输入无效
)

// 模块名称常量
const (
	ModuleCompare  = "compare"
	ModuleRanker   = "ranker"
	ModuleOracle   = "oracle"
	ModulePipeline = "pipeline"
	ModuleConfig   = "config"
)

// NewConfigurationError 创建 CONFIGURATION 错误。
func NewConfigurationError(module, message string) *DomainError {
	return NewDomainError(module, ErrorCodeConfiguration, message)
}

// NewMutabilityError 创建 MUTABLE_ITEM 错误。
func NewMutabilityError(module, message string) *DomainError {
	return NewDomainError(module, ErrorCodeMutability, message)
}

// NewConsistencyError 创建 INCONSISTENT_RELATION 错误。
func NewConsistencyError(module, message string) *DomainError {
	return NewDomainError(module, ErrorCodeConsistency, message)
}

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsConfigurationError 检查错误是否为 CONFIGURATION
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrorCodeConfiguration)
}

// IsMutabilityError 检查错误是否为 MUTABLE_ITEM
func IsMutabilityError(err error) bool {
	return hasCode(err, ErrorCodeMutability)
}

// IsConsistencyError 检查错误是否为 INCONSISTENT_RELATION
func IsConsistencyError(err error) bool {
	return hasCode(err, ErrorCodeConsistency)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}
