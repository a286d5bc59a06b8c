package validator

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Validator 定义校验器接口
type Validator interface {
	// Struct 校验结构体
	Struct(s any) error

	// StructCtx 带上下文校验结构体
	StructCtx(ctx context.Context, s any) error

	// Missing 返回 values 中缺失（零值）的必填字段名
	Missing(values map[string]any, required ...Requirement) []string

	// GetValidator 获取底层的validator实例
	GetValidator() *validator.Validate
}

// ValidationErrors 校验错误接口
type ValidationErrors interface {
	error
	Errors() []FieldError
	HasErrors() bool
}

// FieldError 字段错误接口
type FieldError interface {
	Field() string
	Tag() string
	Value() any
	Message() string
}

// ValidationOption 校验器选项
type ValidationOption func(*validatorImpl)

// WithTagName 设置校验标签名
func WithTagName(tagName string) ValidationOption {
	return func(v *validatorImpl) {
		v.validator.SetTagName(tagName)
	}
}
