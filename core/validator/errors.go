package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type validationErrorsImpl struct {
	fieldErrors []FieldError
	message     string
}

func (ve *validationErrorsImpl) Error() string {
	return ve.message
}

func (ve *validationErrorsImpl) Errors() []FieldError {
	return ve.fieldErrors
}

func (ve *validationErrorsImpl) HasErrors() bool {
	return len(ve.fieldErrors) > 0
}

type fieldErrorImpl struct {
	fieldError validator.FieldError
	message    string
}

func (fe *fieldErrorImpl) Field() string {
	return fe.fieldError.Field()
}

func (fe *fieldErrorImpl) Tag() string {
	return fe.fieldError.Tag()
}

func (fe *fieldErrorImpl) Value() any {
	return fe.fieldError.Value()
}

func (fe *fieldErrorImpl) Message() string {
	return fe.message
}

// FieldNames 返回校验错误涉及的字段名
func FieldNames(err error) []string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ve.Errors()))
	for _, fe := range ve.Errors() {
		names = append(names, fe.Field())
	}
	return names
}

// ErrorsToString 将错误列表转换为字符串
func ErrorsToString(errors []FieldError, separator string) string {
	if separator == "" {
		separator = "; "
	}

	messages := make([]string, 0, len(errors))
	for _, err := range errors {
		messages = append(messages, err.Message())
	}
	return strings.Join(messages, separator)
}

// IsValidationError 检查是否为校验错误
func IsValidationError(err error) bool {
	_, ok := err.(ValidationErrors)
	return ok
}
