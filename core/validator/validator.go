package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type validatorImpl struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Validate 全局校验器实例
var (
	Validate Validator
	once     sync.Once
)

func init() {
	once.Do(func() {
		Validate = New()
	})
}

// New 创建新的校验器实例
func New(opts ...ValidationOption) Validator {
	v := &validatorImpl{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	if trans, found := uni.GetTranslator("en"); found {
		v.translator = trans
		_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Struct 校验结构体
func (v *validatorImpl) Struct(s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translateError(v.validator.Struct(s))
}

// StructCtx 带上下文校验结构体
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translateError(v.validator.StructCtx(ctx, s))
}

// Missing 按约束顺序返回所有未满足的约束名称
func (v *validatorImpl) Missing(values map[string]any, required ...Requirement) []string {
	var missing []string
	for _, req := range required {
		if !v.satisfied(values, req) {
			missing = append(missing, req.String())
		}
	}
	return missing
}

func (v *validatorImpl) satisfied(values map[string]any, req Requirement) bool {
	for _, name := range req {
		value, ok := values[name]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString {
			value = strings.TrimSpace(s)
		}
		// structs such as decimal amounts count as present once set
		if reflect.Indirect(reflect.ValueOf(value)).Kind() == reflect.Struct {
			return true
		}
		if v.validator.Var(value, "required") == nil {
			return true
		}
	}
	return false
}

// GetValidator 获取底层的validator实例
func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

func (v *validatorImpl) translateError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || v.translator == nil {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldError := &fieldErrorImpl{
			fieldError: fe,
			message:    fe.Translate(v.translator),
		}
		fieldErrors = append(fieldErrors, fieldError)
		messages = append(messages, fieldError.message)
	}

	return &validationErrorsImpl{
		fieldErrors: fieldErrors,
		message:     strings.Join(messages, "; "),
	}
}
