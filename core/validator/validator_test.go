package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	AccountIdentifier string `validate:"required"`
	MerchantKey       string `validate:"required"`
	Signer            string `validate:"omitempty,oneof=hmac jwt"`
}

// TestValidatorCreation 测试校验器创建
func TestValidatorCreation(t *testing.T) {
	assert.NotNil(t, Validate)
	assert.NotNil(t, New(WithTagName("validate")))
}

// TestStruct 测试结构体校验
func TestStruct(t *testing.T) {
	v := New()

	err := v.Struct(&testSettings{AccountIdentifier: "1234567890", MerchantKey: "key"})
	assert.NoError(t, err)

	err = v.Struct(&testSettings{Signer: "rsa"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ElementsMatch(t, []string{"AccountIdentifier", "MerchantKey", "Signer"}, FieldNames(err))
	assert.Contains(t, err.Error(), "required")

	validationErr := err.(ValidationErrors)
	assert.True(t, validationErr.HasErrors())
	assert.NotEmpty(t, ErrorsToString(validationErr.Errors(), " | "))

	assert.Error(t, v.Struct(nil))
}

// TestMissing 测试必填字段扫描
func TestMissing(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		values   map[string]any
		required []Requirement
		want     []string
	}{
		{
			name:     "all present",
			values:   map[string]any{"payoption": "mm", "customerMobileNumber": 12345},
			required: Fields("payoption", "customerMobileNumber"),
			want:     nil,
		},
		{
			name:     "empty map reports every field in order",
			values:   map[string]any{},
			required: Fields("payoption", "paytoken", "customerName"),
			want:     []string{"payoption", "paytoken", "customerName"},
		},
		{
			name:     "blank string and zero number are missing",
			values:   map[string]any{"customerName": "   ", "customerMobileNumber": 0, "payoption": nil},
			required: Fields("customerName", "customerMobileNumber", "payoption"),
			want:     []string{"customerName", "customerMobileNumber", "payoption"},
		},
		{
			name:     "struct values count as present",
			values:   map[string]any{"amount": struct{ value int }{}},
			required: Fields("amount"),
			want:     nil,
		},
		{
			name:     "one of satisfied by any candidate",
			values:   map[string]any{"transactionId": "TX-1"},
			required: []Requirement{OneOf("orderCode", "payToken", "transactionId")},
			want:     nil,
		},
		{
			name:     "one of unsatisfied",
			values:   map[string]any{"orderCode": ""},
			required: []Requirement{OneOf("orderCode", "payToken", "transactionId")},
			want:     []string{"orderCode|payToken|transactionId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Missing(tt.values, tt.required...))
		})
	}
}

// TestValidateVar 测试单个变量校验
func TestValidateVar(t *testing.T) {
	validate := New().GetValidator()

	assert.NoError(t, validate.Var("iamovac@gmail.com", "email"))
	assert.Error(t, validate.Var("invalid-email", "email"))
	assert.Error(t, validate.Var("", "required"))
}
