package desensitize

import (
	"fmt"
	"regexp"
	"sync/atomic"
)

// Rule 脱敏规则接口
type Rule interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	// Process 对字符串进行脱敏处理
	Process(s string) string
}

type toggle struct {
	disabled atomic.Bool
}

func (t *toggle) Enabled() bool {
	return !t.disabled.Load()
}

func (t *toggle) SetEnabled(enabled bool) {
	t.disabled.Store(!enabled)
}

// ContentRule 基于内容匹配的脱敏规则
type ContentRule struct {
	toggle
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewContentRule 创建基于内容匹配的脱敏规则
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name cannot be empty")
	}
	if pattern == "" {
		return nil, fmt.Errorf("pattern cannot be empty")
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern '%s': %w", pattern, err)
	}

	return &ContentRule{
		name:        name,
		pattern:     regex,
		replacement: replacement,
	}, nil
}

// MustNewContentRule 创建规则，失败则 panic（用于内置规则）
func MustNewContentRule(name, pattern, replacement string) *ContentRule {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *ContentRule) Name() string {
	return r.name
}

func (r *ContentRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule 基于 JSON 字段名匹配的脱敏规则，字段名大小写不敏感
type FieldRule struct {
	toggle
	name        string
	replacement string
	jsonPattern *regexp.Regexp
}

// NewFieldRule 创建基于字段名匹配的脱敏规则，字符串值整体替换为 replacement
func NewFieldRule(name, fieldName, replacement string) (*FieldRule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name cannot be empty")
	}
	if fieldName == "" {
		return nil, fmt.Errorf("field name cannot be empty")
	}

	jsonPattern, err := regexp.Compile(fmt.Sprintf(`(?i)("%s"\s*:\s*)"(?:[^"\\]|\\.)*"`, regexp.QuoteMeta(fieldName)))
	if err != nil {
		return nil, fmt.Errorf("failed to compile json pattern: %w", err)
	}

	return &FieldRule{
		name:        name,
		replacement: replacement,
		jsonPattern: jsonPattern,
	}, nil
}

// MustNewFieldRule 创建规则，失败则 panic
func MustNewFieldRule(name, fieldName, replacement string) *FieldRule {
	rule, err := NewFieldRule(name, fieldName, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *FieldRule) Name() string {
	return r.name
}

func (r *FieldRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.jsonPattern.ReplaceAllString(s, `${1}"`+r.replacement+`"`)
}
