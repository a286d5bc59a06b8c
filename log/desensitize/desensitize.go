package desensitize

import (
	"slices"
	"sync"
)

// Hook 按添加顺序执行的脱敏规则集合
type Hook struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewHook 创建新的脱敏钩子
func NewHook() *Hook {
	return &Hook{}
}

// AddRule 添加规则，同名规则被替换
func (h *Hook) AddRule(rule Rule) {
	if rule == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if i := h.index(rule.Name()); i >= 0 {
		h.rules[i] = rule
		return
	}
	h.rules = append(h.rules, rule)
}

// AddContentRule 添加基于内容匹配的脱敏规则
func (h *Hook) AddContentRule(name, pattern, replacement string) error {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddFieldRule 添加基于字段名匹配的脱敏规则
func (h *Hook) AddFieldRule(name, fieldName, replacement string) error {
	rule, err := NewFieldRule(name, fieldName, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddBuiltin 添加内置规则
func (h *Hook) AddBuiltin(rules ...Rule) {
	for _, rule := range rules {
		h.AddRule(rule)
	}
}

// RemoveRule 移除规则
func (h *Hook) RemoveRule(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.index(name)
	if i < 0 {
		return false
	}
	h.rules = slices.Delete(h.rules, i, i+1)
	return true
}

// GetRule 获取指定规则
func (h *Hook) GetRule(name string) (Rule, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i := h.index(name); i >= 0 {
		return h.rules[i], true
	}
	return nil, false
}

// GetRules 列出所有规则名称
func (h *Hook) GetRules() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.rules))
	for _, r := range h.rules {
		names = append(names, r.Name())
	}
	return names
}

// RuleCount 返回规则数量
func (h *Hook) RuleCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rules)
}

// Desensitize 对字符串进行脱敏处理
func (h *Hook) Desensitize(s string) string {
	if s == "" {
		return s
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, rule := range h.rules {
		if rule.Enabled() {
			s = rule.Process(s)
		}
	}
	return s
}

// index must be called with h.mu held.
func (h *Hook) index(name string) int {
	return slices.IndexFunc(h.rules, func(r Rule) bool { return r.Name() == name })
}
