package validator

import "strings"

// Requirement 描述一个必填约束：任意一个候选字段存在即满足
type Requirement []string

// Field 单字段必填
func Field(name string) Requirement {
	return Requirement{name}
}

// OneOf 多个候选字段中至少一个必填
func OneOf(names ...string) Requirement {
	return Requirement(names)
}

// Fields 将字段名列表转换为单字段约束
func Fields(names ...string) []Requirement {
	reqs := make([]Requirement, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, Field(name))
	}
	return reqs
}

// String 返回约束名称，多候选以 "|" 连接
func (r Requirement) String() string {
	return strings.Join(r, "|")
}
