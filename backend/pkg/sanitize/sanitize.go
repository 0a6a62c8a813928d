// Package sanitize 用户输入文本清洗
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer 去除 HTML 标签，只保留纯文本
// bluemonday.Policy 可并发使用
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New 创建 Sanitizer（严格策略，不允许任何标签）
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text 清除标签并去除首尾空白
// StrictPolicy 会转义实体，这里还原为纯文本，输出只用于 JSON 与外部通知
func (s *Sanitizer) Text(raw string) string {
	cleaned := s.policy.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
