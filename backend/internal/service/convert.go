package service

import (
	"strings"
	"time"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(dto.TimeLayout)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}

// parseDate 解析 YYYY-MM-DD，nil 或空串返回 nil
func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// trimOptional 去除空白，结果为空时返回 nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
