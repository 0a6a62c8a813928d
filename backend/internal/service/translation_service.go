package service

import (
	"context"
	"strings"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
)

// 单次批量请求的键数上限
const maxTranslationKeys = 500

// TranslationStore 翻译解析与写入，由 i18n.Translator 实现
type TranslationStore interface {
	Localizer
	Upsert(ctx context.Context, key string, lang i18n.Language, value string) error
}

// TranslationService 多语言业务接口
type TranslationService interface {
	// Get 批量解析，未找到的键映射为自身
	Get(ctx context.Context, req *dto.TranslationsRequest) (map[string]string, error)
	// Upsert 逐语言写入，返回每个语言的结果，nil 表示成功
	Upsert(ctx context.Context, req *dto.UpsertTranslationRequest) (map[i18n.Language]error, error)
}

type translationService struct {
	store TranslationStore
}

// NewTranslationService 创建 TranslationService 实例
func NewTranslationService(store TranslationStore) TranslationService {
	return &translationService{store: store}
}

func (s *translationService) Get(ctx context.Context, req *dto.TranslationsRequest) (map[string]string, error) {
	if req.Keys == nil {
		return nil, ErrTranslationKeysRequired
	}
	lang, ok := i18n.Parse(req.Language)
	if !ok {
		return nil, i18n.ErrInvalidLanguage
	}
	if len(req.Keys) > maxTranslationKeys {
		return nil, ErrTooManyKeys
	}
	return s.store.ResolveMany(ctx, req.Keys, lang), nil
}

func (s *translationService) Upsert(ctx context.Context, req *dto.UpsertTranslationRequest) (map[i18n.Language]error, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, i18n.ErrEmptyKey
	}

	values := map[i18n.Language]*string{
		i18n.Korean:  req.Values.Ko,
		i18n.Thai:    req.Values.Th,
		i18n.English: req.Values.En,
	}
	results := make(map[i18n.Language]error, len(values))
	for _, lang := range i18n.Supported {
		v := values[lang]
		if v == nil {
			continue
		}
		results[lang] = s.store.Upsert(ctx, key, lang, *v)
	}
	if len(results) == 0 {
		return nil, ErrTranslationValuesRequired
	}
	return results, nil
}
