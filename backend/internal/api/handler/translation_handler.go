package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// TranslationHandler 多语言模块 HTTP 处理器
type TranslationHandler struct {
	base
	translationSvc service.TranslationService
}

// NewTranslationHandler 创建 TranslationHandler
func NewTranslationHandler(translationSvc service.TranslationService, failer *response.Failer) *TranslationHandler {
	return &TranslationHandler{base: base{failer: failer}, translationSvc: translationSvc}
}

// Get 批量获取翻译，未找到的键原样返回
// POST /api/v1/translations，data 为 {key: text}
func (h *TranslationHandler) Get(c *gin.Context) {
	var req dto.TranslationsRequest
	if !h.bindOr(c, &req, service.ErrTranslationKeysRequired) {
		return
	}

	translations, err := h.translationSvc.Get(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, translations)
}

// Upsert 按键写入多个语言的翻译（管理员）
// PUT /api/v1/translations，data 为 {language: "ok" | 错误提示}
// 全部语言都失败时按第一个错误返回
func (h *TranslationHandler) Upsert(c *gin.Context) {
	var req dto.UpsertTranslationRequest
	if !h.bindOr(c, &req, i18n.ErrEmptyKey) {
		return
	}

	results, err := h.translationSvc.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make(map[string]string, len(results))
	var firstErr error
	for _, lang := range i18n.Supported {
		resErr, ok := results[lang]
		if !ok {
			continue
		}
		if resErr == nil {
			out[string(lang)] = upsertOK
			continue
		}
		if firstErr == nil {
			firstErr = resErr
		}
		out[string(lang)] = h.failer.Message(c, resErr)
	}
	if firstErr != nil && !anyOK(out) {
		h.fail(c, firstErr)
		return
	}
	response.OK(c, out)
}

// 单个语言写入成功时的结果值
const upsertOK = "ok"

func anyOK(results map[string]string) bool {
	for _, v := range results {
		if v == upsertOK {
			return true
		}
	}
	return false
}

// SetLanguage 保存界面语言到会话 Cookie
// PUT /api/v1/i18n/language
func (h *TranslationHandler) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if !h.bindOr(c, &req, i18n.ErrInvalidLanguage) {
		return
	}

	lang, ok := i18n.Parse(req.Language)
	if !ok {
		h.fail(c, i18n.ErrInvalidLanguage)
		return
	}
	if err := middleware.SaveLanguage(c, lang); err != nil {
		h.fail(c, apperrors.ErrInternal.Wrap(err))
		return
	}
	response.OK(c, gin.H{"language": lang})
}
