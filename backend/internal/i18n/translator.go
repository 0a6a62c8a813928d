// Package i18n 多语言文本解析
//
// Translator 在进程内缓存 (language, key) → value，缓存未命中时回源数据库，
// 查不到的键原样返回。缓存启动时预置内置翻译，Warm 之后数据库中的值覆盖内置值。
package i18n

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/sanitize"
)

// 后台回源单次超时
const fetchTimeout = 3 * time.Second

var (
	ErrInvalidLanguage = apperrors.New(apperrors.KindValidation, 14001, "error_invalid_language", "지원하지 않는 언어입니다")
	ErrEmptyKey        = apperrors.New(apperrors.KindValidation, 14002, "error_translation_key_required", "번역 키를 입력하세요")
	ErrEmptyValue      = apperrors.New(apperrors.KindValidation, 14003, "error_translation_value_required", "번역 값을 입력하세요")
)

// Store 翻译持久化
type Store interface {
	GetMany(ctx context.Context, keys []string, language string) ([]model.Translation, error)
	Upsert(ctx context.Context, t *model.Translation) error
	ListAll(ctx context.Context) ([]model.Translation, error)
}

// Translator 翻译解析器，全局共享，可并发使用
type Translator struct {
	store     Store
	logger    *zap.Logger
	metrics   metrics.Recorder
	sanitizer *sanitize.Sanitizer

	mu    sync.RWMutex
	cache map[Language]map[string]string

	group singleflight.Group

	// 后台回源的生命周期
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	closeMu  sync.Mutex
	closed   bool
	inflight map[string]struct{}
}

// New 创建 Translator，缓存预置内置翻译
func New(store Store, logger *zap.Logger, rec metrics.Recorder) (*Translator, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = metrics.Nop{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Translator{
		store:     store,
		logger:    logger,
		metrics:   rec,
		sanitizer: sanitize.New(),
		cache:     defaults,
		ctx:       ctx,
		cancel:    cancel,
		inflight:  make(map[string]struct{}),
	}, nil
}

// Warm 载入数据库中的全部翻译，返回载入条数
// 失败只记录日志，缓存保持内置值
func (t *Translator) Warm(ctx context.Context) int {
	list, err := t.store.ListAll(ctx)
	if err != nil {
		t.logger.Warn("预热翻译缓存失败", zap.Error(err))
		t.metrics.RecordTranslationFetchFailure()
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, tr := range list {
		lang, ok := Parse(tr.Language)
		if !ok {
			continue
		}
		t.cache[lang][tr.Key] = tr.Value
		n++
	}
	t.logger.Info("翻译缓存预热完成", zap.Int("count", n))
	return n
}

// lookup 只读缓存
func (t *Translator) lookup(lang Language, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.cache[lang][key]
	return v, ok
}

func (t *Translator) put(lang Language, key, value string) {
	t.mu.Lock()
	t.cache[lang][key] = value
	t.mu.Unlock()
}

// Resolve 返回 key 在 lang 下的文本，缓存未命中时同步回源
// 查不到、语言不支持或数据库出错时返回 key 本身
func (t *Translator) Resolve(ctx context.Context, key string, lang Language) string {
	if key == "" {
		return key
	}
	if _, ok := Parse(string(lang)); !ok {
		return key
	}
	if v, ok := t.lookup(lang, key); ok {
		t.metrics.RecordTranslationCache(true)
		return v
	}
	t.metrics.RecordTranslationCache(false)
	return t.load(ctx, key, lang)
}

// load 合并同键并发回源，不计命中统计
func (t *Translator) load(ctx context.Context, key string, lang Language) string {
	v, _, _ := t.group.Do(string(lang)+":"+key, func() (interface{}, error) {
		if v, ok := t.lookup(lang, key); ok {
			return v, nil
		}
		return t.fetch(ctx, key, lang), nil
	})
	return v.(string)
}

// fetch 单键回源，命中则写入缓存
func (t *Translator) fetch(ctx context.Context, key string, lang Language) string {
	list, err := t.store.GetMany(ctx, []string{key}, string(lang))
	if err != nil {
		t.logger.Warn("读取翻译失败",
			zap.String("key", key),
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		t.metrics.RecordTranslationFetchFailure()
		return key
	}
	for _, tr := range list {
		if tr.Key == key {
			t.put(lang, key, tr.Value)
			return tr.Value
		}
	}
	return key
}

// T 非阻塞查询，渲染时使用
// 命中返回文本；未命中立即返回 key 作为占位，并在后台回源，之后的调用即可命中
func (t *Translator) T(lang Language, key string) string {
	if key == "" {
		return key
	}
	if _, ok := Parse(string(lang)); !ok {
		return key
	}
	if v, ok := t.lookup(lang, key); ok {
		t.metrics.RecordTranslationCache(true)
		return v
	}
	t.metrics.RecordTranslationCache(false)

	flight := string(lang) + ":" + key
	// 未命中已在此计数，后台回源不再计
	t.background(flight, func(ctx context.Context) {
		t.load(ctx, key, lang)
	})
	return key
}

// Prefetch 后台批量回源
func (t *Translator) Prefetch(keys []string, lang Language) {
	if len(keys) == 0 {
		return
	}
	if _, ok := Parse(string(lang)); !ok {
		return
	}
	flight := string(lang) + ":" + strings.Join(keys, ",")
	t.background(flight, func(ctx context.Context) {
		t.ResolveMany(ctx, keys, lang)
	})
}

// background 启动受 Close 约束的后台任务，同一 flight 同时只运行一个
func (t *Translator) background(flight string, fn func(ctx context.Context)) {
	t.closeMu.Lock()
	if t.closed {
		t.closeMu.Unlock()
		return
	}
	if _, running := t.inflight[flight]; running {
		t.closeMu.Unlock()
		return
	}
	t.inflight[flight] = struct{}{}
	t.wg.Add(1)
	t.closeMu.Unlock()

	go func() {
		defer t.wg.Done()
		defer func() {
			t.closeMu.Lock()
			delete(t.inflight, flight)
			t.closeMu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(t.ctx, fetchTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// ResolveMany 批量解析，未缓存的键一次性回源
// 重复与空键被忽略；查不到的键映射为自身
func (t *Translator) ResolveMany(ctx context.Context, keys []string, lang Language) map[string]string {
	out := make(map[string]string, len(keys))
	if _, ok := Parse(string(lang)); !ok {
		for _, k := range keys {
			if k != "" {
				out[k] = k
			}
		}
		return out
	}

	var missing []string
	t.mu.RLock()
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, seen := out[k]; seen {
			continue
		}
		if v, ok := t.cache[lang][k]; ok {
			out[k] = v
			continue
		}
		out[k] = k
		missing = append(missing, k)
	}
	t.mu.RUnlock()

	for k := range out {
		t.metrics.RecordTranslationCache(!contains(missing, k))
	}
	if len(missing) == 0 {
		return out
	}

	list, err := t.store.GetMany(ctx, missing, string(lang))
	if err != nil {
		t.logger.Warn("批量读取翻译失败",
			zap.Int("keys", len(missing)),
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		t.metrics.RecordTranslationFetchFailure()
		return out
	}

	t.mu.Lock()
	for _, tr := range list {
		if _, wanted := out[tr.Key]; !wanted {
			continue
		}
		t.cache[lang][tr.Key] = tr.Value
		out[tr.Key] = tr.Value
	}
	t.mu.Unlock()

	return out
}

// Upsert 写入翻译并同步更新缓存
// value 会去除 HTML；写库失败时缓存保持不变
func (t *Translator) Upsert(ctx context.Context, key string, lang Language, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	if _, ok := Parse(string(lang)); !ok {
		return ErrInvalidLanguage
	}
	value = t.sanitizer.Text(value)
	if value == "" {
		return ErrEmptyValue
	}

	if err := t.store.Upsert(ctx, &model.Translation{Key: key, Language: string(lang), Value: value}); err != nil {
		t.logger.Error("写入翻译失败", zap.String("key", key), zap.String("language", string(lang)), zap.Error(err))
		return apperrors.ErrInternal.Wrap(err)
	}

	t.put(lang, key, value)
	return nil
}

// Wait 等待当前全部后台回源结束，调用方需保证此时没有并发的 T 调用
func (t *Translator) Wait() {
	t.wg.Wait()
}

// Close 取消后台回源并等待退出，之后 T 不再触发回源
func (t *Translator) Close() {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	t.cancel()
	t.wg.Wait()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
