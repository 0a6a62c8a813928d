// Package notify 外部通知（LINE Notify 风格 Webhook）
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/doyensec/safeurl"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/config"
)

// placeholderToken 示例配置中的占位 token，视为未配置
const placeholderToken = "your_line_notify_token_here"

// Notifier 外部通知发送接口
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// New 根据配置创建 Notifier
// token 未配置时返回只写日志的实现
func New(cfg *config.NotifyConfig, logger *zap.Logger) Notifier {
	if cfg.LineToken == "" || cfg.LineToken == placeholderToken {
		logger.Info("未配置通知 token，外部通知仅记录日志")
		return &LogNotifier{logger: logger}
	}

	safeCfg := safeurl.GetConfigBuilder().
		SetTimeout(cfg.Timeout).
		SetAllowedSchemes("https").
		SetAllowedPorts(443).
		Build()

	return NewLineNotifier(cfg.Endpoint, cfg.LineToken, safeurl.Client(safeCfg).Client, logger)
}

// LogNotifier 只记录日志
type LogNotifier struct {
	logger *zap.Logger
}

// Send 记录通知内容，始终返回 nil
func (n *LogNotifier) Send(_ context.Context, message string) error {
	n.logger.Info("通知（未发送）", zap.String("message", message))
	return nil
}

// LineNotifier 以表单形式 POST message 字段
type LineNotifier struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *zap.Logger
}

// NewLineNotifier 创建 LineNotifier
func NewLineNotifier(endpoint, token string, client *http.Client, logger *zap.Logger) *LineNotifier {
	return &LineNotifier{endpoint: endpoint, token: token, client: client, logger: logger}
}

// Send 发送通知，非 2xx 视为失败
func (n *LineNotifier) Send(ctx context.Context, message string) error {
	form := url.Values{"message": {message}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("构造通知请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送通知失败: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("通知服务返回状态码 %d", resp.StatusCode)
	}

	n.logger.Debug("通知已发送", zap.String("message", message))
	return nil
}
