package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/notify"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/sanitize"
)

// 通知列表条数
const recentNotificationLimit = 20

// 注册通知中的实体名称
const (
	EntityCustomer  = "고객"
	EntityProduct   = "제품"
	EntityProcess   = "공정"
	EntityEquipment = "설비"
	EntityMaterial  = "원자재"
	EntityUser      = "사용자"
)

// 出货状态的韩文名称，用于状态变更通知
var shippingStatusLabels = map[string]string{
	model.ShippingPreparing: "준비중",
	model.ShippingInTransit: "운송중",
	model.ShippingArrived:   "도착",
	model.ShippingDelayed:   "지연",
}

// NotificationService 通知业务接口
type NotificationService interface {
	List(ctx context.Context) ([]dto.NotificationResponse, error)
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)

	// NotifyRegistration 新实体注册通知，actor 为空时使用匿名文案
	NotifyRegistration(ctx context.Context, entity, name, actor string)
	// NotifyStatusChange 出货状态变更通知
	NotifyStatusChange(ctx context.Context, productName, status string)
}

type notificationService struct {
	repo      *repository.Repository
	notifier  notify.Notifier
	metrics   metrics.Recorder
	sanitizer *sanitize.Sanitizer
	logger    *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(
	repo *repository.Repository,
	notifier notify.Notifier,
	rec metrics.Recorder,
	logger *zap.Logger,
) NotificationService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &notificationService{
		repo:      repo,
		notifier:  notifier,
		metrics:   rec,
		sanitizer: sanitize.New(),
		logger:    logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *notificationService) List(ctx context.Context) ([]dto.NotificationResponse, error) {
	list, err := s.repo.Notification.ListRecent(ctx, recentNotificationLimit)
	if err != nil {
		s.logger.Error("查询通知失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.NotificationResponse, 0, len(list))
	for i := range list {
		result = append(result, toNotificationResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	message := s.sanitizer.Text(req.Message)
	if message == "" {
		return nil, ErrNotificationMessageRequired
	}

	typ := strings.TrimSpace(req.Type)
	if typ == "" {
		typ = model.NotificationInfo
	}
	if !model.ValidNotificationType(typ) {
		return nil, ErrInvalidNotificationType
	}

	n := &model.Notification{Message: message, Type: typ}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Error("创建通知失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	resp := toNotificationResponse(n)
	return &resp, nil
}

// ────────────────────── 业务事件通知 ──────────────────────

func (s *notificationService) NotifyRegistration(ctx context.Context, entity, name, actor string) {
	s.emit(ctx, RegistrationMessage(entity, name, actor))
}

func (s *notificationService) NotifyStatusChange(ctx context.Context, productName, status string) {
	s.emit(ctx, StatusChangeMessage(productName, status))
}

// emit 写入通知表并转发到 Webhook，任何失败只记录日志
func (s *notificationService) emit(ctx context.Context, message string) {
	n := &model.Notification{Message: message, Type: model.NotificationSuccess}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Warn("保存通知失败", zap.String("message", message), zap.Error(err))
	}

	if err := s.notifier.Send(ctx, message); err != nil {
		s.metrics.RecordNotification(false)
		s.logger.Warn("发送通知失败", zap.String("message", message), zap.Error(err))
		return
	}
	s.metrics.RecordNotification(true)
}

// RegistrationMessage 生成注册通知文案
func RegistrationMessage(entity, name, actor string) string {
	if actor != "" {
		return fmt.Sprintf("🆕 %s님이 새로운 %s를 등록했습니다: %s", actor, entity, name)
	}
	return fmt.Sprintf("🆕 새로운 %s가 등록되었습니다: %s", entity, name)
}

// StatusChangeMessage 生成出货状态变更文案
func StatusChangeMessage(productName, status string) string {
	label, ok := shippingStatusLabels[status]
	if !ok {
		label = status
	}
	return fmt.Sprintf("📦 제품 상태 변경: %s → %s", productName, label)
}

func toNotificationResponse(n *model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.NotificationID,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: formatTime(n.CreatedAt),
	}
}
