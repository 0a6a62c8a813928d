package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
)

// EquipmentService 设备业务接口
type EquipmentService interface {
	List(ctx context.Context) ([]dto.EquipmentResponse, error)
	Create(ctx context.Context, req *dto.CreateEquipmentRequest, actor string) (*dto.EquipmentResponse, error)
}

type equipmentService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewEquipmentService 创建 EquipmentService 实例
func NewEquipmentService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) EquipmentService {
	return &equipmentService{repo: repo, notification: notification, logger: logger}
}

func (s *equipmentService) List(ctx context.Context) ([]dto.EquipmentResponse, error) {
	list, err := s.repo.Equipment.List(ctx)
	if err != nil {
		s.logger.Error("列出设备失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	counts, err := s.repo.Requirement.CountByEquipment(ctx)
	if err != nil {
		s.logger.Error("统计设备需求失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.EquipmentResponse, 0, len(list))
	for i := range list {
		resp := toEquipmentResponse(&list[i])
		resp.RequirementCount = counts[list[i].EquipmentID]
		result = append(result, *resp)
	}
	return result, nil
}

func (s *equipmentService) Create(ctx context.Context, req *dto.CreateEquipmentRequest, actor string) (*dto.EquipmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEquipmentNameRequired
	}
	if req.MaxCapaPerDay <= 0 {
		return nil, ErrInvalidCapacity
	}
	if req.OperationCost != nil && *req.OperationCost < 0 {
		return nil, ErrInvalidOperationCost
	}

	if _, err := s.repo.Equipment.GetByName(ctx, name); err == nil {
		return nil, ErrEquipmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询设备失败", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	equipment := &model.Equipment{
		Name:          name,
		MaxCapaPerDay: req.MaxCapaPerDay,
		Location:      trimOptional(req.Location),
		OperationCost: req.OperationCost,
	}
	if err := s.repo.Equipment.Create(ctx, equipment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEquipmentExists
		}
		s.logger.Error("创建设备失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.notification.NotifyRegistration(ctx, EntityEquipment, name, actor)
	return toEquipmentResponse(equipment), nil
}

func toEquipmentResponse(e *model.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:            e.EquipmentID,
		Name:          e.Name,
		MaxCapaPerDay: e.MaxCapaPerDay,
		Location:      e.Location,
		OperationCost: e.OperationCost,
		CreatedAt:     formatTime(e.CreatedAt),
	}
}
