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

// MaterialService 原材料业务接口
type MaterialService interface {
	List(ctx context.Context) ([]dto.MaterialResponse, error)
	Create(ctx context.Context, req *dto.CreateMaterialRequest, actor string) (*dto.MaterialResponse, error)
}

type materialService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewMaterialService 创建 MaterialService 实例
func NewMaterialService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) MaterialService {
	return &materialService{repo: repo, notification: notification, logger: logger}
}

func (s *materialService) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := s.repo.Material.List(ctx)
	if err != nil {
		s.logger.Error("列出原材料失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	counts, err := s.repo.Requirement.CountByMaterial(ctx)
	if err != nil {
		s.logger.Error("统计原材料需求失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.MaterialResponse, 0, len(list))
	for i := range list {
		resp := toMaterialResponse(&list[i])
		resp.RequirementCount = counts[list[i].MaterialID]
		result = append(result, *resp)
	}
	return result, nil
}

func (s *materialService) Create(ctx context.Context, req *dto.CreateMaterialRequest, actor string) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMaterialNameRequired
	}
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		return nil, ErrMaterialUnitRequired
	}
	if req.Cost <= 0 {
		return nil, ErrInvalidMaterialCost
	}

	if _, err := s.repo.Material.GetByName(ctx, name); err == nil {
		return nil, ErrMaterialExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询原材料失败", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	material := &model.RawMaterial{
		Name:     name,
		Unit:     unit,
		Cost:     req.Cost,
		Supplier: trimOptional(req.Supplier),
	}
	if err := s.repo.Material.Create(ctx, material); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMaterialExists
		}
		s.logger.Error("创建原材料失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.notification.NotifyRegistration(ctx, EntityMaterial, name, actor)
	return toMaterialResponse(material), nil
}

func toMaterialResponse(m *model.RawMaterial) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:        m.MaterialID,
		Name:      m.Name,
		Unit:      m.Unit,
		Cost:      m.Cost,
		Supplier:  m.Supplier,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
