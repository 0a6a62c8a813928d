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

// RequirementService 生产需求业务接口
type RequirementService interface {
	List(ctx context.Context) ([]dto.RequirementResponse, error)
	Create(ctx context.Context, req *dto.CreateRequirementRequest) (*dto.RequirementResponse, error)
}

type requirementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRequirementService 创建 RequirementService 实例
func NewRequirementService(repo *repository.Repository, logger *zap.Logger) RequirementService {
	return &requirementService{repo: repo, logger: logger}
}

func (s *requirementService) List(ctx context.Context) ([]dto.RequirementResponse, error) {
	list, err := s.repo.Requirement.List(ctx)
	if err != nil {
		s.logger.Error("列出生产需求失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.RequirementResponse, 0, len(list))
	for i := range list {
		result = append(result, *toRequirementResponse(&list[i]))
	}
	return result, nil
}

func (s *requirementService) Create(ctx context.Context, req *dto.CreateRequirementRequest) (*dto.RequirementResponse, error) {
	quantity := clean(req.MaterialQuantity.Float64())
	production := clean(req.DailyProduction.Float64())
	labor := clean(req.LaborCost.Float64())
	if quantity < 0 || production < 0 || labor < 0 {
		return nil, ErrInvalidRequirement
	}

	processID := strings.TrimSpace(req.ProcessID)
	process, err := s.repo.Process.GetByID(ctx, processID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProcessNotFound
		}
		s.logger.Error("查询工序失败", zap.String("process_id", processID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	r := &model.ProductionRequirement{
		ProcessID:        process.ProcessID,
		MaterialQuantity: quantity,
		DailyProduction:  production,
		LaborCost:        labor,
		Process:          process,
	}

	if id := trimOptional(req.EquipmentID); id != nil {
		equipment, err := s.repo.Equipment.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEquipmentNotFound
			}
			s.logger.Error("查询设备失败", zap.String("equipment_id", *id), zap.Error(err))
			return nil, apperrors.ErrInternal.Wrap(err)
		}
		r.EquipmentID = &equipment.EquipmentID
		r.Equipment = equipment
	}

	if id := trimOptional(req.MaterialID); id != nil {
		material, err := s.repo.Material.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMaterialNotFound
			}
			s.logger.Error("查询原材料失败", zap.String("material_id", *id), zap.Error(err))
			return nil, apperrors.ErrInternal.Wrap(err)
		}
		r.MaterialID = &material.MaterialID
		r.Material = material
	}

	if err := s.repo.Requirement.Create(ctx, r); err != nil {
		s.logger.Error("创建生产需求失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	return toRequirementResponse(r), nil
}

// toRequirementResponse 设备成本取运营费用，材料成本为单价 × 用量
func toRequirementResponse(r *model.ProductionRequirement) *dto.RequirementResponse {
	resp := &dto.RequirementResponse{
		ID:               r.RequirementID,
		MaterialQuantity: r.MaterialQuantity,
		DailyProduction:  r.DailyProduction,
		LaborCost:        r.LaborCost,
		CreatedAt:        formatTime(r.CreatedAt),
	}
	if r.Process != nil {
		resp.Process = &dto.RefResponse{ID: r.Process.ProcessID, Name: r.Process.Name}
	}
	if r.Equipment != nil {
		resp.Equipment = &dto.RefResponse{ID: r.Equipment.EquipmentID, Name: r.Equipment.Name}
		if r.Equipment.OperationCost != nil {
			resp.EquipmentCost = *r.Equipment.OperationCost
		}
	}
	if r.Material != nil {
		resp.Material = &dto.RefResponse{ID: r.Material.MaterialID, Name: r.Material.Name}
		resp.MaterialCost = r.Material.Cost * r.MaterialQuantity
	}
	resp.ManufacturingCost = CalculateManufacturingCost(r.LaborCost, resp.EquipmentCost, resp.MaterialCost, r.DailyProduction)
	return resp
}
