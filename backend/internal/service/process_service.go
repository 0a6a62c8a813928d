package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
)

// ProcessService 工序业务接口
type ProcessService interface {
	List(ctx context.Context) ([]dto.ProcessResponse, error)
	Create(ctx context.Context, req *dto.CreateProcessRequest, actor string) (*dto.ProcessResponse, error)
}

type processService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewProcessService 创建 ProcessService 实例
func NewProcessService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) ProcessService {
	return &processService{repo: repo, notification: notification, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *processService) List(ctx context.Context) ([]dto.ProcessResponse, error) {
	processes, err := s.repo.Process.List(ctx)
	if err != nil {
		s.logger.Error("列出工序失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	counts, err := s.repo.Requirement.CountByProcess(ctx)
	if err != nil {
		s.logger.Error("统计工序需求失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.ProcessResponse, 0, len(processes))
	for i := range processes {
		resp := toProcessResponse(&processes[i])
		resp.RequirementCount = counts[processes[i].ProcessID]
		result = append(result, *resp)
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *processService) Create(ctx context.Context, req *dto.CreateProcessRequest, actor string) (*dto.ProcessResponse, error) {
	name := strings.TrimSpace(req.Name)
	productID := strings.TrimSpace(req.ProductID)
	if name == "" || productID == "" {
		return nil, ErrProcessNameRequired
	}
	if req.ProcessOrder < 1 {
		return nil, ErrInvalidProcessOrder
	}

	product, err := s.repo.Product.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("查询产品失败", zap.String("product_id", productID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	// 同一产品下工序顺序唯一
	if _, err := s.repo.Process.GetByProductAndOrder(ctx, productID, req.ProcessOrder); err == nil {
		return nil, ErrProcessOrderExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询工序失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	process := &model.Process{
		Name:         name,
		ProductID:    product.ProductID,
		ProcessOrder: req.ProcessOrder,
		Product:      product,
	}
	if err := s.repo.Process.Create(ctx, process); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProcessOrderExists
		}
		s.logger.Error("创建工序失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.notification.NotifyRegistration(ctx, EntityProcess, fmt.Sprintf("%s (%s)", name, product.Name), actor)
	return toProcessResponse(process), nil
}

func toProcessResponse(p *model.Process) *dto.ProcessResponse {
	resp := &dto.ProcessResponse{
		ID:           p.ProcessID,
		Name:         p.Name,
		ProcessOrder: p.ProcessOrder,
		CreatedAt:    formatTime(p.CreatedAt),
	}
	if p.Product != nil {
		resp.Product = &dto.ProcessProduct{ID: p.Product.ProductID, Name: p.Product.Name}
		if p.Product.Customer != nil {
			resp.Product.Customer = &dto.RefResponse{ID: p.Product.Customer.CustomerID, Name: p.Product.Customer.Name}
		}
	}
	return resp
}
