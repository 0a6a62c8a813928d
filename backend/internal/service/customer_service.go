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

// CustomerService 客户业务接口
type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	// Create 创建客户，actor 为操作人用户名，用于通知文案
	Create(ctx context.Context, req *dto.CreateCustomerRequest, actor string) (*dto.CustomerResponse, error)
}

type customerService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewCustomerService 创建 CustomerService 实例
func NewCustomerService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) CustomerService {
	return &customerService{repo: repo, notification: notification, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.Customer.List(ctx)
	if err != nil {
		s.logger.Error("列出客户失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		result = append(result, *toCustomerResponse(&customers[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest, actor string) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	if _, err := s.repo.Customer.GetByName(ctx, name); err == nil {
		return nil, ErrCustomerExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询客户失败", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	customer := &model.Customer{Name: name}
	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCustomerExists
		}
		s.logger.Error("创建客户失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.notification.NotifyRegistration(ctx, EntityCustomer, name, actor)
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *model.Customer) *dto.CustomerResponse {
	products := make([]dto.RefResponse, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, dto.RefResponse{ID: p.ProductID, Name: p.Name})
	}
	return &dto.CustomerResponse{
		ID:           c.CustomerID,
		Name:         c.Name,
		Products:     products,
		ProductCount: len(products),
		CreatedAt:    formatTime(c.CreatedAt),
	}
}
