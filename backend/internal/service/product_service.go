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

// ProductService 产品业务接口
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest, actor string) (*dto.ProductResponse, error)
	// UpdateShipping 更新出货状态，记录不存在时创建
	UpdateShipping(ctx context.Context, productID string, req *dto.UpdateShippingRequest) (*dto.ShippingResponse, error)
}

type productService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewProductService 创建 ProductService 实例
func NewProductService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) ProductService {
	return &productService{repo: repo, notification: notification, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.Product.List(ctx)
	if err != nil {
		s.logger.Error("列出产品失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest, actor string) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	customerID := strings.TrimSpace(req.CustomerID)
	if name == "" || customerID == "" {
		return nil, ErrProductNameRequired
	}

	customer, err := s.repo.Customer.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("查询客户失败", zap.String("customer_id", customerID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	product := &model.Product{Name: name, CustomerID: customer.CustomerID, Customer: customer}

	if managerID := trimOptional(req.ManagerID); managerID != nil {
		manager, err := s.repo.User.GetByID(ctx, *managerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrManagerNotFound
			}
			s.logger.Error("查询负责人失败", zap.String("manager_id", *managerID), zap.Error(err))
			return nil, apperrors.ErrInternal.Wrap(err)
		}
		product.ManagerID = &manager.UserID
		product.Manager = manager
	}

	// 关联对象只用于响应，写库时不级联
	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.logger.Error("创建产品失败", zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	// 第二次写入：初始出货状态，失败时保留产品
	shipping := &model.ShippingStatus{ProductID: product.ProductID, Status: model.ShippingPreparing}
	if err := s.repo.Shipping.Create(ctx, shipping); err != nil {
		s.logger.Error("创建初始出货状态失败", zap.String("product_id", product.ProductID), zap.Error(err))
	} else {
		product.ShippingStatus = shipping
	}

	s.notification.NotifyRegistration(ctx, EntityProduct, name, actor)
	return toProductResponse(product), nil
}

// ────────────────────── UpdateShipping ──────────────────────

func (s *productService) UpdateShipping(ctx context.Context, productID string, req *dto.UpdateShippingRequest) (*dto.ShippingResponse, error) {
	status := strings.TrimSpace(req.Status)
	if !model.ValidShippingStatus(status) {
		return nil, ErrInvalidShippingStatus
	}
	eta, err := parseDate(req.EtaDate)
	if err != nil {
		return nil, ErrInvalidShippingDate
	}
	shippedAt, err := parseDate(req.ShippingDate)
	if err != nil {
		return nil, ErrInvalidShippingDate
	}

	product, err := s.repo.Product.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("查询产品失败", zap.String("id", productID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	shipping := &model.ShippingStatus{
		ProductID:    product.ProductID,
		Status:       status,
		EtaDate:      eta,
		ShippingDate: shippedAt,
	}
	if err := s.repo.Shipping.Upsert(ctx, shipping); err != nil {
		s.logger.Error("更新出货状态失败", zap.String("product_id", productID), zap.Error(err))
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	s.notification.NotifyStatusChange(ctx, product.Name, status)
	return toShippingResponse(shipping), nil
}

// ── 内部辅助方法 ──

func toProductResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:        p.ProductID,
		Name:      p.Name,
		Processes: make([]dto.ProcessBrief, 0, len(p.Processes)),
		CreatedAt: formatTime(p.CreatedAt),
	}
	if p.Customer != nil {
		resp.Customer = &dto.RefResponse{ID: p.Customer.CustomerID, Name: p.Customer.Name}
	}
	if p.Manager != nil {
		resp.Manager = &dto.ManagerResponse{ID: p.Manager.UserID, Username: p.Manager.Username}
	}
	for _, proc := range p.Processes {
		resp.Processes = append(resp.Processes, dto.ProcessBrief{
			ID:           proc.ProcessID,
			Name:         proc.Name,
			ProcessOrder: proc.ProcessOrder,
		})
	}
	resp.ProcessCount = len(resp.Processes)
	if p.ShippingStatus != nil {
		resp.ShippingStatus = toShippingResponse(p.ShippingStatus)
	}
	return resp
}

func toShippingResponse(s *model.ShippingStatus) *dto.ShippingResponse {
	return &dto.ShippingResponse{
		Status:       s.Status,
		EtaDate:      formatDate(s.EtaDate),
		ShippingDate: formatDate(s.ShippingDate),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}
