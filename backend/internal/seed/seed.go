package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// Catalogue 初始化数据目录
type Catalogue struct {
	Translations map[string]map[string]string `yaml:"translations"`
	Demo         DemoData                     `yaml:"demo"`
}

// DemoData 演示数据
type DemoData struct {
	Customers    []DemoCustomer `yaml:"customers"`
	Notification string         `yaml:"notification"`
}

// DemoCustomer 演示客户及其产品
type DemoCustomer struct {
	Name     string        `yaml:"name"`
	Products []DemoProduct `yaml:"products"`
}

// DemoProduct 演示产品，eta_days 为 0 时不设预计到达日
type DemoProduct struct {
	Name    string `yaml:"name"`
	Status  string `yaml:"status"`
	EtaDays int    `yaml:"eta_days"`
}

// LoadCatalogue 解析内置目录并校验语言与状态
func LoadCatalogue() (*Catalogue, error) {
	return parseCatalogue(catalogueYAML)
}

func parseCatalogue(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("解析初始化目录失败: %w", err)
	}
	for key, values := range c.Translations {
		for lang := range values {
			if _, ok := i18n.Parse(lang); !ok {
				return nil, fmt.Errorf("翻译 %s 含不支持的语言 %q", key, lang)
			}
		}
	}
	for _, cu := range c.Demo.Customers {
		for _, p := range cu.Products {
			if !model.ValidShippingStatus(p.Status) {
				return nil, fmt.Errorf("演示产品 %s 的出货状态 %q 不合法", p.Name, p.Status)
			}
		}
	}
	return &c, nil
}

// Seeder 写入初始化数据，可重复执行
type Seeder struct {
	cfg       *config.Config
	repo      *repository.Repository
	catalogue *Catalogue
	logger    *zap.Logger
	now       func() time.Time
}

// New 创建 Seeder
func New(cfg *config.Config, repo *repository.Repository, catalogue *Catalogue, logger *zap.Logger) *Seeder {
	return &Seeder{
		cfg:       cfg,
		repo:      repo,
		catalogue: catalogue,
		logger:    logger,
		now:       time.Now,
	}
}

// Translations 按 (key, language) 写入全部翻译，返回写入条数
func (s *Seeder) Translations(ctx context.Context) (int, error) {
	keys := make([]string, 0, len(s.catalogue.Translations))
	for k := range s.catalogue.Translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := 0
	for _, key := range keys {
		for _, lang := range i18n.Supported {
			value, ok := s.catalogue.Translations[key][string(lang)]
			if !ok || value == "" {
				continue
			}
			t := &model.Translation{Key: key, Language: string(lang), Value: value}
			if err := s.repo.Translation.Upsert(ctx, t); err != nil {
				return n, fmt.Errorf("写入翻译 %s/%s 失败: %w", key, lang, err)
			}
			n++
		}
	}
	s.logger.Info("翻译初始化完成", zap.Int("count", n))
	return n, nil
}

// Admin 创建管理员账号，已存在或未配置密码时跳过
func (s *Seeder) Admin(ctx context.Context) (bool, error) {
	username := s.cfg.Seed.AdminUsername
	if username == "" || s.cfg.Seed.AdminPassword == "" {
		s.logger.Warn("未配置管理员账号，跳过")
		return false, nil
	}

	_, err := s.repo.User.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Info("管理员已存在", zap.String("username", username))
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("查询管理员失败: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Seed.AdminPassword), s.cfg.Auth.BcryptCost)
	if err != nil {
		return false, fmt.Errorf("管理员密码哈希失败: %w", err)
	}
	admin := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Nickname:     username,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("创建管理员失败: %w", err)
	}
	s.logger.Info("管理员已创建", zap.String("username", username))
	return true, nil
}

// Demo 写入演示客户、产品与通知，已有客户时跳过
func (s *Seeder) Demo(ctx context.Context) (bool, error) {
	existing, err := s.repo.Customer.List(ctx)
	if err != nil {
		return false, fmt.Errorf("查询客户失败: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("已有客户数据，跳过演示数据", zap.Int("customers", len(existing)))
		return false, nil
	}

	today := s.now().Truncate(24 * time.Hour)
	for _, dc := range s.catalogue.Demo.Customers {
		customer := &model.Customer{Name: dc.Name}
		if err := s.repo.Customer.Create(ctx, customer); err != nil {
			return false, fmt.Errorf("创建演示客户 %s 失败: %w", dc.Name, err)
		}

		for _, dp := range dc.Products {
			product := &model.Product{Name: dp.Name, CustomerID: customer.CustomerID}
			if err := s.repo.Product.Create(ctx, product); err != nil {
				return false, fmt.Errorf("创建演示产品 %s 失败: %w", dp.Name, err)
			}

			status := &model.ShippingStatus{ProductID: product.ProductID, Status: dp.Status}
			if dp.EtaDays > 0 {
				eta := today.AddDate(0, 0, dp.EtaDays)
				status.EtaDate = &eta
				status.ShippingDate = &today
			}
			if err := s.repo.Shipping.Create(ctx, status); err != nil {
				return false, fmt.Errorf("创建演示出货状态 %s 失败: %w", dp.Name, err)
			}
		}
	}

	if msg := s.catalogue.Demo.Notification; msg != "" {
		n := &model.Notification{Message: msg, Type: model.NotificationInfo}
		if err := s.repo.Notification.Create(ctx, n); err != nil {
			return false, fmt.Errorf("创建演示通知失败: %w", err)
		}
	}

	s.logger.Info("演示数据已写入", zap.Int("customers", len(s.catalogue.Demo.Customers)))
	return true, nil
}
