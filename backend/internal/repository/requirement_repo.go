package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// RequirementRepository 生产需求数据访问接口
type RequirementRepository interface {
	Create(ctx context.Context, req *model.ProductionRequirement) error
	List(ctx context.Context) ([]model.ProductionRequirement, error)
	CountByProcess(ctx context.Context) (map[string]int64, error)
	CountByEquipment(ctx context.Context) (map[string]int64, error)
	CountByMaterial(ctx context.Context) (map[string]int64, error)
}

type requirementRepo struct {
	db *gorm.DB
}

// NewRequirementRepo 创建 RequirementRepository 实例
func NewRequirementRepo(db *gorm.DB) RequirementRepository {
	return &requirementRepo{db: db}
}

func (r *requirementRepo) Create(ctx context.Context, req *model.ProductionRequirement) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

func (r *requirementRepo) List(ctx context.Context) ([]model.ProductionRequirement, error) {
	var list []model.ProductionRequirement
	err := r.db.WithContext(ctx).
		Preload("Process").
		Preload("Equipment").
		Preload("Material").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *requirementRepo) CountByProcess(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "process_id")
}

func (r *requirementRepo) CountByEquipment(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "equipment_id")
}

func (r *requirementRepo) CountByMaterial(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "material_id")
}

// countGrouped 按外键列分组计数，column 只接受内部常量
func (r *requirementRepo) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	var rows []struct {
		ID    string
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.ProductionRequirement{}).
		Select(column + " AS id, COUNT(*) AS count").
		Where(column + " IS NOT NULL").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}
