package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
)

// EmployeeRepo 员工持久化访问
type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

// GetByID 按主键和组织查询员工，不存在时返回 (nil, nil)
func (r *EmployeeRepo) GetByID(ctx context.Context, orgID string, id int64) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepo) Save(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

// List 按组织查询员工列表，name 不区分大小写包含匹配
func (r *EmployeeRepo) List(ctx context.Context, orgID string, q model.EmployeeListQuery) ([]model.Employee, int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("organization_id = ?", orgID)

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Name != "" {
		pattern := "%" + strings.ToLower(q.Name) + "%"
		tx = tx.Where("LOWER(first_name || ' ' || last_name) LIKE ?", pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var emps []model.Employee
	err := tx.
		Order("last_name, first_name").
		Limit(limit).
		Offset(q.Offset).
		Find(&emps).Error
	if err != nil {
		return nil, 0, err
	}

	return emps, total, nil
}
