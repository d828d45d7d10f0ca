package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
)

// OrganizationRepo 组织与偏好设置的持久化访问
type OrganizationRepo struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

// GetByID 按主键查询组织，不存在时返回 (nil, nil)
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetPreferences 查询组织偏好，不存在时返回 (nil, nil)
func (r *OrganizationRepo) GetPreferences(ctx context.Context, orgID string) (*model.OrganizationPreferences, error) {
	var prefs model.OrganizationPreferences
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *OrganizationRepo) SavePreferences(ctx context.Context, prefs *model.OrganizationPreferences) error {
	return r.db.WithContext(ctx).Save(prefs).Error
}
