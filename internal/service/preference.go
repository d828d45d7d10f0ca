package service

import (
	"context"
	"time"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/snowflake"
)

// PreferenceService 组织偏好管理
type PreferenceService struct {
	orgs *repository.OrganizationRepo
}

func NewPreferenceService(orgs *repository.OrganizationRepo) *PreferenceService {
	return &PreferenceService{orgs: orgs}
}

// Get 查询组织偏好，不存在时创建 UTC 默认值
func (s *PreferenceService) Get(ctx context.Context, orgID string) (*model.OrganizationPreferences, error) {
	prefs, err := s.orgs.GetPreferences(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		return prefs, nil
	}

	id, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	prefs = &model.OrganizationPreferences{
		BaseModel:      model.BaseModel{ID: id},
		OrganizationID: orgID,
		Timezone:       "UTC",
		GraceMinutes:   DefaultGraceMinutes,
		AlertOnLate:    true,
		AlertOnHalfDay: true,
	}
	if err := s.orgs.SavePreferences(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// Update 更新组织偏好
// 时区变更不清缓存，各实例最多滞后一个缓存周期后生效
func (s *PreferenceService) Update(ctx context.Context, orgID string, req model.UpdatePreferencesRequest) (*model.OrganizationPreferences, error) {
	prefs, err := s.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil || *req.Timezone == "" {
			return nil, errors.InvalidTimezone
		}
		prefs.Timezone = *req.Timezone
	}
	if req.GraceMinutes != nil {
		if *req.GraceMinutes < 0 || *req.GraceMinutes > 24*60 {
			return nil, errors.InvalidRequest
		}
		prefs.GraceMinutes = *req.GraceMinutes
	}
	if req.AlertOnLate != nil {
		prefs.AlertOnLate = *req.AlertOnLate
	}
	if req.AlertOnHalfDay != nil {
		prefs.AlertOnHalfDay = *req.AlertOnHalfDay
	}

	if err := s.orgs.SavePreferences(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
