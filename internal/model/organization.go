package model

import (
	"time"

	"gorm.io/gorm"
)

// OrganizationStatus 组织状态枚举
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

// Organization 组织（租户）模型
type Organization struct {
	CreatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`
	ID        string             `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string             `gorm:"type:varchar(128);not null" json:"name"`
	Status    OrganizationStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
}

// TableName 指定表名
func (Organization) TableName() string {
	return "organizations"
}

// OrganizationPreferences 组织偏好设置，每个组织一条
type OrganizationPreferences struct {
	BaseModel
	OrganizationID string `gorm:"type:uuid;not null;uniqueIndex:idx_org_preferences_org" json:"organization_id"`
	// Timezone IANA 时区名，如 "America/New_York"，所有考勤日期和班次判定以此为准
	Timezone       string `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	GraceMinutes   int    `gorm:"not null;default:15" json:"grace_minutes"`
	AlertOnLate    bool   `gorm:"not null;default:true" json:"alert_on_late"`
	AlertOnHalfDay bool   `gorm:"not null;default:true" json:"alert_on_half_day"`
}

// TableName 指定表名
func (OrganizationPreferences) TableName() string {
	return "organization_preferences"
}
