package model

import "time"

// AlertKind 告警类型枚举
type AlertKind string

const (
	AlertKindLateArrival AlertKind = "late_arrival" // 迟到告警
	AlertKindHalfDay     AlertKind = "half_day"     // 出勤不足半班次告警
)

// NotificationAlert 考勤告警记录，由 worker 消费考勤事件后写入
type NotificationAlert struct {
	BaseModel
	OrganizationID string     `gorm:"type:uuid;not null;index:idx_notification_alerts_org" json:"organization_id"`
	EmployeeID     int64      `gorm:"not null" json:"employee_id,string"`
	AttendanceID   int64      `gorm:"not null;index:idx_notification_alerts_attendance" json:"attendance_id,string"`
	Kind           AlertKind  `gorm:"type:varchar(32);not null" json:"kind"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	ReadAt         *time.Time `gorm:"type:timestamptz" json:"read_at,omitempty"`
}

// TableName 指定表名
func (NotificationAlert) TableName() string {
	return "notification_alerts"
}
