package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
)

// AlertRepo 考勤告警记录的持久化访问，worker 进程写入
type AlertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

func (r *AlertRepo) Create(ctx context.Context, alert *model.NotificationAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// ExistsForAttendance 幂等性检查，同一条考勤同一类告警只写一次
func (r *AlertRepo) ExistsForAttendance(ctx context.Context, attendanceID int64, kind model.AlertKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.NotificationAlert{}).
		Where("attendance_id = ? AND kind = ?", attendanceID, kind).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
