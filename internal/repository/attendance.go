package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
)

// AttendanceRepo 考勤记录的持久化访问，db 由调用方注入
type AttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

// Create 插入考勤记录
// (employee_id, date) 唯一索引冲突时返回 gorm.ErrDuplicatedKey，由 service 层重试
func (r *AttendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

// GetForDay 查询员工某个组织本地日期的考勤记录，不存在时返回 (nil, nil)
func (r *AttendanceRepo) GetForDay(ctx context.Context, employeeID int64, date string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// GetByID 按主键和组织查询考勤记录，不存在时返回 (nil, nil)
func (r *AttendanceRepo) GetByID(ctx context.Context, orgID string, id int64) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *AttendanceRepo) Save(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *AttendanceRepo) Delete(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Delete(att).Error
}

// AttendanceRow 列表查询结果，附带员工姓名
type AttendanceRow struct {
	model.Attendance
	EmployeeFirstName  string
	EmployeeMiddleName string
	EmployeeLastName   string
}

// EmployeeName 拼接列表行的员工姓名
func (row *AttendanceRow) EmployeeName() string {
	name := row.EmployeeFirstName
	if row.EmployeeMiddleName != "" {
		name += " " + row.EmployeeMiddleName
	}
	if row.EmployeeLastName != "" {
		name += " " + row.EmployeeLastName
	}
	return name
}

// GetRowByID 按主键和组织查询考勤记录并附带员工姓名，不存在时返回 (nil, nil)
func (r *AttendanceRepo) GetRowByID(ctx context.Context, orgID string, id int64) (*AttendanceRow, error) {
	var row AttendanceRow
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Select("attendances.*, employees.first_name AS employee_first_name, employees.middle_name AS employee_middle_name, employees.last_name AS employee_last_name").
		Where("attendances.id = ? AND attendances.organization_id = ?", id, orgID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List 按组织查询考勤列表
// status 精确匹配，employee_name 不区分大小写包含匹配，date_from/date_to 闭区间
func (r *AttendanceRepo) List(ctx context.Context, orgID string, q model.AttendanceListQuery) ([]AttendanceRow, int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("attendances.organization_id = ?", orgID)

	if q.Status != "" {
		tx = tx.Where("attendances.status = ?", q.Status)
	}
	if q.EmployeeName != "" {
		pattern := "%" + strings.ToLower(q.EmployeeName) + "%"
		tx = tx.Where("LOWER(employees.first_name || ' ' || employees.last_name) LIKE ?", pattern)
	}
	if q.DateFrom != "" {
		tx = tx.Where("attendances.date >= ?", q.DateFrom)
	}
	if q.DateTo != "" {
		tx = tx.Where("attendances.date <= ?", q.DateTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []AttendanceRow
	err := tx.
		Select("attendances.*, employees.first_name AS employee_first_name, employees.middle_name AS employee_middle_name, employees.last_name AS employee_last_name").
		Order("attendances.date DESC, attendances.time_in DESC").
		Limit(limit).
		Offset(q.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
