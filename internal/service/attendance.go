package service

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
	"github.com/24svcs/svcs-api/utils"
)

// AttendanceEventPublisher 考勤事件发布接口，由 internal/queue 实现
type AttendanceEventPublisher interface {
	PublishAttendanceEvent(ctx context.Context, msg model.AttendanceEventMessage) error
}

// AttendanceService 考勤状态机
// 每个员工每个组织本地日期一条记录：第一次调用签到，第二次签退，之后拒绝
type AttendanceService struct {
	attendances *repository.AttendanceRepo
	employees   *repository.EmployeeRepo
	orgs        *repository.OrganizationRepo
	tz          *TimezoneResolver
	publisher   AttendanceEventPublisher
	now         func() time.Time
}

func NewAttendanceService(
	attendances *repository.AttendanceRepo,
	employees *repository.EmployeeRepo,
	orgs *repository.OrganizationRepo,
	tz *TimezoneResolver,
	publisher AttendanceEventPublisher,
) *AttendanceService {
	return &AttendanceService{
		attendances: attendances,
		employees:   employees,
		orgs:        orgs,
		tz:          tz,
		publisher:   publisher,
		now:         time.Now,
	}
}

// WithClock 替换时钟，测试用
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// CheckInOut 打卡入口，方向由当天记录状态推断
func (s *AttendanceService) CheckInOut(ctx context.Context, orgID string, employeeID int64, note string) (*repository.AttendanceRow, []string, error) {
	emp, err := s.employees.GetByID(ctx, orgID, employeeID)
	if err != nil {
		return nil, nil, err
	}
	if emp == nil {
		return nil, nil, errors.EmployeeNotFound
	}

	loc := s.tz.Resolve(ctx, orgID)
	localNow := s.now().In(loc)
	date := localNow.Format(utils.DateLayout)
	timeOfDay := localNow.Format(utils.TimeOfDayLayout)

	att, err := s.attendances.GetForDay(ctx, emp.ID, date)
	if err != nil {
		return nil, nil, err
	}

	if att == nil {
		var created bool
		att, created, err = s.checkIn(ctx, emp, date, timeOfDay, note)
		if err != nil {
			return nil, nil, err
		}
		if created {
			var warnings []string
			if att.Status == model.AttendanceStatusLate {
				warnings = append(warnings, "checked in after grace period")
			}
			return attendanceRow(att, emp), warnings, nil
		}
		// 并发打卡时本次插入失败，att 是赢家写入的记录，按签退继续
	}

	att, warnings, err := s.checkOut(ctx, emp, att, timeOfDay, note)
	if err != nil {
		return nil, nil, err
	}
	return attendanceRow(att, emp), warnings, nil
}

// attendanceRow 把已加载的员工姓名附到记录上，省一次联表查询
func attendanceRow(att *model.Attendance, emp *model.Employee) *repository.AttendanceRow {
	return &repository.AttendanceRow{
		Attendance:         *att,
		EmployeeFirstName:  emp.FirstName,
		EmployeeMiddleName: emp.MiddleName,
		EmployeeLastName:   emp.LastName,
	}
}

// checkIn 创建当天考勤记录
// 唯一索引冲突说明并发请求已经签到，重新加载并返回该记录
func (s *AttendanceService) checkIn(ctx context.Context, emp *model.Employee, date, timeOfDay, note string) (*model.Attendance, bool, error) {
	grace := s.graceMinutes(ctx, emp.OrganizationID)
	status, err := EvaluateCheckIn(timeOfDay, emp.ShiftStart, grace)
	if err != nil {
		return nil, false, err
	}

	id, err := snowflake.NextID()
	if err != nil {
		return nil, false, err
	}

	att := &model.Attendance{
		BaseModel:      model.BaseModel{ID: id},
		OrganizationID: emp.OrganizationID,
		EmployeeID:     emp.ID,
		Date:           date,
		TimeIn:         timeOfDay,
		Status:         status,
		Note:           note,
	}

	err = s.attendances.Create(ctx, att)
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Logger.Info("Concurrent check-in detected, retrying as check-out",
			zap.Int64("employee_id", emp.ID),
			zap.String("date", date),
		)
		existing, loadErr := s.attendances.GetForDay(ctx, emp.ID, date)
		if loadErr != nil {
			return nil, false, loadErr
		}
		if existing == nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s.publish(ctx, model.AttendanceEventCheckIn, att, nil)
	return att, true, nil
}

// checkOut 补写签退时间，备注非空时覆盖签到时的备注
func (s *AttendanceService) checkOut(ctx context.Context, emp *model.Employee, att *model.Attendance, timeOfDay, note string) (*model.Attendance, []string, error) {
	if att.CheckedOut() {
		return nil, nil, errors.AlreadyCheckedOut
	}

	if err := EvaluateCheckOut(timeOfDay, emp.ShiftStart, emp.ShiftEnd); err != nil {
		return nil, nil, err
	}

	att.TimeOut = &timeOfDay
	if note != "" {
		att.Note = note
	}
	if err := s.attendances.Save(ctx, att); err != nil {
		return nil, nil, err
	}

	var warnings []string
	halfDay, err := HalfDayWarning(att.TimeIn, timeOfDay, emp.ShiftStart, emp.ShiftEnd)
	if err == nil && halfDay {
		warnings = append(warnings, "attendance covered less than half of the scheduled shift")
	}

	s.publish(ctx, model.AttendanceEventCheckOut, att, warnings)
	return att, warnings, nil
}

// Get 查询单条考勤记录，附带员工姓名
func (s *AttendanceService) Get(ctx context.Context, orgID string, id int64) (*repository.AttendanceRow, error) {
	row, err := s.attendances.GetRowByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.AttendanceNotFound
	}
	return row, nil
}

// List 查询考勤列表
func (s *AttendanceService) List(ctx context.Context, orgID string, q model.AttendanceListQuery) ([]repository.AttendanceRow, int64, error) {
	if q.Status != "" && !validAttendanceStatus(q.Status) {
		return nil, 0, errors.InvalidStatus
	}
	if q.DateFrom != "" && !utils.ValidDate(q.DateFrom) {
		return nil, 0, errors.InvalidRequest
	}
	if q.DateTo != "" && !utils.ValidDate(q.DateTo) {
		return nil, 0, errors.InvalidRequest
	}
	return s.attendances.List(ctx, orgID, q)
}

// AdminUpdate 管理员修正考勤记录，字段为 nil 时保持原值
// 改动 employee_id 时校验新员工属于同一组织
func (s *AttendanceService) AdminUpdate(ctx context.Context, orgID string, id int64, req model.AttendanceUpdateRequest) (*repository.AttendanceRow, []string, error) {
	row, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, nil, err
	}
	att := &row.Attendance

	if req.EmployeeID != nil {
		employeeID, err := strconv.ParseInt(*req.EmployeeID, 10, 64)
		if err != nil {
			return nil, nil, errors.InvalidEmployeeID
		}
		emp, err := s.employees.GetByID(ctx, orgID, employeeID)
		if err != nil {
			return nil, nil, err
		}
		if emp == nil {
			return nil, nil, errors.EmployeeNotFound
		}
		att.EmployeeID = employeeID
	}
	if req.Date != nil {
		if !utils.ValidDate(*req.Date) {
			return nil, nil, errors.InvalidRequest
		}
		att.Date = *req.Date
	}
	if req.TimeIn != nil {
		if !utils.ValidTimeOfDay(*req.TimeIn) {
			return nil, nil, errors.InvalidTimeOfDay
		}
		att.TimeIn = *req.TimeIn
	}
	if req.TimeOut != nil {
		if *req.TimeOut == "" {
			att.TimeOut = nil
		} else {
			if !utils.ValidTimeOfDay(*req.TimeOut) {
				return nil, nil, errors.InvalidTimeOfDay
			}
			att.TimeOut = req.TimeOut
		}
	}
	if req.Status != nil {
		if !validAttendanceStatus(*req.Status) {
			return nil, nil, errors.InvalidStatus
		}
		att.Status = model.AttendanceStatus(*req.Status)
	}
	if req.Note != nil {
		att.Note = *req.Note
	}

	var warnings []string
	if att.CheckedOut() {
		emp, err := s.employees.GetByID(ctx, orgID, att.EmployeeID)
		if err != nil {
			return nil, nil, err
		}
		if emp == nil || !overnightShift(emp.ShiftStart, emp.ShiftEnd) {
			in, errIn := utils.ParseTime(att.TimeIn, policyBaseDate)
			out, errOut := utils.ParseTime(*att.TimeOut, policyBaseDate)
			if errIn == nil && errOut == nil && !out.After(in) {
				return nil, nil, errors.InvalidTimeRange
			}
		}
		// HALF_DAY 但出勤已满 4 小时只提示，不阻断
		if att.Status == model.AttendanceStatusHalfDay {
			advisory, err := HalfDayDurationAdvisory(att.TimeIn, *att.TimeOut)
			if err == nil && advisory {
				warnings = append(warnings, "status is HALF_DAY but attendance lasted 4 hours or more")
			}
		}
	}

	if err := s.attendances.Save(ctx, att); err != nil {
		return nil, nil, err
	}

	// 员工可能被改过，重新联表取姓名
	updated, err := s.Get(ctx, orgID, att.ID)
	if err != nil {
		return nil, nil, err
	}
	return updated, warnings, nil
}

// Delete 删除考勤记录
func (s *AttendanceService) Delete(ctx context.Context, orgID string, id int64) error {
	row, err := s.Get(ctx, orgID, id)
	if err != nil {
		return err
	}
	return s.attendances.Delete(ctx, &row.Attendance)
}

func (s *AttendanceService) graceMinutes(ctx context.Context, orgID string) int {
	prefs, err := s.orgs.GetPreferences(ctx, orgID)
	if err != nil || prefs == nil {
		return DefaultGraceMinutes
	}
	return prefs.GraceMinutes
}

func (s *AttendanceService) publish(ctx context.Context, eventType model.AttendanceEventType, att *model.Attendance, warnings []string) {
	if s.publisher == nil {
		return
	}

	msg := model.AttendanceEventMessage{
		MessageID:      uuid.NewString(),
		EventType:      eventType,
		OrganizationID: att.OrganizationID,
		EmployeeID:     att.EmployeeID,
		AttendanceID:   att.ID,
		Date:           att.Date,
		TimeIn:         att.TimeIn,
		Status:         att.Status,
		Warnings:       warnings,
		OccurredAt:     s.now().UTC().Format(time.RFC3339),
	}
	if att.TimeOut != nil {
		msg.TimeOut = *att.TimeOut
	}

	if err := s.publisher.PublishAttendanceEvent(ctx, msg); err != nil {
		logger.Logger.Error("Failed to publish attendance event",
			zap.String("event_type", string(eventType)),
			zap.Int64("attendance_id", att.ID),
			zap.Error(err),
		)
	}
}

func validAttendanceStatus(status string) bool {
	switch model.AttendanceStatus(status) {
	case model.AttendanceStatusPresent, model.AttendanceStatusLate, model.AttendanceStatusHalfDay:
		return true
	}
	return false
}

func overnightShift(shiftStart, shiftEnd string) bool {
	start, errStart := utils.ParseTime(shiftStart, policyBaseDate)
	end, errEnd := utils.ParseTime(shiftEnd, policyBaseDate)
	if errStart != nil || errEnd != nil {
		return false
	}
	return end.Before(start)
}
