package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
)

func TestCheckInOutLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()

	// 第一次调用：签到
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC)))
	att, warnings, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "feeling fine")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, "2026-03-02", att.Date)
	require.Equal(t, "09:10:00", att.TimeIn)
	require.Nil(t, att.TimeOut)
	require.Equal(t, model.AttendanceStatusPresent, att.Status)
	require.Equal(t, "feeling fine", att.Note)
	require.Equal(t, "Jane Doe", att.EmployeeName())

	// 第二次调用：签退，补写同一条记录；空备注不覆盖签到备注
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 17, 5, 0, 0, time.UTC)))
	out, warnings, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, att.ID, out.ID)
	require.NotNil(t, out.TimeOut)
	require.Equal(t, "17:05:00", *out.TimeOut)
	require.Equal(t, "feeling fine", out.Note)
	require.Equal(t, "Jane Doe", out.EmployeeName())

	var count int64
	require.NoError(t, f.db.Model(&model.Attendance{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// 签退落库后日期键必须原样可查，否则第三次调用会误判为新的一天
	stored, err := f.attendances.GetForDay(ctx, f.employee.ID, "2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "2026-03-02", stored.Date)

	// 第三次调用：当天已完成，拒绝
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)))
	_, _, err = svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.ErrorIs(t, err, errors.AlreadyCheckedOut)
}

func TestCheckInAtGraceBoundary(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := f.attendanceService().
		WithClock(fixedClock(time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)))

	att, warnings, err := svc.CheckInOut(context.Background(), f.orgID, f.employee.ID, "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, model.AttendanceStatusPresent, att.Status)
}

func TestCheckInLateAfterGrace(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := f.attendanceService().
		WithClock(fixedClock(time.Date(2026, 3, 2, 9, 16, 0, 0, time.UTC)))

	att, warnings, err := svc.CheckInOut(context.Background(), f.orgID, f.employee.ID, "")
	require.NoError(t, err)
	require.Equal(t, model.AttendanceStatusLate, att.Status)
	require.Contains(t, warnings, "checked in after grace period")
}

func TestEarlyCheckoutBlocked(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	att, _, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 16, 59, 0, 0, time.UTC)))
	_, _, err = svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.ErrorIs(t, err, errors.EarlyCheckout)

	// 被拒绝后记录保持未签退，可以再次尝试
	reloaded, err := f.attendances.GetByID(ctx, f.orgID, att.ID)
	require.NoError(t, err)
	require.Nil(t, reloaded.TimeOut)

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)))
	out, _, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "left on time")
	require.NoError(t, err)
	require.Equal(t, "17:00:00", *out.TimeOut)
	require.Equal(t, "left on time", out.Note)
}

func TestCheckOutHalfDayWarning(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()

	// 13:30 签到只剩 3.5 小时班次，不足 8 小时的一半
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)))
	_, _, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)))
	_, warnings, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)
	require.Contains(t, warnings, "attendance covered less than half of the scheduled shift")
}

func TestCheckInOutUnknownEmployee(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := f.attendanceService()

	_, _, err := svc.CheckInOut(context.Background(), f.orgID, 424242, "")
	require.ErrorIs(t, err, errors.EmployeeNotFound)
}

func TestOvernightShiftCheckout(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, "Night", "Owl", "22:00:00", "06:00:00")
	svc := f.attendanceService()

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 22, 5, 0, 0, time.UTC)))
	_, _, err := svc.CheckInOut(ctx, f.orgID, emp.ID, "")
	require.NoError(t, err)

	// 当晚仍在工作窗口内，拒绝签退
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)))
	_, _, err = svc.CheckInOut(ctx, f.orgID, emp.ID, "")
	require.ErrorIs(t, err, errors.EarlyCheckout)
}

func TestCheckInOutWithoutShift(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, "Flex", "Worker", "", "")
	svc := f.attendanceService()

	// 未配置上班时间：任何时刻签到都算准时
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 14, 45, 0, 0, time.UTC)))
	att, warnings, err := svc.CheckInOut(ctx, f.orgID, emp.ID, "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, model.AttendanceStatusPresent, att.Status)

	// 未配置下班时间：随时允许签退
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)))
	out, warnings, err := svc.CheckInOut(ctx, f.orgID, emp.ID, "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, "15:00:00", *out.TimeOut)
}

func TestConcurrentCheckInFallsBackToExisting(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()

	existing := &model.Attendance{
		BaseModel:      model.BaseModel{ID: 1001},
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		Date:           "2026-03-02",
		TimeIn:         "09:01:00",
		Status:         model.AttendanceStatusPresent,
	}
	require.NoError(t, f.attendances.Create(ctx, existing))

	// 唯一索引已占用时 checkIn 加载赢家的记录并报告未新建
	att, created, err := svc.checkIn(ctx, f.employee, "2026-03-02", "09:02:00", "")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing.ID, att.ID)
	require.Equal(t, "09:01:00", att.TimeIn)
}

func TestDuplicateAttendanceTranslatesError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first := &model.Attendance{
		BaseModel:      model.BaseModel{ID: 2001},
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		Date:           "2026-03-02",
		TimeIn:         "09:00:00",
		Status:         model.AttendanceStatusPresent,
	}
	require.NoError(t, f.attendances.Create(ctx, first))

	dup := &model.Attendance{
		BaseModel:      model.BaseModel{ID: 2002},
		OrganizationID: f.orgID,
		EmployeeID:     f.employee.ID,
		Date:           "2026-03-02",
		TimeIn:         "09:00:30",
		Status:         model.AttendanceStatusPresent,
	}
	err := f.attendances.Create(ctx, dup)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAdminUpdate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()

	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	att, _, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }

	t.Run("invalid status rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			Status: strPtr("ABSENT"),
		})
		require.ErrorIs(t, err, errors.InvalidStatus)
	})

	t.Run("invalid time rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			TimeIn: strPtr("9am"),
		})
		require.ErrorIs(t, err, errors.InvalidTimeOfDay)
	})

	t.Run("time_out before time_in rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			TimeOut: strPtr("08:00:00"),
		})
		require.ErrorIs(t, err, errors.InvalidTimeRange)
	})

	t.Run("unknown employee rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			EmployeeID: strPtr("424242"),
		})
		require.ErrorIs(t, err, errors.EmployeeNotFound)
	})

	t.Run("malformed employee id rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			EmployeeID: strPtr("not-a-number"),
		})
		require.ErrorIs(t, err, errors.InvalidEmployeeID)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			Date: strPtr("03/02/2026"),
		})
		require.ErrorIs(t, err, errors.InvalidRequest)
	})

	t.Run("half day with long attendance warns only", func(t *testing.T) {
		updated, warnings, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			TimeOut: strPtr("17:00:00"),
			Status:  strPtr("HALF_DAY"),
		})
		require.NoError(t, err)
		require.Equal(t, model.AttendanceStatusHalfDay, updated.Status)
		require.Contains(t, warnings, "status is HALF_DAY but attendance lasted 4 hours or more")
	})

	t.Run("half day with short attendance no warning", func(t *testing.T) {
		_, warnings, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			TimeOut: strPtr("12:00:00"),
			Status:  strPtr("HALF_DAY"),
		})
		require.NoError(t, err)
		require.Empty(t, warnings)
	})

	t.Run("note latest write wins", func(t *testing.T) {
		updated, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			Note: strPtr("corrected by HR"),
		})
		require.NoError(t, err)
		require.Equal(t, "corrected by HR", updated.Note)

		updated, _, err = svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			Note: strPtr(""),
		})
		require.NoError(t, err)
		require.Empty(t, updated.Note)
	})

	t.Run("empty time_out clears check-out", func(t *testing.T) {
		updated, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			TimeOut: strPtr(""),
		})
		require.NoError(t, err)
		require.Nil(t, updated.TimeOut)
	})

	t.Run("status override persists", func(t *testing.T) {
		updated, _, err := svc.AdminUpdate(ctx, f.orgID, att.ID, model.AttendanceUpdateRequest{
			Status: strPtr("LATE"),
		})
		require.NoError(t, err)
		require.Equal(t, model.AttendanceStatusLate, updated.Status)

		reloaded, err := svc.Get(ctx, f.orgID, att.ID)
		require.NoError(t, err)
		require.Equal(t, model.AttendanceStatusLate, reloaded.Status)
		require.Equal(t, "Jane Doe", reloaded.EmployeeName())
	})

	t.Run("unknown record", func(t *testing.T) {
		_, _, err := svc.AdminUpdate(ctx, f.orgID, 999999, model.AttendanceUpdateRequest{})
		require.ErrorIs(t, err, errors.AttendanceNotFound)
	})
}

func TestDeleteAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService().
		WithClock(fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	att, _, err := svc.CheckInOut(ctx, f.orgID, f.employee.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, f.orgID, att.ID))

	_, err = svc.Get(ctx, f.orgID, att.ID)
	require.ErrorIs(t, err, errors.AttendanceNotFound)
}

func TestListAttendances(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := f.attendanceService()
	other := f.addEmployee(t, "Omar", "Benali", "09:00:00", "17:00:00")

	seed := []struct {
		id     int64
		emp    int64
		date   string
		status model.AttendanceStatus
	}{
		{3001, f.employee.ID, "2026-03-01", model.AttendanceStatusPresent},
		{3002, f.employee.ID, "2026-03-02", model.AttendanceStatusLate},
		{3003, other.ID, "2026-03-02", model.AttendanceStatusPresent},
	}
	for _, s := range seed {
		require.NoError(t, f.attendances.Create(ctx, &model.Attendance{
			BaseModel:      model.BaseModel{ID: s.id},
			OrganizationID: f.orgID,
			EmployeeID:     s.emp,
			Date:           s.date,
			TimeIn:         "09:00:00",
			Status:         s.status,
		}))
	}

	t.Run("no filters", func(t *testing.T) {
		rows, total, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{})
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, rows, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		rows, total, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{Status: "LATE"})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, model.AttendanceStatusLate, rows[0].Status)
	})

	t.Run("filter by employee name", func(t *testing.T) {
		rows, total, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{EmployeeName: "omar"})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "Omar Benali", rows[0].EmployeeName())
	})

	t.Run("filter by date range", func(t *testing.T) {
		_, total, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{
			DateFrom: "2026-03-02",
			DateTo:   "2026-03-02",
		})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, _, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{Status: "ABSENT"})
		require.ErrorIs(t, err, errors.InvalidStatus)
	})

	t.Run("invalid date filter", func(t *testing.T) {
		_, _, err := svc.List(ctx, f.orgID, model.AttendanceListQuery{DateFrom: "03/02/2026"})
		require.ErrorIs(t, err, errors.InvalidRequest)
	})
}
