package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/24svcs/svcs-api/internal/middleware"
	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/service"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/response"
	"github.com/24svcs/svcs-api/utils"
)

// CheckInOut 打卡入口，同一员工当天第一次调用签到、第二次签退
// POST /v1/organizations/:organization_id/attendances/check-in-out
func CheckInOut(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	var req model.CheckInOutRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	employeeID, err := strconv.ParseInt(req.EmployeeID, 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.InvalidEmployeeID)
		return
	}

	att, warnings, err := service.Attendance().CheckInOut(ctx, orgID, employeeID, req.Note)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	data := toAttendanceData(&att.Attendance, att.EmployeeName())
	if len(warnings) > 0 {
		response.SuccessWithMeta(ctx, c, data, map[string]interface{}{"warnings": warnings})
		return
	}
	response.Success(ctx, c, data)
}

// ListAttendances 查询考勤列表
// GET /v1/organizations/:organization_id/attendances
func ListAttendances(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	var q model.AttendanceListQuery
	if err := c.BindQuery(&q); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	rows, total, err := service.Attendance().List(ctx, orgID, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	data := make([]model.AttendanceData, 0, len(rows))
	for i := range rows {
		data = append(data, toAttendanceData(&rows[i].Attendance, rows[i].EmployeeName()))
	}

	response.SuccessWithMeta(ctx, c, data, map[string]interface{}{"total": total})
}

// GetAttendance 查询单条考勤记录
// GET /v1/organizations/:organization_id/attendances/:attendance_id
func GetAttendance(ctx context.Context, c *app.RequestContext) {
	orgID, attendanceID, ok := attendanceParams(ctx, c)
	if !ok {
		return
	}

	att, err := service.Attendance().Get(ctx, orgID, attendanceID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, toAttendanceData(&att.Attendance, att.EmployeeName()))
}

// UpdateAttendance 管理员修正考勤记录
// PATCH /v1/organizations/:organization_id/attendances/:attendance_id
func UpdateAttendance(ctx context.Context, c *app.RequestContext) {
	orgID, attendanceID, ok := attendanceParams(ctx, c)
	if !ok {
		return
	}

	var req model.AttendanceUpdateRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	att, warnings, err := service.Attendance().AdminUpdate(ctx, orgID, attendanceID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	data := toAttendanceData(&att.Attendance, att.EmployeeName())
	if len(warnings) > 0 {
		response.SuccessWithMeta(ctx, c, data, map[string]interface{}{"warnings": warnings})
		return
	}
	response.Success(ctx, c, data)
}

// DeleteAttendance 管理员删除考勤记录
// DELETE /v1/organizations/:organization_id/attendances/:attendance_id
func DeleteAttendance(ctx context.Context, c *app.RequestContext) {
	orgID, attendanceID, ok := attendanceParams(ctx, c)
	if !ok {
		return
	}

	if err := service.Attendance().Delete(ctx, orgID, attendanceID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

func attendanceParams(ctx context.Context, c *app.RequestContext) (string, int64, bool) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return "", 0, false
	}

	attendanceID, err := strconv.ParseInt(c.Param("attendance_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.AttendanceNotFound)
		return "", 0, false
	}

	return orgID, attendanceID, true
}

func toAttendanceData(att *model.Attendance, employeeName string) model.AttendanceData {
	data := model.AttendanceData{
		ID:           strconv.FormatInt(att.ID, 10),
		EmployeeID:   strconv.FormatInt(att.EmployeeID, 10),
		EmployeeName: employeeName,
		Date:         att.Date,
		TimeIn:       att.TimeIn,
		TimeOut:      att.TimeOut,
		Status:       string(att.Status),
		Note:         att.Note,
	}

	if att.CheckedOut() {
		if duration, err := utils.FormatDuration(att.TimeIn, *att.TimeOut); err == nil {
			data.Duration = duration
		}
	}
	return data
}
