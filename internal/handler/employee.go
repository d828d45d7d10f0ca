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
)

// CreateEmployee 创建员工
// POST /v1/organizations/:organization_id/employees
func CreateEmployee(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	var req model.CreateEmployeeRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	emp, err := service.Employee().Create(ctx, orgID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, toEmployeeData(emp))
}

// GetEmployee 查询员工
// GET /v1/organizations/:organization_id/employees/:employee_id
func GetEmployee(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	employeeID, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.InvalidEmployeeID)
		return
	}

	emp, err := service.Employee().Get(ctx, orgID, employeeID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, toEmployeeData(emp))
}

// ListEmployees 查询员工列表
// GET /v1/organizations/:organization_id/employees
func ListEmployees(ctx context.Context, c *app.RequestContext) {
	orgID, ok := middleware.GetOrganizationID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.OrganizationNotFound)
		return
	}

	var q model.EmployeeListQuery
	if err := c.BindQuery(&q); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	emps, total, err := service.Employee().List(ctx, orgID, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	data := make([]model.EmployeeData, 0, len(emps))
	for i := range emps {
		data = append(data, toEmployeeData(&emps[i]))
	}

	response.SuccessWithMeta(ctx, c, data, map[string]interface{}{"total": total})
}

func toEmployeeData(emp *model.Employee) model.EmployeeData {
	return model.EmployeeData{
		ID:         strconv.FormatInt(emp.ID, 10),
		FirstName:  emp.FirstName,
		MiddleName: emp.MiddleName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Position:   emp.Position,
		ShiftStart: emp.ShiftStart,
		ShiftEnd:   emp.ShiftEnd,
		Status:     string(emp.Status),
	}
}
