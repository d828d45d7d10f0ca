package service

import (
	"context"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/pkg/snowflake"
	"github.com/24svcs/svcs-api/utils"
)

// EmployeeService 员工管理
type EmployeeService struct {
	employees *repository.EmployeeRepo
}

func NewEmployeeService(employees *repository.EmployeeRepo) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// Create 创建员工，班次时间为 "HH:MM:SS"，可以不配置
// 两端都配置时允许跨夜但起止不能相同
func (s *EmployeeService) Create(ctx context.Context, orgID string, req model.CreateEmployeeRequest) (*model.Employee, error) {
	if req.ShiftStart != "" && !utils.ValidTimeOfDay(req.ShiftStart) {
		return nil, errors.InvalidTimeOfDay
	}
	if req.ShiftEnd != "" && !utils.ValidTimeOfDay(req.ShiftEnd) {
		return nil, errors.InvalidTimeOfDay
	}
	if req.ShiftStart != "" && req.ShiftStart == req.ShiftEnd {
		return nil, errors.InvalidShiftRange
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		return nil, errors.InvalidPhone
	}

	id, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	emp := &model.Employee{
		BaseModel:      model.BaseModel{ID: id},
		OrganizationID: orgID,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		ShiftStart:     req.ShiftStart,
		ShiftEnd:       req.ShiftEnd,
		Status:         model.EmployeeStatusActive,
	}

	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Get 查询员工，组织不匹配视为不存在
func (s *EmployeeService) Get(ctx context.Context, orgID string, id int64) (*model.Employee, error) {
	emp, err := s.employees.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errors.EmployeeNotFound
	}
	return emp, nil
}

// List 查询员工列表
func (s *EmployeeService) List(ctx context.Context, orgID string, q model.EmployeeListQuery) ([]model.Employee, int64, error) {
	return s.employees.List(ctx, orgID, q)
}
