package model

// ========== Employee 相关 DTO ==========

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
}

// EmployeeData 员工数据
type EmployeeData struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	ShiftStart string `json:"shift_start,omitempty"`
	ShiftEnd   string `json:"shift_end,omitempty"`
	Status     string `json:"status"`
}

// EmployeeListQuery 员工列表查询参数
type EmployeeListQuery struct {
	Status string `query:"status"`
	Name   string `query:"name"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// PreferencesData 组织偏好数据
type PreferencesData struct {
	Timezone       string `json:"timezone"`
	GraceMinutes   int    `json:"grace_minutes"`
	AlertOnLate    bool   `json:"alert_on_late"`
	AlertOnHalfDay bool   `json:"alert_on_half_day"`
}

// UpdatePreferencesRequest 更新组织偏好请求
type UpdatePreferencesRequest struct {
	Timezone       *string `json:"timezone"`
	GraceMinutes   *int    `json:"grace_minutes"`
	AlertOnLate    *bool   `json:"alert_on_late"`
	AlertOnHalfDay *bool   `json:"alert_on_half_day"`
}
