package model

// EmployeeStatus 员工状态枚举
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee 员工模型，班次时间以组织时区下的 "HH:MM:SS" 存储
type Employee struct {
	BaseModel
	OrganizationID string         `gorm:"type:uuid;not null;index:idx_employees_org" json:"organization_id"`
	FirstName      string         `gorm:"type:varchar(64);not null" json:"first_name"`
	MiddleName     string         `gorm:"type:varchar(64)" json:"middle_name,omitempty"`
	LastName       string         `gorm:"type:varchar(64);not null" json:"last_name"`
	Email          string         `gorm:"type:varchar(128)" json:"email,omitempty"`
	Phone          string         `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Position       string         `gorm:"type:varchar(64)" json:"position,omitempty"`
	ShiftStart     string         `gorm:"type:varchar(8)" json:"shift_start"`
	ShiftEnd       string         `gorm:"type:varchar(8)" json:"shift_end"`
	Status         EmployeeStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}

// FullName 拼接员工姓名，用于列表过滤和告警消息
func (e *Employee) FullName() string {
	name := e.FirstName
	if e.MiddleName != "" {
		name += " " + e.MiddleName
	}
	if e.LastName != "" {
		name += " " + e.LastName
	}
	return name
}
