package model

// AttendanceStatus 考勤状态枚举
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"  // 准时
	AttendanceStatusLate    AttendanceStatus = "LATE"     // 迟到
	AttendanceStatusHalfDay AttendanceStatus = "HALF_DAY" // 半天，仅管理员可设置
)

// Attendance 考勤记录，每个员工每个组织本地日期最多一条
// Date 为组织时区下的 "YYYY-MM-DD"，TimeIn/TimeOut 为同一时区下的 "HH:MM:SS"
// Date 按字符串列存储，date 类型列在部分方言下回读时会带上时间部分，破坏按日查询和唯一索引
type Attendance struct {
	BaseModel
	OrganizationID string           `gorm:"type:uuid;not null;index:idx_attendances_org_date,priority:1" json:"organization_id"`
	EmployeeID     int64            `gorm:"not null;uniqueIndex:idx_attendances_employee_date,priority:1" json:"employee_id,string"`
	Date           string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendances_employee_date,priority:2;index:idx_attendances_org_date,priority:2" json:"date"`
	TimeIn         string           `gorm:"type:varchar(8);not null" json:"time_in"`
	TimeOut        *string          `gorm:"type:varchar(8)" json:"time_out"`
	Status         AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
	Note           string           `gorm:"type:text" json:"note,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendances"
}

// CheckedOut 是否已完成当日签退
func (a *Attendance) CheckedOut() bool {
	return a.TimeOut != nil && *a.TimeOut != ""
}
