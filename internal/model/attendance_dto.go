package model

// ========== Attendance 相关 DTO ==========

// CheckInOutRequest 打卡请求，方向由当前状态推断，不由客户端指定
type CheckInOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Note       string `json:"note"`
}

// AttendanceData 考勤记录数据
type AttendanceData struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	TimeIn       string  `json:"time_in"`
	TimeOut      *string `json:"time_out"`
	Status       string  `json:"status"`
	Note         string  `json:"note,omitempty"`
	Duration     string  `json:"duration,omitempty"`
}

// AttendanceListQuery 考勤列表查询参数
type AttendanceListQuery struct {
	Status       string `query:"status"`
	EmployeeName string `query:"employee_name"`
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	Limit        int    `query:"limit"`
	Offset       int    `query:"offset"`
}

// AttendanceUpdateRequest 管理员修正考勤记录请求，所有字段可改
type AttendanceUpdateRequest struct {
	EmployeeID *string `json:"employee_id"`
	Date       *string `json:"date"`
	TimeIn     *string `json:"time_in"`
	TimeOut    *string `json:"time_out"`
	Status     *string `json:"status"`
	Note       *string `json:"note"`
}
