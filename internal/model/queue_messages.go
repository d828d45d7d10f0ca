package model

// AttendanceEventType 考勤事件类型
type AttendanceEventType string

const (
	AttendanceEventCheckIn  AttendanceEventType = "attendance.check_in"
	AttendanceEventCheckOut AttendanceEventType = "attendance.check_out"
)

// AttendanceEventMessage 考勤事件消息，由 API 进程发布、worker 消费
type AttendanceEventMessage struct {
	MessageID      string              `json:"message_id"` // 消息唯一ID，用于幂等性检查
	EventType      AttendanceEventType `json:"event_type"`
	OrganizationID string              `json:"organization_id"`
	EmployeeID     int64               `json:"employee_id"`
	AttendanceID   int64               `json:"attendance_id"`
	Date           string              `json:"date"`
	TimeIn         string              `json:"time_in"`
	TimeOut        string              `json:"time_out,omitempty"`
	Status         AttendanceStatus    `json:"status"`
	Warnings       []string            `json:"warnings,omitempty"`
	OccurredAt     string              `json:"occurred_at"`
}
