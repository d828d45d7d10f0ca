package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 组织与成员相关错误。
var (
	OrganizationNotFound = Definition{Code: "ORGANIZATION_NOT_FOUND", Message: "Organization not found"}
	PermissionDenied     = Definition{Code: "PERMISSION_DENIED", Message: "You do not have permission to perform this action"}
	Unauthorized         = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	PreferencesNotFound  = Definition{Code: "PREFERENCES_NOT_FOUND", Message: "Organization preferences not found"}
	InvalidTimezone      = Definition{Code: "INVALID_TIMEZONE", Message: "Invalid timezone identifier"}
)

// 员工模块错误。
var (
	EmployeeNotFound  = Definition{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found in this organization"}
	InvalidEmployeeID = Definition{Code: "INVALID_EMPLOYEE_ID", Message: "Invalid employee ID format"}
	InvalidPhone      = Definition{Code: "INVALID_PHONE", Message: "Invalid phone number"}
	InvalidShiftRange = Definition{Code: "INVALID_SHIFT_RANGE", Message: "Shift start and end times must differ"}
)

// 考勤状态机错误。
var (
	AlreadyCheckedOut  = Definition{Code: "ALREADY_CHECKED_OUT", Message: "Employee has already checked out today"}
	EarlyCheckout      = Definition{Code: "EARLY_CHECKOUT", Message: "You cannot check out before your scheduled end time. Please contact an administrator"}
	AttendanceNotFound = Definition{Code: "ATTENDANCE_NOT_FOUND", Message: "Attendance record not found"}
	InvalidTimeRange   = Definition{Code: "INVALID_TIME_RANGE", Message: "Check-out time must be after check-in time"}
	InvalidTimeOfDay   = Definition{Code: "INVALID_TIME_OF_DAY", Message: "Time must be in HH:MM:SS format"}
	InvalidStatus      = Definition{Code: "INVALID_STATUS", Message: "Invalid attendance status"}
)

// 通用请求错误。
var (
	InvalidRequest = Definition{Code: "INVALID_REQUEST", Message: "Invalid request payload"}
	RateLimited    = Definition{Code: "RATE_LIMITED", Message: "Too many requests, please try again later"}
)

// token 相关哨兵错误，仅在 pkg/token 内部流转。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator is not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token claims")
)

// 存储层哨兵错误。
var (
	ErrDatabaseConnectionNil = errors.New("database connection is nil")
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	OrganizationNotFound.Code: OrganizationNotFound,
	PermissionDenied.Code:     PermissionDenied,
	Unauthorized.Code:         Unauthorized,
	PreferencesNotFound.Code:  PreferencesNotFound,
	InvalidTimezone.Code:      InvalidTimezone,
	EmployeeNotFound.Code:     EmployeeNotFound,
	InvalidEmployeeID.Code:    InvalidEmployeeID,
	InvalidPhone.Code:         InvalidPhone,
	InvalidShiftRange.Code:    InvalidShiftRange,
	AlreadyCheckedOut.Code:    AlreadyCheckedOut,
	EarlyCheckout.Code:        EarlyCheckout,
	AttendanceNotFound.Code:   AttendanceNotFound,
	InvalidTimeRange.Code:     InvalidTimeRange,
	InvalidTimeOfDay.Code:     InvalidTimeOfDay,
	InvalidStatus.Code:        InvalidStatus,
	InvalidRequest.Code:       InvalidRequest,
	RateLimited.Code:          RateLimited,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
