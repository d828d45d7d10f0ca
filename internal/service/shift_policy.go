package service

import (
	"time"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
	"github.com/24svcs/svcs-api/utils"
)

// DefaultGraceMinutes 签到宽限期，超过班次开始时间这么多分钟才算迟到
const DefaultGraceMinutes = 15

var policyBaseDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// EvaluateCheckIn 判定签到状态
// 严格晚于 shift_start + grace 才算 LATE，恰好等于边界仍为 PRESENT
// 员工未配置班次开始时间时一律 PRESENT
func EvaluateCheckIn(timeIn, shiftStart string, graceMinutes int) (model.AttendanceStatus, error) {
	if shiftStart == "" {
		return model.AttendanceStatusPresent, nil
	}

	in, err := utils.ParseTime(timeIn, policyBaseDate)
	if err != nil {
		return "", errors.InvalidTimeOfDay
	}
	start, err := utils.ParseTime(shiftStart, policyBaseDate)
	if err != nil {
		return "", errors.InvalidTimeOfDay
	}

	if graceMinutes < 0 {
		graceMinutes = DefaultGraceMinutes
	}

	deadline := start.Add(time.Duration(graceMinutes) * time.Minute)
	if in.After(deadline) {
		return model.AttendanceStatusLate, nil
	}
	return model.AttendanceStatusPresent, nil
}

// EvaluateCheckOut 判定签退是否早退，早退直接拒绝
// 恰好等于 shift_end 允许签退；跨夜班次（shift_end < shift_start）按工作窗口判定
// 员工未配置班次结束时间时不限制签退
func EvaluateCheckOut(timeOut, shiftStart, shiftEnd string) error {
	if shiftEnd == "" {
		return nil
	}

	out, err := utils.ParseTime(timeOut, policyBaseDate)
	if err != nil {
		return errors.InvalidTimeOfDay
	}
	start, err := utils.ParseTime(shiftStart, policyBaseDate)
	if err != nil {
		return errors.InvalidTimeOfDay
	}
	end, err := utils.ParseTime(shiftEnd, policyBaseDate)
	if err != nil {
		return errors.InvalidTimeOfDay
	}

	if end.After(start) {
		// 日班：早于 shift_end 即早退
		if out.Before(end) {
			return errors.EarlyCheckout
		}
		return nil
	}

	// 夜班：时刻落在工作窗口内（>= shift_start 或 < shift_end）即早退
	if !out.Before(start) || out.Before(end) {
		return errors.EarlyCheckout
	}
	return nil
}

// ShiftDuration 计算班次时长，跨夜自动加一天
func ShiftDuration(shiftStart, shiftEnd string) (time.Duration, error) {
	start, err := utils.ParseTime(shiftStart, policyBaseDate)
	if err != nil {
		return 0, errors.InvalidTimeOfDay
	}
	end, err := utils.ParseTime(shiftEnd, policyBaseDate)
	if err != nil {
		return 0, errors.InvalidTimeOfDay
	}

	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start), nil
}

// WorkedDuration 计算实际出勤时长，time_out 早于 time_in 视为跨夜
func WorkedDuration(timeIn, timeOut string) (time.Duration, error) {
	in, err := utils.ParseTime(timeIn, policyBaseDate)
	if err != nil {
		return 0, errors.InvalidTimeOfDay
	}
	out, err := utils.ParseTime(timeOut, policyBaseDate)
	if err != nil {
		return 0, errors.InvalidTimeOfDay
	}

	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	return out.Sub(in), nil
}

// HalfDayWarning 出勤不足班次一半时返回 true，仅作提示不阻断操作
func HalfDayWarning(timeIn, timeOut, shiftStart, shiftEnd string) (bool, error) {
	if shiftStart == "" || shiftEnd == "" {
		return false, nil
	}

	worked, err := WorkedDuration(timeIn, timeOut)
	if err != nil {
		return false, err
	}
	shift, err := ShiftDuration(shiftStart, shiftEnd)
	if err != nil {
		return false, err
	}
	if shift <= 0 {
		return false, nil
	}
	return worked < shift/2, nil
}

// HalfDayDurationAdvisory 管理员将状态改为 HALF_DAY 但出勤已满 4 小时时返回 true
// 仅作提示，不是校验失败
func HalfDayDurationAdvisory(timeIn, timeOut string) (bool, error) {
	worked, err := WorkedDuration(timeIn, timeOut)
	if err != nil {
		return false, err
	}
	return worked >= 4*time.Hour, nil
}
