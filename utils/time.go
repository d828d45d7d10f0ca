package utils

import (
	"fmt"
	"time"
)

const (
	TimeOfDayLayout = "15:04:05"
	DateLayout      = "2006-01-02"
)

// ParseTime 解析时间字符串（格式：HH:MM:SS）并应用到指定日期
func ParseTime(timeStr string, date time.Time) (time.Time, error) {
	if timeStr == "" {
		return date, nil
	}

	parsedTime, err := time.Parse(TimeOfDayLayout, timeStr)
	if err != nil {
		return date, err
	}

	return time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		parsedTime.Hour(),
		parsedTime.Minute(),
		parsedTime.Second(),
		0,
		date.Location(),
	), nil
}

// ValidTimeOfDay 校验 "HH:MM:SS" 时间字符串
func ValidTimeOfDay(timeStr string) bool {
	_, err := time.Parse(TimeOfDayLayout, timeStr)
	return err == nil
}

// ValidDate 校验 "YYYY-MM-DD" 日期字符串
func ValidDate(dateStr string) bool {
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}

// FormatDuration 计算上下班间隔并格式化为 "7h 45m"
// 下班时间早于上班时间视为跨夜班次，加一天再计算
func FormatDuration(timeIn, timeOut string) (string, error) {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	in, err := ParseTime(timeIn, base)
	if err != nil {
		return "", err
	}
	out, err := ParseTime(timeOut, base)
	if err != nil {
		return "", err
	}

	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	d := out.Sub(in)
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60), nil
}
