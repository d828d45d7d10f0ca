package utils

import (
	"regexp"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// ValidatePhone 校验 E.164 风格的电话号码
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
