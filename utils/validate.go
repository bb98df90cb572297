package utils

import (
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^0\d{8,9}$`)
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// namePlaceholders 用户常用的"未填写"占位值
var namePlaceholders = map[string]bool{
	"":        true,
	"-":       true,
	"ไม่ระบุ": true,
	"ไม่ทราบ": true,
}

// IsValidPhone 验证手机号是否有效（0开头，后跟8-9位数字）
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// IsValidEmail 验证邮箱格式 local@domain.tld
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidName 验证姓名非空且不是占位值
func IsValidName(name string) bool {
	return !namePlaceholders[strings.TrimSpace(name)]
}
