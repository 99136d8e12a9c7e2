package utils

import (
	"strconv"
	"strings"
)

// FormInt 把表单里的数字转为 int，空值或非法值返回 0
// 后端会把 0 当作缺失的 ID 拒绝
func FormInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return 0
	}
	return i
}
