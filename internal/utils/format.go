package utils

import (
	"fmt"
	"strconv"
	"time"
)

// InvalidDate 时间无法解析时的展示文字（与浏览器 Date 的表现一致）
const InvalidDate = "Invalid Date"

// FormatNumber 以最短形式输出数字：80 -> "80"，85.5 -> "85.5"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSpanishDateTime 按 es-ES 习惯格式化：d/m/yyyy, H:MM:SS
func FormatSpanishDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidDate
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}
