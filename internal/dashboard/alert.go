package dashboard

import "time"

// AlertSlot 页面上的提示区域
type AlertSlot string

const (
	AlertUsers    AlertSlot = "users"
	AlertComments AlertSlot = "comments"
)

// ParseAlertSlot 解析 URL 里的提示区域
func ParseAlertSlot(v string) (AlertSlot, bool) {
	switch AlertSlot(v) {
	case AlertUsers, AlertComments:
		return AlertSlot(v), true
	}
	return "", false
}

// ElementID 页面上对应的元素 ID
func (s AlertSlot) ElementID() string {
	if s == AlertComments {
		return "commentAlert"
	}
	return "userAlert"
}

type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Alert 一条会自动消失的提示
// Strong/Suffix 只在评论分析成功时使用：Text <strong>Strong</strong> Suffix
type Alert struct {
	Kind      AlertKind
	Text      string
	Strong    string
	Suffix    string
	ExpiresAt time.Time
}

// Remaining 距离自动消失还剩多久
func (a Alert) Remaining(now time.Time) time.Duration {
	d := a.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
