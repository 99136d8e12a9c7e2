package models

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp 兼容后端各种时间格式（SQLite 的 "2006-01-02 15:04:05"、RFC3339、RFC1123 等）
// 解析失败时保持零值，展示层会显示为 Invalid Date
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			t.Time = time.Time{}
			return nil
		}
		// 不带时区的时间按 UTC 处理，和 SQLite CURRENT_TIMESTAMP 一致
		parsed, err := dateparse.ParseIn(v, time.UTC)
		if err != nil {
			t.Time = time.Time{}
			return nil
		}
		t.Time = parsed
	case float64:
		t.Time = time.UnixMilli(int64(v)).UTC()
	default:
		t.Time = time.Time{}
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
