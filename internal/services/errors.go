package services

import (
	"errors"
	"fmt"
)

// APIError 后端返回了非 2xx 状态码，Message 为后端 JSON 里的 error 字段
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// AsAPIError 判断 err 是否为后端业务错误（而非网络/解析错误）
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
