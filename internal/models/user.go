package models

import "fmt"

// User 后端返回的用户，创建后不可修改，只在发表评论时按 ID 引用
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisterDate Timestamp `json:"register_date"`
}

// OptionLabel 下拉框里展示的文字："name (email)"
func (u User) OptionLabel() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}

// UserRef 评论里嵌带的作者信息
type UserRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
