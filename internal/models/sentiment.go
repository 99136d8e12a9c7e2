package models

import "strings"

// Sentiment 后端给出的情感标签，原样保存，比较时忽略大小写
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Sentiments 全部已知情感，顺序即页面上筛选按钮的顺序
var Sentiments = []Sentiment{Positive, Negative, Neutral}

// Normalized 转成小写后的标签
func (s Sentiment) Normalized() Sentiment {
	return Sentiment(strings.ToLower(strings.TrimSpace(string(s))))
}

// Known 是否为已知的三种情感之一
func (s Sentiment) Known() bool {
	switch s.Normalized() {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Emoji 情感对应的表情，未知标签回退到 😐
func (s Sentiment) Emoji() string {
	switch s.Normalized() {
	case Positive:
		return "😊"
	case Negative:
		return "😞"
	case Neutral:
		return "😐"
	default:
		return "😐"
	}
}

// Label 徽章上显示的大写标签
func (s Sentiment) Label() string {
	return strings.ToUpper(string(s))
}

// Filter 评论列表的筛选条件
type Filter string

const FilterAll Filter = "all"

// ParseFilter 解析筛选条件，只接受 all 和三种情感
func ParseFilter(v string) (Filter, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == string(FilterAll) {
		return FilterAll, true
	}
	if s := Sentiment(v); s.Known() {
		return Filter(s), true
	}
	return "", false
}

// Matches 评论情感是否命中筛选条件
func (f Filter) Matches(s Sentiment) bool {
	if f == FilterAll {
		return true
	}
	return s.Normalized() == Sentiment(f)
}
