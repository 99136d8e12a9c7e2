package dashboard

import (
	"math"
	"strconv"

	"sentiview/internal/models"
)

// Statistics 评论统计，字段已经是页面上展示的字符串
type Statistics struct {
	Total           int
	AvgConfidence   string
	PositivePercent string
}

// ComputeStatistics 纯函数：总数、平均置信度（一位小数）、正面占比（取整）
// 没有评论时两项都是 "0%"，不做除法
func ComputeStatistics(comments []models.Comment) Statistics {
	total := len(comments)
	if total == 0 {
		return Statistics{Total: 0, AvgConfidence: "0%", PositivePercent: "0%"}
	}

	var sum float64
	positives := 0
	for _, c := range comments {
		sum += c.Confidence
		if c.Sentiment.Normalized() == models.Positive {
			positives++
		}
	}

	// 一位小数，中间值进位：70.25 -> 70.3
	avg := math.Round(sum/float64(total)*10) / 10
	percent := math.Round(float64(positives) / float64(total) * 100)

	return Statistics{
		Total:           total,
		AvgConfidence:   strconv.FormatFloat(avg, 'f', 1, 64) + "%",
		PositivePercent: strconv.FormatFloat(percent, 'f', 0, 64) + "%",
	}
}

// FilterComments 纯函数：按筛选条件过滤，all 原样返回
func FilterComments(comments []models.Comment, filter models.Filter) []models.Comment {
	if filter == models.FilterAll {
		return comments
	}
	out := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if filter.Matches(c.Sentiment) {
			out = append(out, c)
		}
	}
	return out
}
