package models

// Comment 由后端在提交评论时创建并完成情感分析，前端只会整体重新拉取，从不修改
type Comment struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	User         UserRef   `json:"user"`
	Text         string    `json:"text"`
	Sentiment    Sentiment `json:"sentiment"`
	Confidence   float64   `json:"confidence"` // 0-100
	AnalysisDate Timestamp `json:"analysis_date"`
}

// ConfidenceWidth 置信度进度条宽度，限制在 [0,100]
func (c Comment) ConfidenceWidth() float64 {
	switch {
	case c.Confidence < 0:
		return 0
	case c.Confidence > 100:
		return 100
	}
	return c.Confidence
}

// CommentStatistics 后端 /api/comments/statistics 的返回
type CommentStatistics struct {
	TotalComments     int                           `json:"total_comments"`
	AverageConfidence float64                       `json:"average_confidence"`
	BySentiment       map[string]SentimentBreakdown `json:"by_sentiment"`
}

type SentimentBreakdown struct {
	Total          int     `json:"total"`
	ConfidenceMean float64 `json:"confidence_mean"`
}
