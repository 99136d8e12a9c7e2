package models

// Analysis 一次情感分析的结果（快速分析接口 / 评论创建接口都会返回）
type Analysis struct {
	Sentiment     Sentiment          `json:"sentiment"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// CommentResult POST /api/comments 成功时的返回
type CommentResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Data     Comment  `json:"data"`
	Analysis Analysis `json:"analysis"`
}

// BackendHealth 后端 /health 的返回
type BackendHealth struct {
	Status       string `json:"status"`
	ModelTrained bool   `json:"model_trained"`
}
