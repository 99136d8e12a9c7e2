package dashboard

import "sentiview/internal/models"

// QuickState 快速分析区域的状态
type QuickState string

const (
	QuickIdle    QuickState = "idle"
	QuickWarning QuickState = "warning"
	QuickLoading QuickState = "loading"
	QuickResult  QuickState = "result"
	QuickError   QuickState = "error"
)

const (
	msgQuickEmpty = "⚠️ Escribe un texto para analizar"
	msgQuickError = "❌ Error al analizar"
)

// QuickOutcome 快速分析的展示数据
type QuickOutcome struct {
	State    QuickState
	Message  string
	Analysis *models.Analysis
}
