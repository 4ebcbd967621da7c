package response

// PredictionResponse 候选诊断（DTO）
// score 为两位小数；Unknown 兜底结果不输出 score 字段
type PredictionResponse struct {
	Disease string   `json:"disease"`
	Risk    string   `json:"risk"`
	Action  string   `json:"action"`
	Score   *float64 `json:"score,omitempty"`
}

// ReportResponse 症状提交响应
type ReportResponse struct {
	Success     bool                  `json:"success"`
	Predictions []*PredictionResponse `json:"predictions"`
}

// AlertRecordResponse 历史告警记录（DTO）
type AlertRecordResponse struct {
	ID               int64    `json:"id"`
	AnimalID         string   `json:"animal_id"`
	Symptoms         []string `json:"symptoms"`
	PredictedDisease string   `json:"predicted_disease"`
	RiskLevel        string   `json:"risk_level"`
	Action           string   `json:"action"`
	Timestamp        string   `json:"timestamp"`
}

// HistoryResponse 历史查询响应
type HistoryResponse struct {
	Success bool                   `json:"success"`
	History []*AlertRecordResponse `json:"history"`
}
