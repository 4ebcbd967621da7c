package request

// ReportSymptomRequest 症状提交请求
// symptoms 允许为空数组（触发 Unknown 兜底），缺失或 null 视为参数错误，
// 因此不加 required 标签，由 handler 显式判空
type ReportSymptomRequest struct {
	AnimalID string   `json:"animal_id" binding:"required" example:"cow-1"`
	Symptoms []string `json:"symptoms"`
}
