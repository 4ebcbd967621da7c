package etalert

import "time"

// 风险等级常量
const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"
)

// Alert 症状告警记录（领域对象）
// 一次提交的每个候选病症各生成一条记录，只追加、不更新不删除
// 风险等级与处置建议在写入时冗余进记录，规则表后续变更不影响历史
type Alert struct {
	ID               int64
	AnimalID         string
	Symptoms         []string
	PredictedDisease string
	RiskLevel        string
	Action           string
	Timestamp        time.Time
}
