package diagnose

// Signature 病症特征规则
// Match 为该病症要求的症状集合（小写规范形式），不允许为空，
// 其长度作为匹配分母
type Signature struct {
	Match   []string
	Disease string
	Risk    string
	Action  string
}

// Prediction 单条候选诊断结果
// Score 为未舍入的匹配分值，范围 [0,1]，对外展示时才舍入到两位小数；
// Scored 为 false 时表示无任何规则命中的 Unknown 兜底结果，不输出分值
type Prediction struct {
	Disease string
	Risk    string
	Action  string
	Score   float64
	Scored  bool
}
