package diagnose

import "strings"

// Normalize 规范化观测症状：小写并去除首尾空白
// 重复项不去重，集合匹配下不影响得分
func Normalize(symptoms []string) map[string]struct{} {
	observed := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		observed[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return observed
}

// ScoreAll 对规则表逐条计算匹配分值
// 每条规则产出一条结果（包括零分），symptoms 可为空
// 分值 = 命中的要求症状数 / 要求症状总数，此处不舍入
func ScoreAll(catalog Catalog, symptoms []string) []Prediction {
	observed := Normalize(symptoms)
	signatures := catalog.Signatures()

	scored := make([]Prediction, 0, len(signatures))
	for _, sig := range signatures {
		matchCount := 0
		for _, required := range sig.Match {
			if _, ok := observed[strings.ToLower(required)]; ok {
				matchCount++
			}
		}

		score := 0.0
		if len(sig.Match) > 0 {
			score = float64(matchCount) / float64(len(sig.Match))
		}

		scored = append(scored, Prediction{
			Disease: sig.Disease,
			Risk:    sig.Risk,
			Action:  sig.Action,
			Score:   score,
			Scored:  true,
		})
	}

	return scored
}
