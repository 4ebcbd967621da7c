package diagnose

import (
	"sort"

	"lfp/dpalert/internal/app/domains/entity/etalert"
)

// 无规则命中时的兜底结果
const (
	UnknownDisease = "Unknown"
	UnknownAction  = "Monitor animal, consult vet if persists"
)

// Rank 对打分结果排序并筛选
// 按未舍入分值降序稳定排序（平局保持规则表顺序），
// 保留全部正分结果；无正分结果时返回单条 Unknown 兜底
func Rank(scored []Prediction) []Prediction {
	ranked := make([]Prediction, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	matches := make([]Prediction, 0, len(ranked))
	for _, p := range ranked {
		if p.Score > 0 {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return []Prediction{{
			Disease: UnknownDisease,
			Risk:    etalert.RiskLow,
			Action:  UnknownAction,
		}}
	}

	return matches
}

// Predict 打分加排序的组合入口
func Predict(catalog Catalog, symptoms []string) []Prediction {
	return Rank(ScoreAll(catalog, symptoms))
}
