package response

import (
	"math"
	"time"

	"lfp/dpalert/internal/app/domains/diagnose"
	"lfp/dpalert/internal/app/domains/entity/etalert"
)

// FromPredictions 从诊断结果转换为响应 DTO
// 分值在此边界舍入到两位小数，排序阶段使用的是未舍入值
func FromPredictions(predictions []diagnose.Prediction) *ReportResponse {
	items := make([]*PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		item := &PredictionResponse{
			Disease: p.Disease,
			Risk:    p.Risk,
			Action:  p.Action,
		}
		if p.Scored {
			score := math.Round(p.Score*100) / 100
			item.Score = &score
		}
		items = append(items, item)
	}

	return &ReportResponse{
		Success:     true,
		Predictions: items,
	}
}

// FromAlertEntities 从领域对象转换为历史响应 DTO
func FromAlertEntities(alerts []*etalert.Alert) *HistoryResponse {
	history := make([]*AlertRecordResponse, 0, len(alerts))
	for _, a := range alerts {
		history = append(history, &AlertRecordResponse{
			ID:               a.ID,
			AnimalID:         a.AnimalID,
			Symptoms:         a.Symptoms,
			PredictedDisease: a.PredictedDisease,
			RiskLevel:        a.RiskLevel,
			Action:           a.Action,
			Timestamp:        a.Timestamp.Format(time.RFC3339Nano),
		})
	}

	return &HistoryResponse{
		Success: true,
		History: history,
	}
}
