package svsymptom

import (
	"context"
	"strings"

	"lfp/dpalert/internal/app/domains/diagnose"
	"lfp/dpalert/internal/app/domains/entity/etalert"
	"lfp/dpalert/internal/app/domains/repo/rpalert"
	"lfp/dpalert/internal/app/pkg/errorx"
	"lfp/dpalert/internal/app/pkg/logger"
)

// Notifier 高风险告警通知接口
type Notifier interface {
	NotifyHighRisk(ctx context.Context, animalID, disease, riskLevel string, alertID int64) error
}

// SymptomService 症状诊断服务，负责提交与查询的业务编排
type SymptomService struct {
	catalog   diagnose.Catalog
	alertRepo rpalert.AlertRepository
	notifier  Notifier
	log       logger.Logger
}

// NewSymptomService 创建症状诊断服务实例
// notifier 可为 nil，表示关闭高风险通知
func NewSymptomService(
	catalog diagnose.Catalog,
	alertRepo rpalert.AlertRepository,
	notifier Notifier,
	log logger.Logger,
) *SymptomService {
	return &SymptomService{
		catalog:   catalog,
		alertRepo: alertRepo,
		notifier:  notifier,
		log:       log,
	}
}

// Report 处理一次症状提交（完整业务流程）
// 1. 参数校验（失败则不做任何评分/落库）
// 2. 规则打分并排序
// 3. 每条候选诊断各落一条告警记录，按排序顺序追加
// 4. 高风险候选发布通知（尽力而为）
// 存储失败即中止剩余追加并向上返回，已写入的记录不回滚
func (s *SymptomService) Report(ctx context.Context, animalID string, symptoms []string) ([]diagnose.Prediction, error) {
	if strings.TrimSpace(animalID) == "" || symptoms == nil {
		return nil, errorx.NewValidationError("animal_id and symptoms[] required")
	}

	predictions := diagnose.Predict(s.catalog, symptoms)

	for _, pred := range predictions {
		alert := &etalert.Alert{
			AnimalID:         animalID,
			Symptoms:         symptoms,
			PredictedDisease: pred.Disease,
			RiskLevel:        pred.Risk,
			Action:           pred.Action,
		}

		if err := s.alertRepo.Append(ctx, alert); err != nil {
			return nil, err
		}

		if pred.Risk == etalert.RiskHigh && s.notifier != nil {
			if err := s.notifier.NotifyHighRisk(ctx, animalID, pred.Disease, pred.Risk, alert.ID); err != nil {
				s.log.Warnf(ctx, "notify high risk alert failed: animal_id=%s disease=%s err=%v",
					animalID, pred.Disease, err)
			}
		}
	}

	return predictions, nil
}

// History 查询指定动物的全部历史告警，按追加顺序返回
func (s *SymptomService) History(ctx context.Context, animalID string) ([]*etalert.Alert, error) {
	if strings.TrimSpace(animalID) == "" {
		return nil, errorx.NewValidationError("animal_id required")
	}

	return s.alertRepo.ListByAnimal(ctx, animalID)
}
