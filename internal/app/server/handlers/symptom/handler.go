package symptom

import (
	"lfp/dpalert/internal/app/domains/services/svsymptom"
	"lfp/dpalert/internal/app/pkg/logger"
)

// Handler 症状告警 HTTP 处理器
type Handler struct {
	symptomService *svsymptom.SymptomService
	log            logger.Logger
}

// NewHandler 创建症状处理器实例
func NewHandler(symptomService *svsymptom.SymptomService, log logger.Logger) *Handler {
	return &Handler{
		symptomService: symptomService,
		log:            log,
	}
}
