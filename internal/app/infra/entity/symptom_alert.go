package entity

import (
	"time"

	"gorm.io/datatypes"
)

// SymptomAlert 症状告警实体（GORM 模型）
type SymptomAlert struct {
	ID               int64          `gorm:"column:id;primaryKey;autoIncrement"`
	AnimalID         string         `gorm:"column:animal_id;type:varchar(64);not null;index:idx_animal_id"`
	Symptoms         datatypes.JSON `gorm:"column:symptoms;type:json;not null"`
	PredictedDisease string         `gorm:"column:predicted_disease;type:varchar(128);not null"`
	RiskLevel        string         `gorm:"column:risk_level;type:varchar(16);not null"`
	Action           string         `gorm:"column:action;type:varchar(255);not null"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null;index:idx_created_at"`
}

// TableName 指定表名
func (SymptomAlert) TableName() string {
	return "symptom_alerts"
}
