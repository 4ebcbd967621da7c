package rpalert

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"lfp/dpalert/internal/app/domains/entity/etalert"
	"lfp/dpalert/internal/app/infra/entity"
	"lfp/dpalert/internal/app/pkg/errorx"
)

// AlertRepositoryImpl 告警仓储实现（MySQL）
// ID 由表自增主键分配，并发提交下仍保证严格递增且唯一
type AlertRepositoryImpl struct {
	db *gorm.DB
}

// OpenMySQL 连接 MySQL 并确保告警表存在
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&entity.SymptomAlert{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewAlertRepository 创建告警仓储实例
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &AlertRepositoryImpl{db: db}
}

// Append 追加告警记录，回填自增 ID 与写入时间
func (r *AlertRepositoryImpl) Append(ctx context.Context, alert *etalert.Alert) error {
	po, err := r.toGormModel(alert)
	if err != nil {
		return errorx.NewStorageError("marshal alert", err)
	}
	po.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return errorx.NewStorageError("append alert", err)
	}

	alert.ID = po.ID
	alert.Timestamp = po.CreatedAt
	return nil
}

// ListByAnimal 按 animal_id 查询，按追加顺序（主键升序）返回
func (r *AlertRepositoryImpl) ListByAnimal(ctx context.Context, animalID string) ([]*etalert.Alert, error) {
	var pos []entity.SymptomAlert
	err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("id ASC").
		Find(&pos).Error
	if err != nil {
		return nil, errorx.NewStorageError("list alerts", err)
	}

	alerts := make([]*etalert.Alert, 0, len(pos))
	for i := range pos {
		alert, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, errorx.NewStorageError("unmarshal alert", err)
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// Close 关闭底层连接
func (r *AlertRepositoryImpl) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// toGormModel 领域对象转换为 GORM 模型
func (r *AlertRepositoryImpl) toGormModel(alert *etalert.Alert) (*entity.SymptomAlert, error) {
	symptomsJSON, err := json.Marshal(alert.Symptoms)
	if err != nil {
		return nil, err
	}

	return &entity.SymptomAlert{
		AnimalID:         alert.AnimalID,
		Symptoms:         symptomsJSON,
		PredictedDisease: alert.PredictedDisease,
		RiskLevel:        alert.RiskLevel,
		Action:           alert.Action,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *AlertRepositoryImpl) toDomainModel(po *entity.SymptomAlert) (*etalert.Alert, error) {
	var symptoms []string
	if err := json.Unmarshal(po.Symptoms, &symptoms); err != nil {
		return nil, err
	}

	return &etalert.Alert{
		ID:               po.ID,
		AnimalID:         po.AnimalID,
		Symptoms:         symptoms,
		PredictedDisease: po.PredictedDisease,
		RiskLevel:        po.RiskLevel,
		Action:           po.Action,
		Timestamp:        po.CreatedAt,
	}, nil
}
