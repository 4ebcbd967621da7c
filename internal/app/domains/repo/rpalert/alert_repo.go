package rpalert

import (
	"context"

	"lfp/dpalert/internal/app/domains/entity/etalert"
)

// AlertRepository 告警日志仓储接口（只追加）
// 实现需保证 ID 全局严格递增且唯一，ListByAnimal 按追加顺序返回
type AlertRepository interface {
	// Append 追加一条告警记录，写入时分配 ID 与时间戳并回填到 alert
	Append(ctx context.Context, alert *etalert.Alert) error

	// ListByAnimal 按 animal_id 精确匹配查询全部历史记录
	ListByAnimal(ctx context.Context, animalID string) ([]*etalert.Alert, error)

	// Close 释放底层存储资源
	Close() error
}
