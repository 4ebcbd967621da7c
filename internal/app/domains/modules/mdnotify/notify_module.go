package mdnotify

import (
	"context"
	"time"

	"lfp/dpalert/internal/app/infra/persistence/redis"
)

// HighRiskNotification 高风险告警通知消息
type HighRiskNotification struct {
	AnimalID  string `json:"animal_id"`
	Disease   string `json:"disease"`
	RiskLevel string `json:"risk_level"`
	AlertID   int64  `json:"alert_id"`
	Timestamp int64  `json:"timestamp"`
}

// NotifyModule 告警通知模块
// 职责：
// 1. 组装 Redis 发布客户端与频道命名
// 2. 构造高风险通知消息格式
type NotifyModule struct {
	redisClient *redis.PubSubClient
	channel     string
}

// NewNotifyModule 创建通知模块实例
func NewNotifyModule(redisClient *redis.PubSubClient, channel string) *NotifyModule {
	return &NotifyModule{
		redisClient: redisClient,
		channel:     channel,
	}
}

// NotifyHighRisk 发布高风险告警通知
// 通知为尽力而为：发布失败由调用方记录日志，不影响提交流程
func (m *NotifyModule) NotifyHighRisk(ctx context.Context, animalID, disease, riskLevel string, alertID int64) error {
	notification := &HighRiskNotification{
		AnimalID:  animalID,
		Disease:   disease,
		RiskLevel: riskLevel,
		AlertID:   alertID,
		Timestamp: time.Now().Unix(),
	}

	return m.redisClient.Publish(ctx, m.channel, notification)
}
