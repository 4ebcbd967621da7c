package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSubClient Redis 发布/订阅客户端
type PubSubClient struct {
	client *redis.Client
}

// NewPubSubClient 创建 PubSubClient 实例
func NewPubSubClient(addr, password string, db int) (*PubSubClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &PubSubClient{client: client}, nil
}

// Publish 序列化消息并发布到指定频道
func (p *PubSubClient) Publish(ctx context.Context, channel string, message interface{}) error {
	msgJSON, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(ctx, channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Subscribe 订阅 Redis 频道（用于测试）
func (p *PubSubClient) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return p.client.Subscribe(ctx, channel)
}

// Close 关闭连接
func (p *PubSubClient) Close() error {
	return p.client.Close()
}
