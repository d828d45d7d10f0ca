package cache

import (
	"context"
	"time"

	"github.com/24svcs/svcs-api/storage/redis"
)

// 消息幂等性标记：svcs:msg:{messageID}
// SETNX 原子性地检查并标记，避免同一条事件被重复消费

// TryMarkMessageProcessing 标记消息正在处理，返回 false 表示已有消费者处理过
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key("msg", messageID)
	return redis.Client().SetNX(ctx, key, "processing", ttl).Result()
}

// MarkMessageProcessed 处理完成后延长标记 TTL
func MarkMessageProcessed(ctx context.Context, messageID string, ttl time.Duration) error {
	key := redis.Key("msg", messageID)
	return redis.Client().Set(ctx, key, "done", ttl).Err()
}

// UnmarkMessageProcessing 处理失败时取消标记，允许重试
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key("msg", messageID)
	return redis.Client().Del(ctx, key).Err()
}
