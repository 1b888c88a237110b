package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "alert_lock:"

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker - блокировка оценки подписки поверх SET NX с TTL.
// Один держатель на подписку среди всех реплик.
type RedisLocker struct {
	redisClient *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{redisClient: client}
}

func lockKey(alertID int64) string {
	return fmt.Sprintf("%s%d", lockKeyPrefix, alertID)
}

// Acquire пытается взять блокировку. ok == false, если ее держит кто-то другой.
func (l *RedisLocker) Acquire(ctx context.Context, alertID int64, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.redisClient.SetNX(ctx, lockKey(alertID), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire alert lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release снимает блокировку. Чужую или истекшую блокировку не трогает.
func (l *RedisLocker) Release(ctx context.Context, alertID int64, token string) error {
	if err := releaseScript.Run(ctx, l.redisClient, []string{lockKey(alertID)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release alert lock: %w", err)
	}
	return nil
}
