// Package lock взаимное исключение бронирований одного интервьюера на один день
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

var (
	// ErrLockHeld возвращается, когда день уже заблокирован другим запросом
	ErrLockHeld = errors.New("lock: day is locked by another admission")

	// ErrLockFailed возвращается при ошибке обращения к Redis
	ErrLockFailed = errors.New("lock: failed to acquire lock")
)

const (
	keyPrefix = "booking-lock"

	defaultRetryInterval = 50 * time.Millisecond
)

// UnlockFunc снимает блокировку
type UnlockFunc func()

// Key ключ блокировки (interviewer, tenant, day)
func Key(interviewerID, tenantID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, tenantID, interviewerID, domain.DayKey(day))
}

// RedisLocker блокировка через SET NX PX
// Занятый день ожидается не дольше wait (и не дольше дедлайна запроса)
type RedisLocker struct {
	client        *redis.Client
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// NewRedisLocker создает блокировщик поверх redis клиента
// Ожидание занятого дня ограничено ttl блокировки
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		wait:          ttl,
		retryInterval: defaultRetryInterval,
	}
}

// Снятие только своей блокировки: ключ удаляется, если значение совпадает с токеном
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock захватывает блокировку дня
// Пока день занят, попытка повторяется; по истечении ожидания возвращается ErrLockHeld
func (l *RedisLocker) Lock(ctx context.Context, interviewerID, tenantID uuid.UUID, day time.Time) (UnlockFunc, error) {
	key := Key(interviewerID, tenantID, day)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrLockHeld, key, ctx.Err())
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrLockFailed, key, err)
		}
		if ok {
			break
		}

		if !time.Now().Add(l.retryInterval).Before(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockHeld, key)
		}

		timer := time.NewTimer(l.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %s: %w", ErrLockHeld, key, ctx.Err())
		case <-timer.C:
		}
	}

	return func() {
		// Контекст запроса может быть уже отменен
		_ = unlockScript.Run(context.Background(), l.client, []string{key}, token).Err()
	}, nil
}

// NoopLocker используется, когда Redis выключен
// Исключительность обеспечивает сериализуемая транзакция
type NoopLocker struct{}

// NewNoopLocker создает пустой блокировщик
func NewNoopLocker() NoopLocker {
	return NoopLocker{}
}

// Lock всегда успешен
func (NoopLocker) Lock(context.Context, uuid.UUID, uuid.UUID, time.Time) (UnlockFunc, error) {
	return func() {}, nil
}
