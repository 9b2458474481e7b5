package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	interviewer := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	tenant := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	day := time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"booking-lock:22222222-2222-2222-2222-222222222222:11111111-1111-1111-1111-111111111111:2026-03-02",
		Key(interviewer, tenant, day),
	)
	assert.Equal(t, Key(interviewer, tenant, day), Key(interviewer, tenant, day.Add(-10*time.Hour)))
}

func TestNoopLocker(t *testing.T) {
	unlock, err := NewNoopLocker().Lock(context.Background(), uuid.New(), uuid.New(), time.Now())

	require.NoError(t, err)
	require.NotNil(t, unlock)
	unlock()
}

func newTestLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client, ttl)
	l.wait = 100 * time.Millisecond
	l.retryInterval = 10 * time.Millisecond
	return l, mr
}

func TestRedisLocker_LockSetsKeyWithTTL(t *testing.T) {
	l, mr := newTestLocker(t, 5*time.Second)
	interviewer, tenant := uuid.New(), uuid.New()
	day := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	unlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)

	key := Key(interviewer, tenant, day)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Second, mr.TTL(key))

	unlock()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_HeldDayReturnsErrLockHeld(t *testing.T) {
	l, _ := newTestLocker(t, 5*time.Second)
	interviewer, tenant := uuid.New(), uuid.New()
	day := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	unlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)
	defer unlock()

	_, err = l.Lock(context.Background(), interviewer, tenant, day.Add(3*time.Hour))
	assert.ErrorIs(t, err, ErrLockHeld)

	// Другой день того же интервьюера не заблокирован
	otherUnlock, err := l.Lock(context.Background(), interviewer, tenant, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	otherUnlock()
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	l, _ := newTestLocker(t, 5*time.Second)
	l.wait = time.Second
	interviewer, tenant := uuid.New(), uuid.New()
	day := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	unlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		unlock()
	}()

	second, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)
	second()
}

func TestRedisLocker_ContextDeadlineStopsWaiting(t *testing.T) {
	l, _ := newTestLocker(t, 5*time.Second)
	l.wait = 5 * time.Second
	interviewer, tenant := uuid.New(), uuid.New()
	day := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	unlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err = l.Lock(ctx, interviewer, tenant, day)

	assert.ErrorIs(t, err, ErrLockHeld)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRedisLocker_StaleUnlockKeepsNewOwner(t *testing.T) {
	l, mr := newTestLocker(t, time.Second)
	interviewer, tenant := uuid.New(), uuid.New()
	day := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	staleUnlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)

	// Блокировка истекла, день захватил другой запрос
	mr.FastForward(2 * time.Second)
	ownerUnlock, err := l.Lock(context.Background(), interviewer, tenant, day)
	require.NoError(t, err)

	staleUnlock()
	assert.True(t, mr.Exists(Key(interviewer, tenant, day)))

	_, err = l.Lock(context.Background(), interviewer, tenant, day)
	assert.ErrorIs(t, err, ErrLockHeld)

	ownerUnlock()
	assert.False(t, mr.Exists(Key(interviewer, tenant, day)))
}
