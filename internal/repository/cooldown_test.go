package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCooldownStore_TryAcquire(t *testing.T) {
	// Подготовка
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisCooldownStore(client)
	ctx := context.Background()

	// Действие: первый захват проходит, второй подавляется
	first, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)
	second, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)

	// Проверки
	assert.True(t, first)
	assert.False(t, second)

	// После истечения TTL маркер снимается
	mr.FastForward(2 * time.Minute)
	again, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, again)
}

func TestRedisCooldownStore_ReleaseClearsMarker(t *testing.T) {
	// Подготовка
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisCooldownStore(client)
	ctx := context.Background()

	// Действие: захват, снятие и повторный захват до истечения TTL
	first, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "geofence:bus-1:stop-1"))
	again, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)

	// Проверки: после Release маркер не подавляет новый захват
	assert.True(t, first)
	assert.True(t, again)
}

func TestRedisCooldownStore_IndependentKeys(t *testing.T) {
	// Подготовка
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisCooldownStore(client)
	ctx := context.Background()

	// Действие
	first, err := store.TryAcquire(ctx, "geofence:bus-1:stop-1", time.Minute)
	require.NoError(t, err)
	other, err := store.TryAcquire(ctx, "geofence:bus-1:stop-2", time.Minute)
	require.NoError(t, err)

	// Проверки: маркеры разных остановок не мешают друг другу
	assert.True(t, first)
	assert.True(t, other)
}
