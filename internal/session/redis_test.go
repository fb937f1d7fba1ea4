package session

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	m := NewManager(NewRedisBackend(client, time.Hour), "jobmarket", logger.NewTestLogger(t))

	require.NoError(t, m.SetSession(ctx, createTestSession()))
	require.NoError(t, m.Remember(ctx, models.Credentials{Email: "a@b.co", Password: "pw", Role: models.RoleCompany}))

	got, err := m.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, createTestSession(), got)

	stored, err := mr.Get("jobmarket:user_id")
	require.NoError(t, err)
	assert.Equal(t, "user-001", stored)
	assert.Equal(t, time.Hour, mr.TTL("jobmarket:access_token"))

	require.NoError(t, m.ClearSession(ctx))
	assert.False(t, mr.Exists("jobmarket:access_token"))
	assert.False(t, mr.Exists("jobmarket:remember:company"))
}

func TestRedisBackend_NoTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	b := NewRedisBackend(client, 0)
	require.NoError(t, b.Set(context.Background(), "k", "v"))
	assert.Equal(t, time.Duration(0), mr.TTL("k"))
}

func TestRedisBackend_Mocked(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet("p:remember:job_seeker").RedisNil()

		got, err := NewManager(NewRedisBackend(client, 0), "p", logger.NewNoOpLogger()).Recall(ctx, models.RoleJobSeeker)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("get error", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet("p:access_token").SetErr(errors.New("READONLY"))

		_, err := NewManager(NewRedisBackend(client, 0), "p", logger.NewNoOpLogger()).GetSession(ctx)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeSessionStoreFailed))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("set with ttl", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		redisMock.ExpectSet("k", "v", 30*time.Second).SetVal("OK")

		require.NoError(t, NewRedisBackend(client, 30*time.Second).Set(ctx, "k", "v"))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
