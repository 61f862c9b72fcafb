package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("redis integration test, pulando em -short")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRoundTrip(t *testing.T) {
	rdb := setupRedis(t)
	st := NewRedis(rdb)
	ctx := context.Background()

	var out []registro
	found, err := st.Load(ctx, KeyProdutos, &out)
	require.NoError(t, err)
	assert.False(t, found)

	in := []registro{{Nome: "a", Valor: 1}}
	require.NoError(t, st.Save(ctx, KeyProdutos, in))

	found, err = st.Load(ctx, KeyProdutos, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	// Key lives under the shared-instance prefix.
	exists, err := rdb.Exists(ctx, Prefix+KeyProdutos).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestRedisEnvelope(t *testing.T) {
	rdb := setupRedis(t)
	st := NewRedis(rdb)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, KeyCaixas, []registro{{Nome: "x"}}))

	raw, err := rdb.Get(ctx, Prefix+KeyCaixas).Bytes()
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, Version, env.Version)
	assert.Positive(t, env.Timestamp)
	assert.JSONEq(t, `[{"nome":"x","valor":0}]`, string(env.Data))
}

func TestRedisSaveAll(t *testing.T) {
	rdb := setupRedis(t)
	st := NewRedis(rdb)
	ctx := context.Background()

	err := st.SaveAll(ctx, map[string]interface{}{
		KeyProdutos: []registro{{Nome: "produto"}},
		KeyCaixas:   []registro{{Nome: "caixa"}},
	})
	require.NoError(t, err)

	var produtos, caixas []registro
	found, err := st.Load(ctx, KeyProdutos, &produtos)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = st.Load(ctx, KeyCaixas, &caixas)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRedisSaveAllFalhaDeSerializacaoNaoGrava(t *testing.T) {
	rdb := setupRedis(t)
	st := NewRedis(rdb)
	ctx := context.Background()

	err := st.SaveAll(ctx, map[string]interface{}{
		KeyProdutos: []registro{{Nome: "ok"}},
		KeyCaixas:   make(chan int),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializacao)

	exists, err := rdb.Exists(ctx, Prefix+KeyProdutos).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
