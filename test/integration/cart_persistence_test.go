package integration

import (
	"context"
	"io"
	"log/slog"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/costeladotiti/cardapio/internal/cart/application"
	cartdomain "github.com/costeladotiti/cardapio/internal/cart/domain"
	cartredis "github.com/costeladotiti/cardapio/internal/cart/infrastructure/redis"
	menuapp "github.com/costeladotiti/cardapio/internal/menu/application"
)

func TestCartSurvivesRestartViaRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	require.NoError(t, err)
	defer env.Teardown(ctx)

	opts, err := goredis.ParseURL(env.RedisURL)
	require.NoError(t, err)
	rdb := goredis.NewClient(opts)
	defer func() { _ = rdb.Close() }()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := menuapp.NewService()
	snapshots := cartredis.NewSnapshots(rdb)

	first := cartapp.NewService(log, snapshots, "costela-titi-cart", catalog.Additionals())
	first.Load(ctx)

	casa, err := catalog.ProductByID("casa")
	require.NoError(t, err)
	id := first.AddItem(ctx, casa, &cartdomain.Customization{
		AdditionalIDs: []string{"bacon", "banana"},
	}, "")
	first.UpdateQuantity(ctx, id, 2)

	// A fresh service against the same store restores the same lines.
	second := cartapp.NewService(log, snapshots, "costela-titi-cart", catalog.Additionals())
	second.Load(ctx)

	require.Equal(t, first.Items(), second.Items())
	assert.Equal(t, int64(5000), second.SubtotalCents())
	assert.Equal(t, 2, second.ItemsCount())
}

func TestCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	require.NoError(t, err)
	defer env.Teardown(ctx)

	opts, err := goredis.ParseURL(env.RedisURL)
	require.NoError(t, err)
	rdb := goredis.NewClient(opts)
	defer func() { _ = rdb.Close() }()

	require.NoError(t, rdb.Set(ctx, "costela-titi-cart", "corrupted {", 0).Err())

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := menuapp.NewService()
	svc := cartapp.NewService(log, cartredis.NewSnapshots(rdb), "costela-titi-cart", catalog.Additionals())
	svc.Load(ctx)

	assert.False(t, svc.Loading())
	assert.Empty(t, svc.Items())
}
