package clients

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/cfg"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_Ping(t *testing.T) {
	srv := miniredis.RunT(t)

	client := NewRedisClient(&cfg.RedisCfg{
		Addr:        srv.Addr(),
		DialTimeout: time.Second,
		Timeout:     time.Second,
	})
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
