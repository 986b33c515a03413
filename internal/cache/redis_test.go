package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	t.Run("reachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		InitRedis(mr.Addr())

		client := GetClient()
		require.NotNil(t, client)
		assert.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("redis url scheme", func(t *testing.T) {
		mr := miniredis.RunT(t)
		InitRedis("redis://" + mr.Addr())
		require.NotNil(t, GetClient())
	})

	t.Run("unreachable server leaves client nil", func(t *testing.T) {
		InitRedis("127.0.0.1:1")
		assert.Nil(t, GetClient())
	})

	t.Run("malformed url leaves client nil", func(t *testing.T) {
		InitRedis("redis://bad\x00url")
		assert.Nil(t, GetClient())
	})
}
