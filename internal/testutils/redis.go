// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/catan-odds/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for
// it. The server is closed when the test ends; the returned *Miniredis
// lets the test fast-forward TTLs or inspect keys.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}
