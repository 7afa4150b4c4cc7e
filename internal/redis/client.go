// Package redis wraps the go-redis client behind a small interface so
// repositories can be tested against miniredis or a mock.
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance. The connection
// is opened lazily on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		Password:     opts.Password,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClusterClient(clusterOpts), nil
}
