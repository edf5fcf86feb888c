package redis

import (
	"context"
	"crypto/tls"
	"runtime"
	"strings"
	"time"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/go-redis/redis/v8"
)

const minClusterNodes = 2

type redisDB struct {
	client redis.UniversalClient
}

// New initializes a pool redis client connections.
func New(ctx context.Context, cfg *config.Config, logger lumber.Logger) (core.RedisDB, error) {
	if cfg.Redis.Addr == "" {
		logger.Errorf("missing redis address")
		return nil, errs.ErrConfigNotFound
	}
	addrs := strings.Split(cfg.Redis.Addr, ",")

	if len(addrs) >= minClusterNodes {
		logger.Debugf("Creating Redis Cluster Client")
	} else {
		logger.Debugf("Creating Redis Client")
	}

	// a notifier run issues a single read or write, keep the pool small
	options := &redis.UniversalOptions{
		Addrs:       addrs,
		Username:    cfg.Redis.Username,
		IdleTimeout: 1 * time.Minute,
		PoolSize:    runtime.GOMAXPROCS(0),
		DialTimeout: cfg.RequestTimeout,
		ReadTimeout: cfg.RequestTimeout,
		Password:    cfg.Redis.Password,
	}

	if cfg.Redis.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	// if the number of Addrs is two or more, a ClusterClient is returned
	// otherwise a single-node Client is returned.
	client := redis.NewUniversalClient(options)

	// ping the redis to check the connection.
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}
	logger.Infof("Redis connection created successfully.")

	return &redisDB{
		client: client,
	}, nil
}

// Client exposes redis client interface
func (r *redisDB) Client() redis.UniversalClient {
	return r.client
}

// Close closes the underlying connections
func (r *redisDB) Close() error {
	return r.client.Close()
}
