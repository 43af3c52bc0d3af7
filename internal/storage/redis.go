package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 建立 Redis 連線，用於未讀數、戰績快取與流量限制
func NewRedisClient(addr, password string, db, poolSize int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return rdb, nil
}
