package redisstore

import (
	"context"
	"log"
	"time"

	"github.com/Eursukkul/partywknd/config"
	"github.com/redis/go-redis/v9"
)

// NewClient returns nil when redis is not configured or unreachable; callers
// treat a nil client as "rate limiting disabled".
func NewClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[Redis] ping %s failed, continuing without redis: %v", cfg.Addr, err)
		rdb.Close()
		return nil
	}

	log.Printf("[Redis] connected to %s", cfg.Addr)
	return rdb
}
