package utils

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/singleblog/singleblog/config"
)

var redisClient *redis.Client

// InitRedis creates the shared Redis client from configuration. The cache
// is best-effort: when InitRedis is never called, or the server is
// unreachable, every cache lookup is a miss and the service still works.
func InitRedis(cfg config.AppConfig) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil && Sugar != nil {
		Sugar.Warnf("redis unreachable, response cache disabled: %v", err)
	}
}

// GetRedis returns the shared client, nil when caching is not initialized.
func GetRedis() *redis.Client {
	return redisClient
}
