package config

import (
	"github.com/redis/go-redis/v9"
)

func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "127.0.0.1:6379"),
	})
}
