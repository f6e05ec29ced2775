package db

import (
	"github.com/go-redis/redis/v8"

	"github.com/vilis-app/carsrent-api/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
}
