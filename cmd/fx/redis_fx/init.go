package redis_fx

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tradeacademy/internal/config"
	"tradeacademy/internal/infra"
)

var Module = fx.Provide(
	provideRedis)

func provideRedis(cfg *config.Config) *redis.Client {
	client, err := infra.InitRedis(cfg)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	return client
}
