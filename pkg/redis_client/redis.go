package redis_client

import (
	"context"

	"github.com/adjust/rmq/v5"
	"github.com/atomo10/atomo/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const queueConnectionTag = "atomo"

type Connection struct {
	Client *redis.Client
	Queue  rmq.Connection
}

func Connect(ctx context.Context, cfg *config.Config) (*Connection, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDatabase,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	errors := make(chan error, 10)
	go func() {
		for err := range errors {
			log.Warn().Err(err).Msg("Redis queue error")
		}
	}()

	queueConnection, err := rmq.OpenConnectionWithRedisClient(queueConnectionTag, client, errors)
	if err != nil {
		return nil, err
	}

	log.Info().Str("address", cfg.RedisAddress).Msg("Connected to Redis")

	return &Connection{
		Client: client,
		Queue:  queueConnection,
	}, nil
}
