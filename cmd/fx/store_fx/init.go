package store_fx

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"tripflow/internal/infra"
	"tripflow/internal/repositories"
)

var Module = fx.Provide(provideRedisClient, provideTripRepo, provideRatingRepo)

func provideRedisClient(lc fx.Lifecycle) *redis.Client {
	client, err := infra.InitRedis(context.Background(), os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}

func provideTripRepo(client *redis.Client) repositories.TripRepository {
	return repositories.NewTripRepository(client)
}

func provideRatingRepo(client *redis.Client) repositories.RatingRepository {
	return repositories.NewRatingRepository(client)
}
