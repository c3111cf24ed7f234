package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"tripflow/internal/models/response_models"
)

const activityRatingsKey = "activityRatings"

type RatingRepository interface {
	List(ctx context.Context) ([]response_models.ActivityRating, error)
	Append(ctx context.Context, rating response_models.ActivityRating) error
}

type ratingRepository struct {
	client *redis.Client
}

func NewRatingRepository(client *redis.Client) RatingRepository {
	return &ratingRepository{client: client}
}

func (r *ratingRepository) List(ctx context.Context) ([]response_models.ActivityRating, error) {
	val, err := r.client.Get(ctx, activityRatingsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []response_models.ActivityRating{}, nil
		}
		return nil, fmt.Errorf("loading activity ratings: %w", err)
	}

	var ratings []response_models.ActivityRating
	if err := json.Unmarshal([]byte(val), &ratings); err != nil {
		log.Printf("Discarding corrupted activity-ratings collection: %v", err)
		return []response_models.ActivityRating{}, nil
	}
	return ratings, nil
}

func (r *ratingRepository) Append(ctx context.Context, rating response_models.ActivityRating) error {
	ratings, err := r.List(ctx)
	if err != nil {
		return err
	}
	ratings = append(ratings, rating)

	b, err := json.Marshal(ratings)
	if err != nil {
		return fmt.Errorf("marshaling activity ratings: %w", err)
	}
	if err := r.client.Set(ctx, activityRatingsKey, b, 0).Err(); err != nil {
		return fmt.Errorf("storing activity ratings: %w", err)
	}
	return nil
}
