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

const savedSchedulesKey = "savedSchedules"

// TripRepository persists the saved-trips collection as one JSON blob, the
// way the client mirrored it into device storage. The service layer owns
// pruning and status derivation; this layer only moves bytes.
type TripRepository interface {
	LoadAll(ctx context.Context) ([]response_models.SavedTrip, error)
	SaveAll(ctx context.Context, trips []response_models.SavedTrip) error
}

type tripRepository struct {
	client *redis.Client
}

func NewTripRepository(client *redis.Client) TripRepository {
	return &tripRepository{client: client}
}

// LoadAll returns the stored collection. A missing key is an empty
// collection. A blob that fails to deserialize is discarded entirely and an
// empty collection substituted; there is no partial recovery.
func (r *tripRepository) LoadAll(ctx context.Context) ([]response_models.SavedTrip, error) {
	val, err := r.client.Get(ctx, savedSchedulesKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []response_models.SavedTrip{}, nil
		}
		return nil, fmt.Errorf("loading saved trips: %w", err)
	}

	var trips []response_models.SavedTrip
	if err := json.Unmarshal([]byte(val), &trips); err != nil {
		log.Printf("Discarding corrupted saved-trips collection: %v", err)
		return []response_models.SavedTrip{}, nil
	}
	return trips, nil
}

func (r *tripRepository) SaveAll(ctx context.Context, trips []response_models.SavedTrip) error {
	if trips == nil {
		trips = []response_models.SavedTrip{}
	}

	b, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshaling saved trips: %w", err)
	}

	if err := r.client.Set(ctx, savedSchedulesKey, b, 0).Err(); err != nil {
		return fmt.Errorf("storing saved trips: %w", err)
	}
	return nil
}
