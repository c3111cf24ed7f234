package repositories_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestTripRepository_MissingKeyIsEmpty(t *testing.T) {
	client, _ := newTestClient(t)
	repo := repositories.NewTripRepository(client)

	trips, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripRepository_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	repo := repositories.NewTripRepository(client)
	ctx := context.Background()

	in := []response_models.SavedTrip{
		{
			ID:          "trip-1",
			Name:        "Lisbon long weekend",
			Destination: "Lisbon",
			Schedule: []response_models.ItineraryDay{
				{Day: 1, Date: "2025-01-10", Activities: []response_models.Activity{
					{ID: "a1", Time: "09:00", Name: "Arrive", Type: response_models.ActivityTypeBookable},
				}},
			},
		},
	}
	require.NoError(t, repo.SaveAll(ctx, in))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestTripRepository_CorruptedBlobIsDiscarded(t *testing.T) {
	client, mr := newTestClient(t)
	repo := repositories.NewTripRepository(client)

	mr.Set("savedSchedules", "{not valid json")

	trips, err := repo.LoadAll(context.Background())
	require.NoError(t, err, "corruption is recovered from, not surfaced")
	assert.Empty(t, trips)
}

func TestTripRepository_SaveNilAsEmptyArray(t *testing.T) {
	client, mr := newTestClient(t)
	repo := repositories.NewTripRepository(client)

	require.NoError(t, repo.SaveAll(context.Background(), nil))

	raw, err := mr.Get("savedSchedules")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw, "nil stores as an empty collection, never null")
}

func TestRatingRepository_AppendAndList(t *testing.T) {
	client, _ := newTestClient(t)
	repo := repositories.NewRatingRepository(client)
	ctx := context.Background()

	ratings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	first := response_models.ActivityRating{TripID: "trip-1", ActivityName: "City Walk", Stars: 4, RatedAt: 1720000000}
	second := response_models.ActivityRating{TripID: "trip-1", ActivityName: "Museum", Stars: 5, Comment: "Don't miss it", RatedAt: 1720000100}

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	ratings, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, first, ratings[0])
	assert.Equal(t, second, ratings[1])
}

func TestRatingRepository_CorruptedBlobIsDiscarded(t *testing.T) {
	client, mr := newTestClient(t)
	repo := repositories.NewRatingRepository(client)

	mr.Set("activityRatings", "not json at all")

	ratings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ratings)

	// Appending over a corrupted blob starts a fresh collection.
	require.NoError(t, repo.Append(context.Background(), response_models.ActivityRating{
		TripID: "t", ActivityName: "A", Stars: 3,
	}))
	ratings, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}
