package trips_fx

import (
	"go.uber.org/fx"
	"tripflow/internal/repositories"
	"tripflow/internal/services"
	mem "tripflow/pkg/memcache"
)

var Module = fx.Provide(provideTripService)

func provideTripService(
	tripRepo repositories.TripRepository,
	ratingRepo repositories.RatingRepository,
	schedules services.ScheduleServiceInterface,
	store mem.SessionStore,
	recommender services.RecommendServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, ratingRepo, schedules, store, recommender)
}
