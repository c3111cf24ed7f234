package schedule_fx

import (
	"go.uber.org/fx"
	"tripflow/internal/services"
	mem "tripflow/pkg/memcache"
)

var Module = fx.Provide(provideScheduleService, provideRatesService, provideCostService)

func provideScheduleService(store mem.SessionStore) services.ScheduleServiceInterface {
	return services.NewScheduleService(store)
}

func provideRatesService() services.RatesServiceInterface {
	return services.NewRatesService()
}

func provideCostService(
	schedules services.ScheduleServiceInterface,
	rates services.RatesServiceInterface,
) services.CostServiceInterface {
	return services.NewCostService(schedules, rates)
}
