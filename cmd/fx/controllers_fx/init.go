package controllers_fx

import (
	"go.uber.org/fx"
	"tripflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewRecommendController))
