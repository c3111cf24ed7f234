package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripflow/cmd/fx/account_fx"
	"tripflow/cmd/fx/assistant_fx"
	"tripflow/cmd/fx/controllers_fx"
	"tripflow/cmd/fx/db_fx"
	"tripflow/cmd/fx/memcache_fx"
	"tripflow/cmd/fx/recommend_fx"
	"tripflow/cmd/fx/schedule_fx"
	"tripflow/cmd/fx/store_fx"
	"tripflow/cmd/fx/trips_fx"
	"tripflow/internal/api/controllers"
	"tripflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		store_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		schedule_fx.Module,
		assistant_fx.Module,
		recommend_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	assistantController *controllers.AssistantController,
	scheduleController *controllers.ScheduleController,
	tripsController *controllers.TripsController,
	accountController *controllers.AccountController,
	recommendController *controllers.RecommendController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, assistantController, scheduleController, tripsController, accountController, recommendController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assistantController *controllers.AssistantController,
	scheduleController *controllers.ScheduleController,
	tripsController *controllers.TripsController,
	accountController *controllers.AccountController,
	recommendController *controllers.RecommendController) {

	assistantGroup := r.Group("/assistant")
	assistantGroup.POST("/chat", assistantController.ChatHandler)
	assistantGroup.POST("/itinerary", assistantController.GenerateItineraryHandler)

	scheduleGroup := r.Group("/schedule")
	scheduleGroup.POST("/load", scheduleController.LoadItineraryHandler)
	scheduleGroup.GET("/current", scheduleController.CurrentHandler)
	scheduleGroup.POST("/activities/edit", scheduleController.EditActivityHandler)
	scheduleGroup.POST("/activities/delete", scheduleController.DeleteActivityHandler)
	scheduleGroup.POST("/activities/add", scheduleController.AddActivityHandler)
	scheduleGroup.POST("/activities/swap", scheduleController.SwapActivityHandler)
	scheduleGroup.GET("/alternatives", scheduleController.AlternativesHandler)
	scheduleGroup.GET("/costs", scheduleController.CostsHandler)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripsController.ListTripsHandler)
	tripsGroup.POST("/save", tripsController.SaveTripHandler)
	tripsGroup.DELETE("/:tripId", tripsController.DeleteTripHandler)
	tripsGroup.POST("/:tripId/edit", tripsController.SelectForEditHandler)
	tripsGroup.POST("/:tripId/checkout", tripsController.CheckoutHandler)
	tripsGroup.POST("/:tripId/manage", tripsController.ManageTripHandler)
	tripsGroup.POST("/:tripId/ratings", tripsController.RateActivityHandler)
	r.GET("/ratings", tripsController.ListRatingsHandler)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.RegisterHandler)
	accountsGroup.POST("/login", accountController.LoginHandler)

	profileGroup := r.Group("/accounts", middleware.JWTAuthMiddleware())
	profileGroup.GET("/profile", accountController.GetProfileHandler)
	profileGroup.GET("/interests", accountController.GetInterestsHandler)
	profileGroup.PUT("/interests", accountController.UpdateInterestsHandler)

	r.GET("/recommendations", middleware.JWTAuthMiddleware(), recommendController.SuggestionsHandler)
}
