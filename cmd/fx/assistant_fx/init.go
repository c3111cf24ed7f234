package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

var Module = fx.Provide(providePlannerClient, provideAssistantService)

func providePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := utils.NewPlannerClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create planner client: %v", err)
	}
	return client
}

func provideAssistantService(
	planner utils.PlannerClientInterface,
	schedules services.ScheduleServiceInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(planner, schedules)
}
