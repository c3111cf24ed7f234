package recommend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripflow/internal/repositories"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

var Module = fx.Provide(provideEmbeddingRepo, provideRecommendService)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepository {
	return repositories.NewEmbeddingRepository(db)
}

func provideRecommendService(
	embeddingRepo repositories.EmbeddingRepository,
	planner utils.PlannerClientInterface,
) services.RecommendServiceInterface {
	return services.NewRecommendService(embeddingRepo, planner)
}
