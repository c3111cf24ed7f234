package services

import (
	"context"
	"strings"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"
)

// RecommendService matches a traveler's stored interests against activities
// indexed from saved trips, using embedding similarity.
type RecommendServiceInterface interface {
	IndexSchedule(ctx context.Context, schedule []response_models.ItineraryDay) error
	SuggestForInterests(ctx context.Context, interests []string) ([]response_models.ActivitySuggestion, error)
}

type RecommendService struct {
	embeddingRepo repositories.EmbeddingRepository
	planner       utils.PlannerClientInterface
}

func NewRecommendService(embeddingRepo repositories.EmbeddingRepository, planner utils.PlannerClientInterface) RecommendServiceInterface {
	return &RecommendService{
		embeddingRepo: embeddingRepo,
		planner:       planner,
	}
}

func (r *RecommendService) IndexSchedule(ctx context.Context, schedule []response_models.ItineraryDay) error {
	for _, day := range schedule {
		for _, act := range day.Activities {
			if act.Name == "" || act.Name == defaultActivityName {
				continue
			}

			vector, err := r.planner.GetEmbedding(ctx, act.Name+" "+act.Description)
			if err != nil {
				return err
			}

			embedding := db_models.ActivityEmbedding{
				ActivityName: act.Name,
				Description:  act.Description,
				City:         day.City,
				Embedding:    vector,
			}
			if err := r.embeddingRepo.Upsert(embedding); err != nil {
				return utils.ErrDatabaseError
			}
		}
	}
	return nil
}

func (r *RecommendService) SuggestForInterests(ctx context.Context, interests []string) ([]response_models.ActivitySuggestion, error) {
	if len(interests) == 0 {
		return []response_models.ActivitySuggestion{}, nil
	}

	vector, err := r.planner.GetEmbedding(ctx, strings.Join(interests, ", "))
	if err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	matches, err := r.embeddingRepo.SearchByVector(vector)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	suggestions := make([]response_models.ActivitySuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, response_models.ActivitySuggestion{
			Name:        m.ActivityName,
			Description: m.Description,
			City:        m.City,
			Similarity:  m.Similarity,
		})
	}
	return suggestions, nil
}
