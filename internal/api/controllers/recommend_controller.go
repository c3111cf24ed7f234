package controllers

import (
	"github.com/gin-gonic/gin"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
	accountService   services.AccountServiceInterface
}

func NewRecommendController(
	recommendService services.RecommendServiceInterface,
	accountService services.AccountServiceInterface,
) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
		accountService:   accountService,
	}
}

// SuggestionsHandler returns activity suggestions matched against the
// authenticated account's stored interests.
func (r *RecommendController) SuggestionsHandler(c *gin.Context) {
	profile, err := r.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	suggestions, err := r.recommendService.SuggestForInterests(c.Request.Context(), profile.Interests)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, suggestions, "Suggestions fetched")
}
