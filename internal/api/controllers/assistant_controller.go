package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// ChatHandler godoc
// @Summary Chat with the planning assistant
// @Description Send a free-form message; the assistant infers a trip and generates an itinerary
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat message"
// @Success 200 {object} response_models.ChatResponse
// @Router /assistant/chat [post]
func (a *AssistantController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := a.assistantService.Chat(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated")
}

// GenerateItineraryHandler godoc
// @Summary Generate an itinerary
// @Description Generate a trip itinerary for the given destination(s) and duration
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation parameters"
// @Success 200 {object} response_models.ChatResponse
// @Router /assistant/itinerary [post]
func (a *AssistantController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.assistantService.GenerateItinerary(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated")
}
