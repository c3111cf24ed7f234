package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
	costService     services.CostServiceInterface
}

func NewScheduleController(
	scheduleService services.ScheduleServiceInterface,
	costService services.CostServiceInterface,
) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		costService:     costService,
	}
}

// LoadItineraryHandler loads a planner itinerary into the session and
// returns the normalized schedule.
func (s *ScheduleController) LoadItineraryHandler(c *gin.Context) {
	var req request_models.LoadItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Itinerary == nil {
		utils.RespondError(c, http.StatusBadRequest, "itinerary is required")
		return
	}

	plan, err := s.scheduleService.LoadItinerary(c.Request.Context(), sessionID(c), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Itinerary loaded")
}

func (s *ScheduleController) CurrentHandler(c *gin.Context) {
	plan, err := s.scheduleService.Current(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Current plan fetched")
}

func (s *ScheduleController) EditActivityHandler(c *gin.Context) {
	var req request_models.EditActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "day and activity_id are required")
		return
	}

	plan, err := s.scheduleService.EditActivity(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity updated")
}

func (s *ScheduleController) DeleteActivityHandler(c *gin.Context) {
	var req request_models.DeleteActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "day and activity_id are required")
		return
	}

	plan, err := s.scheduleService.DeleteActivity(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity removed")
}

func (s *ScheduleController) AddActivityHandler(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Day == 0 {
		utils.RespondError(c, http.StatusBadRequest, "day is required")
		return
	}

	plan, err := s.scheduleService.AddActivity(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity added")
}

func (s *ScheduleController) SwapActivityHandler(c *gin.Context) {
	var req request_models.SwapActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" || req.Alternative.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "activity_id and alternative are required")
		return
	}

	plan, err := s.scheduleService.SwapActivity(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity swapped")
}

func (s *ScheduleController) AlternativesHandler(c *gin.Context) {
	pool, err := s.scheduleService.Alternatives(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pool, "Alternatives fetched")
}

// CostsHandler godoc
// @Summary Cost rollup for the current plan
// @Description Flights, hotel and activity totals, gated by include flags, converted to the requested currency
// @Tags Schedule
// @Produce json
// @Param includeFlights query bool false "Include flights" default(true)
// @Param includeHotel query bool false "Include hotel" default(true)
// @Param includeActivities query bool false "Include bookable activities" default(true)
// @Param currency query string false "Display currency" default(USD)
// @Success 200 {object} response_models.CostBreakdown
// @Router /schedule/costs [get]
func (s *ScheduleController) CostsHandler(c *gin.Context) {
	flags := services.IncludeFlags{
		Flights:    c.DefaultQuery("includeFlights", "true") == "true",
		Hotel:      c.DefaultQuery("includeHotel", "true") == "true",
		Activities: c.DefaultQuery("includeActivities", "true") == "true",
	}
	currency := c.DefaultQuery("currency", "USD")

	costs, err := s.costService.CostsForSession(c.Request.Context(), sessionID(c), flags, currency)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, costs, "Costs computed")
}
