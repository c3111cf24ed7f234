package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// SaveTripHandler snapshots the session's current plan into the saved-trips
// collection.
func (t *TripsController) SaveTripHandler(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	trip, err := t.tripService.SaveCurrent(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip saved")
}

// ListTripsHandler godoc
// @Summary List saved trips
// @Description Fetch all saved trips with freshly derived status; malformed records are pruned
// @Tags Trips
// @Produce json
// @Success 200 {object} response_models.TripListResponse
// @Router /trips [get]
func (t *TripsController) ListTripsHandler(c *gin.Context) {
	list, err := t.tripService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, list, "Trips fetched")
}

func (t *TripsController) DeleteTripHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.Delete(c.Request.Context(), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted")
}

func (t *TripsController) SelectForEditHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	plan, err := t.tripService.SelectForEdit(c.Request.Context(), sessionID(c), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Trip loaded for editing")
}

func (t *TripsController) CheckoutHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Checkout(c.Request.Context(), sessionID(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Checkout recorded")
}

func (t *TripsController) ManageTripHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.ManageTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" {
		utils.RespondError(c, http.StatusBadRequest, "action is required")
		return
	}

	trip, err := t.tripService.Manage(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated")
}

func (t *TripsController) RateActivityHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.RateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityName == "" {
		utils.RespondError(c, http.StatusBadRequest, "activity_name and stars are required")
		return
	}

	if err := t.tripService.RateActivity(c.Request.Context(), tripID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Rating recorded")
}

func (t *TripsController) ListRatingsHandler(c *gin.Context) {
	ratings, err := t.tripService.Ratings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ratings, "Ratings fetched")
}
