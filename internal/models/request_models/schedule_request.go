package request_models

import "tripflow/internal/models/response_models"

type LoadItineraryRequest struct {
	Itinerary *response_models.Itinerary `json:"itinerary"`
}

type EditActivityRequest struct {
	Day        int                      `json:"day"`
	ActivityID string                   `json:"activity_id"`
	Activity   response_models.Activity `json:"activity"`
}

type DeleteActivityRequest struct {
	Day        int    `json:"day"`
	ActivityID string `json:"activity_id"`
}

type AddActivityRequest struct {
	Day int `json:"day"`
	// Activity is optional; a default placeholder activity is added when nil.
	Activity *response_models.Activity `json:"activity,omitempty"`
}

type SwapActivityRequest struct {
	ActivityID  string                   `json:"activity_id"`
	Alternative response_models.Activity `json:"alternative"`
}
