package request_models

type SaveTripRequest struct {
	Name          string `json:"name"`
	TripStartDate string `json:"trip_start_date,omitempty"`
	TripEndDate   string `json:"trip_end_date,omitempty"`
}

type CheckoutRequest struct {
	IncludeFlights    bool   `json:"include_flights"`
	IncludeHotel      bool   `json:"include_hotel"`
	IncludeActivities bool   `json:"include_activities"`
	Currency          string `json:"currency,omitempty"`
}

type ManageTripRequest struct {
	// Action is "change_dates" or "cancel".
	Action        string `json:"action"`
	TripStartDate string `json:"trip_start_date,omitempty"`
	TripEndDate   string `json:"trip_end_date,omitempty"`
}

type RateActivityRequest struct {
	ActivityName string `json:"activity_name"`
	Stars        int    `json:"stars"`
	Comment      string `json:"comment,omitempty"`
}
