package response_models

// CostBreakdown is the display rollup for a loaded plan. All totals are in
// the requested display currency; the ready-to-book total sums only the
// categories whose include flag was on.
type CostBreakdown struct {
	Currency                 string  `json:"currency"`
	FlightsTotal             float64 `json:"flights_total"`
	HotelTotal               float64 `json:"hotel_total"`
	BookableActivitiesTotal  float64 `json:"bookable_activities_total"`
	EstimatedActivitiesTotal float64 `json:"estimated_activities_total"`
	ActivitiesTotal          float64 `json:"activities_total"`
	ReadyToBookTotal         float64 `json:"ready_to_book_total"`
}

type ChatResponse struct {
	Reply     string     `json:"reply,omitempty"`
	Sequence  uint64     `json:"sequence"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}

// ActivitySuggestion is one embedding-matched recommendation.
type ActivitySuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	City        string  `json:"city,omitempty"`
	Similarity  float64 `json:"similarity"`
}
