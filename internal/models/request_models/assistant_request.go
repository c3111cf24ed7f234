package request_models

type ChatRequest struct {
	Message string `json:"message"`
}

type GenerateItineraryRequest struct {
	Destination  string   `json:"destination,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
	DurationDays int      `json:"duration_days"`
	// UndecidedDates asks the planner to emit the undecided-dates sentinel
	// instead of concrete day dates.
	UndecidedDates bool   `json:"undecided_dates,omitempty"`
	StartDate      string `json:"start_date,omitempty"` // YYYY-MM-DD
	Interests      string `json:"interests,omitempty"`
}
