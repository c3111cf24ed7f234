package response_models

type TripStatus string

const (
	StatusUnbooked TripStatus = "unbooked"
	StatusBooked   TripStatus = "booked"
	StatusPast     TripStatus = "past"
)

// SavedTrip is one persisted planning snapshot. Status is derived on every
// load and overwritten unconditionally; the stored value is display cache
// only. Content edits never mutate a saved record in place (they fork a
// fresh itinerary in the active session).
type SavedTrip struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Destination   string         `json:"destination"`
	DurationDays  int            `json:"duration_days,omitempty"`
	SavedAt       int64          `json:"saved_at"` // unix seconds
	Status        TripStatus     `json:"status"`
	Itinerary     *Itinerary     `json:"itinerary,omitempty"`
	Schedule      []ItineraryDay `json:"schedule,omitempty"`
	CheckoutDate  string         `json:"checkout_date,omitempty"`
	TripStartDate string         `json:"trip_start_date,omitempty"`
	TripEndDate   string         `json:"trip_end_date,omitempty"`
}

type TripListResponse struct {
	Trips  []SavedTrip `json:"trips"`
	Pruned int         `json:"pruned,omitempty"`
}

// ActivityRating is a post-trip rating on one activity of a past trip.
type ActivityRating struct {
	TripID       string `json:"trip_id"`
	ActivityName string `json:"activity_name"`
	Stars        int    `json:"stars"` // 1..5
	Comment      string `json:"comment,omitempty"`
	RatedAt      int64  `json:"rated_at"`
}

// PurchaseOptions is the session-scoped checkout selection.
type PurchaseOptions struct {
	TripID            string `json:"trip_id"`
	IncludeFlights    bool   `json:"include_flights"`
	IncludeHotel      bool   `json:"include_hotel"`
	IncludeActivities bool   `json:"include_activities"`
	Currency          string `json:"currency"`
}
