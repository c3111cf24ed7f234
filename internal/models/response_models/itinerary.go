package response_models

// UndecidedDates is the sentinel the planner emits when the user explores an
// itinerary without committing to travel dates. Date parsing must skip it.
const UndecidedDates = "Undecided Dates"

const (
	ActivityTypeBookable  = "bookable"
	ActivityTypeEstimated = "estimated"
)

const (
	VariantSingleCity = "single_city"
	VariantMultiCity  = "multi_city"
)

// Activity is one scheduled item within a day. Prices are stored in USD;
// display conversion happens in the cost rollup. ID is assigned when the
// activity first enters a schedule and stays stable across re-sorts.
type Activity struct {
	ID           string     `json:"id,omitempty"`
	Time         string     `json:"time"` // HH:MM
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	Type         string     `json:"type"` // "bookable" | "estimated"
	Description  string     `json:"description,omitempty"`
	Alternatives []Activity `json:"alternatives,omitempty"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	City       string     `json:"city,omitempty"`
	Activities []Activity `json:"activities"`
}

type Flight struct {
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flight_number,omitempty"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Departure    string   `json:"departure,omitempty"`
	Arrival      string   `json:"arrival,omitempty"`
	Price        float64  `json:"price"`
	Alternatives []Flight `json:"alternatives,omitempty"`
}

type Hotel struct {
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	Price        float64 `json:"price"` // per night, USD
	TotalNights  int     `json:"total_nights"`
	Rating       float64 `json:"rating,omitempty"`
	Alternatives []Hotel `json:"alternatives,omitempty"`
}

// TransportLeg is an inter-city leg on multi-city trips.
type TransportLeg struct {
	Mode      string  `json:"mode"` // "train", "bus", "flight"
	From      string  `json:"from"`
	To        string  `json:"to"`
	Departure string  `json:"departure,omitempty"`
	Price     float64 `json:"price"`
}

// Itinerary is the planner-generated trip plan. Single-city trips fill
// Destination and Hotel; multi-city trips fill Destinations, Hotels and
// TransportLegs. Both shapes are tolerated on decode.
type Itinerary struct {
	Variant       string         `json:"variant"`
	Destination   string         `json:"destination,omitempty"`
	Destinations  []string       `json:"destinations,omitempty"`
	DurationDays  int            `json:"duration_days"`
	Flights       []Flight       `json:"flights,omitempty"`
	Hotel         *Hotel         `json:"hotel,omitempty"`
	Hotels        []Hotel        `json:"hotels,omitempty"`
	Days          []ItineraryDay `json:"days"`
	TransportLegs []TransportLeg `json:"transport_legs,omitempty"`
	TotalCost     float64        `json:"total_cost,omitempty"`
	BookableCost  float64        `json:"bookable_cost,omitempty"`
	EstimatedCost float64        `json:"estimated_cost,omitempty"`
}

// AllHotels flattens the single-city/multi-city hotel fields into one list.
func (it *Itinerary) AllHotels() []Hotel {
	if it == nil {
		return nil
	}
	if len(it.Hotels) > 0 {
		return it.Hotels
	}
	if it.Hotel != nil {
		return []Hotel{*it.Hotel}
	}
	return nil
}

// DestinationLabel returns the display destination for either variant.
func (it *Itinerary) DestinationLabel() string {
	if it == nil {
		return ""
	}
	if it.Destination != "" {
		return it.Destination
	}
	if len(it.Destinations) > 0 {
		out := it.Destinations[0]
		for _, d := range it.Destinations[1:] {
			out += " - " + d
		}
		return out
	}
	return ""
}

// CurrentPlan is the session-scoped planning state: the raw itinerary as the
// planner produced it plus the normalized, user-editable schedule derived
// from it.
type CurrentPlan struct {
	Itinerary *Itinerary     `json:"itinerary,omitempty"`
	Schedule  []ItineraryDay `json:"schedule"`
}
