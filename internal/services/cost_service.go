package services

import (
	"context"
	"strings"

	"tripflow/internal/models/response_models"
	"tripflow/pkg/utils"
)

// IncludeFlags gates which cost categories count toward the ready-to-book
// total.
type IncludeFlags struct {
	Flights    bool
	Hotel      bool
	Activities bool
}

// FlightsTotal sums the price of every flight in the itinerary. With no
// itinerary loaded there is nothing to price: the total is zero, not a
// placeholder default.
func FlightsTotal(itinerary *response_models.Itinerary) float64 {
	if itinerary == nil {
		return 0
	}
	var total float64
	for _, f := range itinerary.Flights {
		total += f.Price
	}
	return total
}

// HotelTotal is price x total nights for the single-city hotel, or the sum
// of that product over all hotels on multi-city trips.
func HotelTotal(itinerary *response_models.Itinerary) float64 {
	var total float64
	for _, h := range itinerary.AllHotels() {
		total += h.Price * float64(h.TotalNights)
	}
	return total
}

// ActivityTotals returns the bookable and estimated activity sums across the
// whole schedule. Estimated prices are informational and never count toward
// the ready-to-book amount.
func ActivityTotals(schedule []response_models.ItineraryDay) (bookable, estimated float64) {
	for _, day := range schedule {
		for _, act := range day.Activities {
			if act.Type == response_models.ActivityTypeBookable {
				bookable += act.Price
			} else {
				estimated += act.Price
			}
		}
	}
	return bookable, estimated
}

// ComputeCosts recomputes the full rollup from scratch. Data volumes are
// tens of activities; no caching or incremental update is warranted.
func ComputeCosts(itinerary *response_models.Itinerary, schedule []response_models.ItineraryDay, flags IncludeFlags) response_models.CostBreakdown {
	out := response_models.CostBreakdown{Currency: "USD"}

	out.FlightsTotal = FlightsTotal(itinerary)
	out.HotelTotal = HotelTotal(itinerary)
	out.BookableActivitiesTotal, out.EstimatedActivitiesTotal = ActivityTotals(schedule)
	out.ActivitiesTotal = out.BookableActivitiesTotal + out.EstimatedActivitiesTotal

	if flags.Flights {
		out.ReadyToBookTotal += out.FlightsTotal
	}
	if flags.Hotel {
		out.ReadyToBookTotal += out.HotelTotal
	}
	if flags.Activities {
		out.ReadyToBookTotal += out.BookableActivitiesTotal
	}
	return out
}

type CostServiceInterface interface {
	CostsForSession(ctx context.Context, sessionID string, flags IncludeFlags, currency string) (*response_models.CostBreakdown, error)
}

type CostService struct {
	schedules ScheduleServiceInterface
	rates     RatesServiceInterface
}

func NewCostService(schedules ScheduleServiceInterface, rates RatesServiceInterface) CostServiceInterface {
	return &CostService{
		schedules: schedules,
		rates:     rates,
	}
}

func (c *CostService) CostsForSession(ctx context.Context, sessionID string, flags IncludeFlags, currency string) (*response_models.CostBreakdown, error) {
	plan, err := c.schedules.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeCosts(plan.Itinerary, plan.Schedule, flags)

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" && currency != "USD" {
		if err := convertBreakdown(&breakdown, currency, c.rates); err != nil {
			return nil, err
		}
	}
	return &breakdown, nil
}

func convertBreakdown(b *response_models.CostBreakdown, currency string, rates RatesServiceInterface) error {
	fields := []*float64{
		&b.FlightsTotal,
		&b.HotelTotal,
		&b.BookableActivitiesTotal,
		&b.EstimatedActivitiesTotal,
		&b.ActivitiesTotal,
		&b.ReadyToBookTotal,
	}
	for _, f := range fields {
		converted, err := rates.Convert(*f, currency)
		if err != nil {
			return utils.ErrUnsupportedCurrency
		}
		*f = converted
	}
	b.Currency = currency
	return nil
}
