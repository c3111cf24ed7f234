package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	mem "tripflow/pkg/memcache"
	"tripflow/pkg/utils"
)

const purchaseOptionsField = "purchaseOptions"
const selectedTripField = "selectedTripForEdit"

const (
	ManageActionChangeDates = "change_dates"
	ManageActionCancel      = "cancel"
)

type TripServiceInterface interface {
	SaveCurrent(ctx context.Context, sessionID string, req request_models.SaveTripRequest) (*response_models.SavedTrip, error)
	SelectForEdit(ctx context.Context, sessionID, tripID string) (*response_models.CurrentPlan, error)
	List(ctx context.Context) (*response_models.TripListResponse, error)
	Delete(ctx context.Context, tripID string) error
	Checkout(ctx context.Context, sessionID, tripID string, req request_models.CheckoutRequest) (*response_models.SavedTrip, error)
	Manage(ctx context.Context, tripID string, req request_models.ManageTripRequest) (*response_models.SavedTrip, error)
	RateActivity(ctx context.Context, tripID string, req request_models.RateActivityRequest) error
	Ratings(ctx context.Context) ([]response_models.ActivityRating, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	ratingRepo  repositories.RatingRepository
	schedules   ScheduleServiceInterface
	store       mem.SessionStore
	recommender RecommendServiceInterface
	now         func() time.Time
}

func NewTripService(
	tripRepo repositories.TripRepository,
	ratingRepo repositories.RatingRepository,
	schedules ScheduleServiceInterface,
	store mem.SessionStore,
	recommender RecommendServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		ratingRepo:  ratingRepo,
		schedules:   schedules,
		store:       store,
		recommender: recommender,
		now:         time.Now,
	}
}

// DetermineTripStatus derives a trip's lifecycle status from its dates and
// checkout marker, in strict priority order: past, then booked, then
// unbooked. An unparseable date is treated as an absent signal and
// evaluation falls through. Status is never trusted from storage; callers
// overwrite the stored value with this result on every load.
func DetermineTripStatus(trip response_models.SavedTrip, now time.Time) response_models.TripStatus {
	if end, ok := utils.ParseFlexibleDate(trip.TripEndDate); ok {
		if end.Before(now) {
			return response_models.StatusPast
		}
	} else if latest, ok := latestScheduleDate(trip); ok && latest.Before(now) {
		return response_models.StatusPast
	}

	if trip.CheckoutDate != "" {
		return response_models.StatusBooked
	}

	return response_models.StatusUnbooked
}

// latestScheduleDate is the maximum parseable per-day date of the trip. The
// undecided-dates sentinel never parses and so never contributes.
func latestScheduleDate(trip response_models.SavedTrip) (time.Time, bool) {
	days := trip.Schedule
	if len(days) == 0 && trip.Itinerary != nil {
		days = trip.Itinerary.Days
	}

	var latest time.Time
	found := false
	for _, day := range days {
		if t, ok := utils.ParseFlexibleDate(day.Date); ok {
			if !found || t.After(latest) {
				latest = t
				found = true
			}
		}
	}
	return latest, found
}

// isValidRecord is the minimal-shape invariant for stored trips. Records
// failing it are pruned on load.
func isValidRecord(trip response_models.SavedTrip) bool {
	return trip.ID != "" &&
		trip.Name != "" &&
		trip.Destination != "" &&
		(len(trip.Schedule) > 0 || trip.Itinerary != nil)
}

// pruneInvalid filters out records failing the minimal-shape invariant and
// reports how many were dropped.
func pruneInvalid(trips []response_models.SavedTrip) ([]response_models.SavedTrip, int) {
	valid := make([]response_models.SavedTrip, 0, len(trips))
	for _, trip := range trips {
		if isValidRecord(trip) {
			valid = append(valid, trip)
		}
	}
	return valid, len(trips) - len(valid)
}

func (s *TripService) SaveCurrent(ctx context.Context, sessionID string, req request_models.SaveTripRequest) (*response_models.SavedTrip, error) {
	if req.Name == "" {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.schedules.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A plan forked from a schedule-only record carries no itinerary, so the
	// destination has to come from the selected trip. A record with no
	// destination would only be pruned on the next load; refuse to write it.
	destination := plan.Itinerary.DestinationLabel()
	if destination == "" {
		var selected response_models.SavedTrip
		if s.store.Get(sessionID, selectedTripField, &selected) {
			destination = selected.Destination
		}
	}
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}

	now := s.now()
	trip := response_models.SavedTrip{
		ID:            fmt.Sprintf("trip-%d", now.UnixMilli()),
		Name:          req.Name,
		Destination:   destination,
		SavedAt:       now.Unix(),
		Itinerary:     plan.Itinerary,
		Schedule:      plan.Schedule,
		TripStartDate: req.TripStartDate,
		TripEndDate:   req.TripEndDate,
	}
	if plan.Itinerary != nil {
		trip.DurationDays = plan.Itinerary.DurationDays
	}
	if trip.DurationDays == 0 {
		trip.DurationDays = len(plan.Schedule)
	}
	trip.Status = DetermineTripStatus(trip, now)

	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	trips = append(trips, trip)
	if err := s.tripRepo.SaveAll(ctx, trips); err != nil {
		return nil, utils.ErrStorageError
	}

	if s.recommender != nil {
		if err := s.recommender.IndexSchedule(ctx, trip.Schedule); err != nil {
			log.Printf("Indexing activities for recommendations failed: %v", err)
		}
	}

	return &trip, nil
}

// SelectForEdit forks a saved trip into the active session. The saved
// record itself is never mutated by content edits; the fork becomes the
// session's current itinerary.
func (s *TripService) SelectForEdit(ctx context.Context, sessionID, tripID string) (*response_models.CurrentPlan, error) {
	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	i := s.findTrip(trips, tripID)
	if i == -1 {
		return nil, utils.ErrTripNotFound
	}
	if DetermineTripStatus(trips[i], s.now()) == response_models.StatusPast {
		return nil, utils.ErrTripNotEditable
	}

	if err := s.store.Put(sessionID, selectedTripField, trips[i], 0); err != nil {
		log.Printf("Storing selected trip failed: %v", err)
	}

	if trips[i].Itinerary != nil {
		return s.schedules.LoadItinerary(ctx, sessionID, trips[i].Itinerary)
	}

	plan := &response_models.CurrentPlan{Schedule: trips[i].Schedule}
	if err := s.store.Put(sessionID, currentItineraryField, plan, 0); err != nil {
		return nil, utils.ErrStorageError
	}
	return plan, nil
}

// List loads the collection, prunes malformed records, re-derives every
// status, and persists the pruned collection back when anything was removed.
func (s *TripService) List(ctx context.Context) (*response_models.TripListResponse, error) {
	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	valid, pruned := pruneInvalid(trips)

	now := s.now()
	for i := range valid {
		valid[i].Status = DetermineTripStatus(valid[i], now)
	}

	if pruned > 0 {
		if err := s.tripRepo.SaveAll(ctx, valid); err != nil {
			log.Printf("Persisting pruned trip collection failed: %v", err)
		}
	}

	return &response_models.TripListResponse{Trips: valid, Pruned: pruned}, nil
}

func (s *TripService) findTrip(trips []response_models.SavedTrip, tripID string) int {
	for i := range trips {
		if trips[i].ID == tripID {
			return i
		}
	}
	return -1
}

// Delete removes an unbooked trip. Booked trips go through the manage flow
// and past trips are read-only.
func (s *TripService) Delete(ctx context.Context, tripID string) error {
	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return utils.ErrStorageError
	}

	i := s.findTrip(trips, tripID)
	if i == -1 {
		return utils.ErrTripNotFound
	}
	if DetermineTripStatus(trips[i], s.now()) != response_models.StatusUnbooked {
		return utils.ErrTripNotEditable
	}

	trips = append(trips[:i], trips[i+1:]...)
	if err := s.tripRepo.SaveAll(ctx, trips); err != nil {
		return utils.ErrStorageError
	}
	return nil
}

// Checkout marks an unbooked trip as checked out and records the purchase
// selection in the session store. No payment is captured here.
func (s *TripService) Checkout(ctx context.Context, sessionID, tripID string, req request_models.CheckoutRequest) (*response_models.SavedTrip, error) {
	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	i := s.findTrip(trips, tripID)
	if i == -1 {
		return nil, utils.ErrTripNotFound
	}

	now := s.now()
	if DetermineTripStatus(trips[i], now) != response_models.StatusUnbooked {
		return nil, utils.ErrTripNotEditable
	}

	trips[i].CheckoutDate = utils.FormatDate(now)
	trips[i].Status = DetermineTripStatus(trips[i], now)

	if err := s.tripRepo.SaveAll(ctx, trips); err != nil {
		return nil, utils.ErrStorageError
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	opts := response_models.PurchaseOptions{
		TripID:            tripID,
		IncludeFlights:    req.IncludeFlights,
		IncludeHotel:      req.IncludeHotel,
		IncludeActivities: req.IncludeActivities,
		Currency:          currency,
	}
	if err := s.store.Put(sessionID, purchaseOptionsField, opts, 0); err != nil {
		log.Printf("Storing purchase options failed: %v", err)
	}

	return &trips[i], nil
}

// Manage applies a booked-trip modification: a date change, or a
// cancellation that clears the checkout marker and returns the trip to
// unbooked.
func (s *TripService) Manage(ctx context.Context, tripID string, req request_models.ManageTripRequest) (*response_models.SavedTrip, error) {
	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	i := s.findTrip(trips, tripID)
	if i == -1 {
		return nil, utils.ErrTripNotFound
	}

	now := s.now()
	if DetermineTripStatus(trips[i], now) != response_models.StatusBooked {
		return nil, utils.ErrTripNotEditable
	}

	switch req.Action {
	case ManageActionChangeDates:
		if req.TripStartDate != "" {
			trips[i].TripStartDate = req.TripStartDate
		}
		if req.TripEndDate != "" {
			trips[i].TripEndDate = req.TripEndDate
		}
	case ManageActionCancel:
		trips[i].CheckoutDate = ""
	default:
		return nil, utils.ErrInvalidInput
	}

	trips[i].Status = DetermineTripStatus(trips[i], now)

	if err := s.tripRepo.SaveAll(ctx, trips); err != nil {
		return nil, utils.ErrStorageError
	}
	return &trips[i], nil
}

// RateActivity records a post-hoc rating for an activity of a past trip.
func (s *TripService) RateActivity(ctx context.Context, tripID string, req request_models.RateActivityRequest) error {
	if req.ActivityName == "" || req.Stars < 1 || req.Stars > 5 {
		return utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.LoadAll(ctx)
	if err != nil {
		return utils.ErrStorageError
	}

	i := s.findTrip(trips, tripID)
	if i == -1 {
		return utils.ErrTripNotFound
	}

	now := s.now()
	if DetermineTripStatus(trips[i], now) != response_models.StatusPast {
		return utils.ErrTripNotEditable
	}

	days := trips[i].Schedule
	if len(days) == 0 && trips[i].Itinerary != nil {
		days = trips[i].Itinerary.Days
	}
	found := false
	for _, day := range days {
		for _, act := range day.Activities {
			if act.Name == req.ActivityName {
				found = true
				break
			}
		}
	}
	if !found {
		return utils.ErrActivityNotFound
	}

	return s.ratingRepo.Append(ctx, response_models.ActivityRating{
		TripID:       tripID,
		ActivityName: req.ActivityName,
		Stars:        req.Stars,
		Comment:      req.Comment,
		RatedAt:      now.Unix(),
	})
}

func (s *TripService) Ratings(ctx context.Context) ([]response_models.ActivityRating, error) {
	ratings, err := s.ratingRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	return ratings, nil
}
