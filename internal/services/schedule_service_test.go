package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/pkg/utils"
)

// stubStore is an in-memory SessionStore without expiry, for service tests.
type stubStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Put(sessionID, field string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID+":"+field] = b
	return nil
}

func (s *stubStore) Get(sessionID, field string, out any) bool {
	s.mu.Lock()
	b, ok := s.data[sessionID+":"+field]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

func (s *stubStore) Delete(sessionID, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID+":"+field)
}

func day(dayNum int, date string, activities ...response_models.Activity) response_models.ItineraryDay {
	return response_models.ItineraryDay{Day: dayNum, Date: date, Activities: activities}
}

func act(t, name string, price float64, typ string) response_models.Activity {
	return response_models.Activity{Time: t, Name: name, Price: price, Type: typ}
}

func TestNormalizeDay_SortsByTime(t *testing.T) {
	d := day(1, "2024-07-15",
		act("15:00", "Museum", 20, response_models.ActivityTypeBookable),
		act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated),
		act("11:30", "Walking Tour", 0, response_models.ActivityTypeBookable),
	)

	got := NormalizeDay(d)

	require.Len(t, got.Activities, 3)
	assert.Equal(t, "Breakfast", got.Activities[0].Name)
	assert.Equal(t, "Walking Tour", got.Activities[1].Name)
	assert.Equal(t, "Museum", got.Activities[2].Name)
}

func TestNormalizeDay_Idempotent(t *testing.T) {
	d := day(1, "2024-07-15",
		act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated),
		act("15:00", "Museum", 20, response_models.ActivityTypeBookable),
	)

	once := NormalizeDay(d)
	twice := NormalizeDay(once)

	assert.Equal(t, once, twice, "normalizing a sorted day must not reorder or duplicate")
}

func TestNormalizeDay_StableForTies(t *testing.T) {
	d := day(1, "",
		act("10:00", "First", 0, response_models.ActivityTypeEstimated),
		act("10:00", "Second", 0, response_models.ActivityTypeEstimated),
		act("08:00", "Earlier", 0, response_models.ActivityTypeEstimated),
	)

	got := NormalizeDay(d)

	assert.Equal(t, "Earlier", got.Activities[0].Name)
	assert.Equal(t, "First", got.Activities[1].Name)
	assert.Equal(t, "Second", got.Activities[2].Name)
}

func TestNormalizeDay_UnparseableTimesSortLast(t *testing.T) {
	d := day(1, "",
		act("whenever", "Vague", 0, response_models.ActivityTypeEstimated),
		act("09:00", "Solid", 0, response_models.ActivityTypeBookable),
	)

	got := NormalizeDay(d)

	assert.Equal(t, "Solid", got.Activities[0].Name)
	assert.Equal(t, "Vague", got.Activities[1].Name)
}

func TestNormalizeDay_ProjectsAndAssignsIDs(t *testing.T) {
	raw := act("09:00", "Temple Visit", 15, response_models.ActivityTypeBookable)
	raw.Alternatives = []response_models.Activity{act("09:00", "Shrine Visit", 10, response_models.ActivityTypeBookable)}

	got := NormalizeDay(day(1, "2024-07-15", raw))

	require.Len(t, got.Activities, 1)
	a := got.Activities[0]
	assert.NotEmpty(t, a.ID, "normalization must assign a stable id")
	assert.Nil(t, a.Alternatives, "projection must drop alternatives")

	// Re-normalizing keeps the assigned id.
	again := NormalizeDay(got)
	assert.Equal(t, a.ID, again.Activities[0].ID)
}

func TestNormalizeSchedule_OrdersDays(t *testing.T) {
	it := &response_models.Itinerary{
		Days: []response_models.ItineraryDay{
			day(3, "2024-07-17"),
			day(1, "2024-07-15"),
			day(2, "2024-07-16"),
		},
	}

	got := NormalizeSchedule(it)

	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Day, got[1].Day, got[2].Day})
}

func normalizedDays(t *testing.T, days ...response_models.ItineraryDay) []response_models.ItineraryDay {
	t.Helper()
	return NormalizeSchedule(&response_models.Itinerary{Days: days})
}

func TestEditActivity_ResortsDay(t *testing.T) {
	days := normalizedDays(t, day(1, "",
		act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated),
		act("15:00", "Museum", 20, response_models.ActivityTypeBookable),
	))
	target := days[0].Activities[0] // Breakfast

	updated := target
	updated.Time = "18:00"
	updated.Name = "Late Breakfast"

	got, err := EditActivity(days, 1, target.ID, updated)
	require.NoError(t, err)

	require.Len(t, got[0].Activities, 2)
	assert.Equal(t, "Museum", got[0].Activities[0].Name)
	assert.Equal(t, "Late Breakfast", got[0].Activities[1].Name)
	assert.Equal(t, target.ID, got[0].Activities[1].ID, "edit must not change the stable id")
}

func TestEditActivity_UnknownTargets(t *testing.T) {
	days := normalizedDays(t, day(1, "", act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated)))

	_, err := EditActivity(days, 2, days[0].Activities[0].ID, act("10:00", "X", 0, ""))
	assert.ErrorIs(t, err, utils.ErrDayNotFound)

	_, err = EditActivity(days, 1, "no-such-id", act("10:00", "X", 0, ""))
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestDeleteActivity_RemovesOnlyTarget(t *testing.T) {
	days := normalizedDays(t, day(1, "",
		act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated),
		act("15:00", "Museum", 20, response_models.ActivityTypeBookable),
	))
	target := days[0].Activities[1] // Museum

	got, err := DeleteActivity(days, 1, target.ID)
	require.NoError(t, err)

	require.Len(t, got[0].Activities, 1)
	assert.Equal(t, "Breakfast", got[0].Activities[0].Name)

	_, err = DeleteActivity(got, 1, target.ID)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestAddActivity_DefaultPlaceholder(t *testing.T) {
	days := normalizedDays(t, day(1, "",
		act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated),
		act("15:00", "Museum", 20, response_models.ActivityTypeBookable),
	))

	got, err := AddActivity(days, 1, nil)
	require.NoError(t, err)

	require.Len(t, got[0].Activities, 3)
	added := got[0].Activities[1] // 12:00 slots between 09:00 and 15:00
	assert.Equal(t, defaultActivityName, added.Name)
	assert.Equal(t, defaultActivityTime, added.Time)
	assert.Equal(t, response_models.ActivityTypeEstimated, added.Type)
	assert.Zero(t, added.Price)
	assert.NotEmpty(t, added.ID)
}

func TestAddActivity_ChosenAlternative(t *testing.T) {
	days := normalizedDays(t, day(1, "", act("09:00", "Breakfast", 12, response_models.ActivityTypeEstimated)))

	alt := act("07:30", "Sunrise Hike", 25, response_models.ActivityTypeBookable)
	got, err := AddActivity(days, 1, &alt)
	require.NoError(t, err)

	require.Len(t, got[0].Activities, 2)
	assert.Equal(t, "Sunrise Hike", got[0].Activities[0].Name, "added activity must land in time order")
}

func TestSwapToAlternative_AffectsSingleInstance(t *testing.T) {
	days := normalizedDays(t,
		day(1, "", act("12:00", "Lunch", 15, response_models.ActivityTypeEstimated)),
		day(2, "", act("12:00", "Lunch", 15, response_models.ActivityTypeEstimated)),
	)
	target := days[0].Activities[0]

	alt := response_models.Activity{
		Name:        "Street Food Tour",
		Price:       30,
		Type:        response_models.ActivityTypeBookable,
		Description: "Guided tasting walk",
	}

	got, err := SwapToAlternative(days, target.ID, alt)
	require.NoError(t, err)

	swapped := got[0].Activities[0]
	assert.Equal(t, "Street Food Tour", swapped.Name)
	assert.Equal(t, 30.0, swapped.Price)
	assert.Equal(t, response_models.ActivityTypeBookable, swapped.Type)
	assert.Equal(t, target.ID, swapped.ID)
	assert.Equal(t, "12:00", swapped.Time, "swap keeps the slot's time")

	assert.Equal(t, "Lunch", got[1].Activities[0].Name, "same-named activity on another day must be untouched")
}

func TestSwapToAlternative_UnknownID(t *testing.T) {
	days := normalizedDays(t, day(1, "", act("12:00", "Lunch", 15, response_models.ActivityTypeEstimated)))

	_, err := SwapToAlternative(days, "ghost", response_models.Activity{Name: "X"})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestAlternativesPool_ExcludesScheduledNames(t *testing.T) {
	raw := act("09:00", "City Walk", 0, response_models.ActivityTypeEstimated)
	raw.Alternatives = []response_models.Activity{
		act("09:00", "Bike Tour", 18, response_models.ActivityTypeBookable),
		act("09:00", "City Walk", 0, response_models.ActivityTypeEstimated), // already scheduled
	}
	it := &response_models.Itinerary{Days: []response_models.ItineraryDay{day(1, "", raw)}}
	schedule := NormalizeSchedule(it)

	pool := AlternativesPool(it, schedule)

	require.Len(t, pool, 1)
	assert.Equal(t, "Bike Tour", pool[0].Name)

	// Removing the scheduled activity makes the same-named alternative
	// reappear in the pool.
	schedule, err := DeleteActivity(schedule, 1, schedule[0].Activities[0].ID)
	require.NoError(t, err)

	pool = AlternativesPool(it, schedule)
	require.Len(t, pool, 2)
	names := []string{pool[0].Name, pool[1].Name}
	assert.Contains(t, names, "City Walk")
	assert.Contains(t, names, "Bike Tour")
}

func TestAlternativesPool_CollapsesDuplicateNames(t *testing.T) {
	first := act("09:00", "A", 0, response_models.ActivityTypeEstimated)
	first.Alternatives = []response_models.Activity{act("09:00", "Boat Trip", 40, response_models.ActivityTypeBookable)}
	second := act("14:00", "B", 0, response_models.ActivityTypeEstimated)
	second.Alternatives = []response_models.Activity{act("14:00", "Boat Trip", 55, response_models.ActivityTypeBookable)}

	it := &response_models.Itinerary{Days: []response_models.ItineraryDay{day(1, "", first, second)}}
	pool := AlternativesPool(it, NormalizeSchedule(it))

	require.Len(t, pool, 1)
	assert.Equal(t, 40.0, pool[0].Price, "first occurrence wins")
}

func TestScheduleService_EndToEnd(t *testing.T) {
	svc := NewScheduleService(newStubStore())
	ctx := context.Background()

	it := &response_models.Itinerary{
		Variant:     response_models.VariantSingleCity,
		Destination: "Lisbon",
		Days: []response_models.ItineraryDay{
			day(1, "2024-07-15",
				act("18:00", "Dinner", 65, response_models.ActivityTypeEstimated),
				act("09:00", "Arrive", 0, response_models.ActivityTypeBookable),
			),
		},
	}

	plan, err := svc.LoadItinerary(ctx, "s1", it)
	require.NoError(t, err)

	require.Len(t, plan.Schedule, 1)
	require.Len(t, plan.Schedule[0].Activities, 2)
	assert.Equal(t, "Arrive", plan.Schedule[0].Activities[0].Name)
	assert.Equal(t, "Dinner", plan.Schedule[0].Activities[1].Name)

	costs := ComputeCosts(plan.Itinerary, plan.Schedule, IncludeFlags{Flights: true, Hotel: true, Activities: true})
	assert.Equal(t, 0.0, costs.BookableActivitiesTotal, "estimated dinner must not be bookable")
	assert.Equal(t, 65.0, costs.EstimatedActivitiesTotal)

	// Mutations round-trip through the session store.
	got, err := svc.DeleteActivity(ctx, "s1", request_models.DeleteActivityRequest{
		Day:        1,
		ActivityID: plan.Schedule[0].Activities[1].ID,
	})
	require.NoError(t, err)
	require.Len(t, got.Schedule[0].Activities, 1)

	reloaded, err := svc.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, got.Schedule, reloaded.Schedule)
}

func TestScheduleService_NoItineraryLoaded(t *testing.T) {
	svc := NewScheduleService(newStubStore())

	_, err := svc.Current(context.Background(), "nobody")
	assert.ErrorIs(t, err, utils.ErrNoItineraryLoaded)
}
