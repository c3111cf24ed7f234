package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	mem "tripflow/pkg/memcache"
	"tripflow/pkg/utils"
)

const currentItineraryField = "currentItinerary"

// Default activity appended when the user adds an empty slot.
const (
	defaultActivityTime = "12:00"
	defaultActivityName = "New Activity"
)

type ScheduleServiceInterface interface {
	LoadItinerary(ctx context.Context, sessionID string, itinerary *response_models.Itinerary) (*response_models.CurrentPlan, error)
	Current(ctx context.Context, sessionID string) (*response_models.CurrentPlan, error)
	EditActivity(ctx context.Context, sessionID string, req request_models.EditActivityRequest) (*response_models.CurrentPlan, error)
	DeleteActivity(ctx context.Context, sessionID string, req request_models.DeleteActivityRequest) (*response_models.CurrentPlan, error)
	AddActivity(ctx context.Context, sessionID string, req request_models.AddActivityRequest) (*response_models.CurrentPlan, error)
	SwapActivity(ctx context.Context, sessionID string, req request_models.SwapActivityRequest) (*response_models.CurrentPlan, error)
	Alternatives(ctx context.Context, sessionID string) ([]response_models.Activity, error)
}

type ScheduleService struct {
	store mem.SessionStore
}

func NewScheduleService(store mem.SessionStore) ScheduleServiceInterface {
	return &ScheduleService{store: store}
}

// projectActivity reduces a raw planner activity to the internal shape,
// dropping alternatives and any richer fields. A stable id is assigned the
// first time an activity enters a schedule; edits and deletes target that
// id, never the array position.
func projectActivity(raw response_models.Activity) response_models.Activity {
	a := response_models.Activity{
		ID:          raw.ID,
		Time:        raw.Time,
		Name:        raw.Name,
		Price:       raw.Price,
		Type:        raw.Type,
		Description: raw.Description,
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Type == "" {
		a.Type = response_models.ActivityTypeEstimated
	}
	if a.Price < 0 {
		a.Price = 0
	}
	return a
}

// sortActivities orders a day's activities ascending by time-of-day. The
// sort is explicitly stable: identical times preserve relative input order.
// Unparseable times sort after all parseable ones, keeping their order.
func sortActivities(activities []response_models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		ti, iok := utils.ParseTimeOfDay(activities[i].Time)
		tj, jok := utils.ParseTimeOfDay(activities[j].Time)
		switch {
		case iok && jok:
			return ti.Before(tj)
		case iok:
			return true
		default:
			return false
		}
	})
}

// NormalizeDay projects each raw activity and sorts the day by time. Days
// are normalized independently.
func NormalizeDay(day response_models.ItineraryDay) response_models.ItineraryDay {
	out := response_models.ItineraryDay{
		Day:        day.Day,
		Date:       day.Date,
		City:       day.City,
		Activities: make([]response_models.Activity, 0, len(day.Activities)),
	}
	for _, raw := range day.Activities {
		out.Activities = append(out.Activities, projectActivity(raw))
	}
	sortActivities(out.Activities)
	return out
}

// NormalizeSchedule derives the editable schedule from a planner itinerary:
// every day normalized, days ordered by day number.
func NormalizeSchedule(itinerary *response_models.Itinerary) []response_models.ItineraryDay {
	if itinerary == nil {
		return nil
	}
	days := make([]response_models.ItineraryDay, 0, len(itinerary.Days))
	for _, d := range itinerary.Days {
		days = append(days, NormalizeDay(d))
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

func findDay(days []response_models.ItineraryDay, dayNumber int) int {
	for i := range days {
		if days[i].Day == dayNumber {
			return i
		}
	}
	return -1
}

func findActivity(activities []response_models.Activity, activityID string) int {
	for i := range activities {
		if activities[i].ID == activityID {
			return i
		}
	}
	return -1
}

// EditActivity replaces the identified activity and re-sorts its day.
func EditActivity(days []response_models.ItineraryDay, dayNumber int, activityID string, updated response_models.Activity) ([]response_models.ItineraryDay, error) {
	di := findDay(days, dayNumber)
	if di == -1 {
		return nil, utils.ErrDayNotFound
	}
	ai := findActivity(days[di].Activities, activityID)
	if ai == -1 {
		return nil, utils.ErrActivityNotFound
	}

	updated.ID = activityID
	replacement := projectActivity(updated)
	if replacement.Time == "" {
		replacement.Time = days[di].Activities[ai].Time
	}
	days[di].Activities[ai] = replacement
	sortActivities(days[di].Activities)
	return days, nil
}

// DeleteActivity removes the identified activity from its day.
func DeleteActivity(days []response_models.ItineraryDay, dayNumber int, activityID string) ([]response_models.ItineraryDay, error) {
	di := findDay(days, dayNumber)
	if di == -1 {
		return nil, utils.ErrDayNotFound
	}
	ai := findActivity(days[di].Activities, activityID)
	if ai == -1 {
		return nil, utils.ErrActivityNotFound
	}

	days[di].Activities = append(days[di].Activities[:ai], days[di].Activities[ai+1:]...)
	return days, nil
}

// AddActivity appends the given activity, or a default placeholder when nil,
// then re-sorts the day.
func AddActivity(days []response_models.ItineraryDay, dayNumber int, activity *response_models.Activity) ([]response_models.ItineraryDay, error) {
	di := findDay(days, dayNumber)
	if di == -1 {
		return nil, utils.ErrDayNotFound
	}

	var added response_models.Activity
	if activity == nil {
		added = response_models.Activity{
			Time:  defaultActivityTime,
			Name:  defaultActivityName,
			Price: 0,
			Type:  response_models.ActivityTypeEstimated,
		}
	} else {
		added = *activity
	}
	added = projectActivity(added)
	if added.Time == "" {
		added.Time = defaultActivityTime
	}

	days[di].Activities = append(days[di].Activities, added)
	sortActivities(days[di].Activities)
	return days, nil
}

// SwapToAlternative replaces the identified activity's descriptive fields
// with the alternative's. Exactly one instance is affected: matching is by
// stable id, never by name, so same-named activities on other days are left
// alone. The slot's time and id survive the swap.
func SwapToAlternative(days []response_models.ItineraryDay, activityID string, alternative response_models.Activity) ([]response_models.ItineraryDay, error) {
	for di := range days {
		ai := findActivity(days[di].Activities, activityID)
		if ai == -1 {
			continue
		}

		target := &days[di].Activities[ai]
		target.Name = alternative.Name
		target.Price = alternative.Price
		if alternative.Type != "" {
			target.Type = alternative.Type
		}
		target.Description = alternative.Description
		if alternative.Price < 0 {
			target.Price = 0
		}
		sortActivities(days[di].Activities)
		return days, nil
	}
	return nil, utils.ErrActivityNotFound
}

// AlternativesPool flattens the itinerary's per-activity alternatives into a
// deduplicated list, excluding any alternative whose name already appears as
// a scheduled activity's name (case-sensitive exact match). Duplicate
// alternative names across source activities collapse to the first seen.
func AlternativesPool(itinerary *response_models.Itinerary, schedule []response_models.ItineraryDay) []response_models.Activity {
	scheduled := make(map[string]bool)
	for _, day := range schedule {
		for _, act := range day.Activities {
			scheduled[act.Name] = true
		}
	}

	seen := make(map[string]bool)
	pool := make([]response_models.Activity, 0)
	if itinerary == nil {
		return pool
	}
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			for _, alt := range act.Alternatives {
				if seen[alt.Name] || scheduled[alt.Name] {
					continue
				}
				seen[alt.Name] = true
				pool = append(pool, projectActivity(alt))
			}
		}
	}
	return pool
}

func (s *ScheduleService) LoadItinerary(ctx context.Context, sessionID string, itinerary *response_models.Itinerary) (*response_models.CurrentPlan, error) {
	if itinerary == nil {
		return nil, utils.ErrInvalidInput
	}

	plan := &response_models.CurrentPlan{
		Itinerary: itinerary,
		Schedule:  NormalizeSchedule(itinerary),
	}
	if err := s.store.Put(sessionID, currentItineraryField, plan, 0); err != nil {
		return nil, utils.ErrStorageError
	}
	return plan, nil
}

func (s *ScheduleService) Current(ctx context.Context, sessionID string) (*response_models.CurrentPlan, error) {
	var plan response_models.CurrentPlan
	if !s.store.Get(sessionID, currentItineraryField, &plan) {
		return nil, utils.ErrNoItineraryLoaded
	}
	return &plan, nil
}

func (s *ScheduleService) mutate(ctx context.Context, sessionID string, op func([]response_models.ItineraryDay) ([]response_models.ItineraryDay, error)) (*response_models.CurrentPlan, error) {
	plan, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	schedule, err := op(plan.Schedule)
	if err != nil {
		return nil, err
	}
	plan.Schedule = schedule

	if err := s.store.Put(sessionID, currentItineraryField, plan, 0); err != nil {
		return nil, utils.ErrStorageError
	}
	return plan, nil
}

func (s *ScheduleService) EditActivity(ctx context.Context, sessionID string, req request_models.EditActivityRequest) (*response_models.CurrentPlan, error) {
	return s.mutate(ctx, sessionID, func(days []response_models.ItineraryDay) ([]response_models.ItineraryDay, error) {
		return EditActivity(days, req.Day, req.ActivityID, req.Activity)
	})
}

func (s *ScheduleService) DeleteActivity(ctx context.Context, sessionID string, req request_models.DeleteActivityRequest) (*response_models.CurrentPlan, error) {
	return s.mutate(ctx, sessionID, func(days []response_models.ItineraryDay) ([]response_models.ItineraryDay, error) {
		return DeleteActivity(days, req.Day, req.ActivityID)
	})
}

func (s *ScheduleService) AddActivity(ctx context.Context, sessionID string, req request_models.AddActivityRequest) (*response_models.CurrentPlan, error) {
	return s.mutate(ctx, sessionID, func(days []response_models.ItineraryDay) ([]response_models.ItineraryDay, error) {
		return AddActivity(days, req.Day, req.Activity)
	})
}

func (s *ScheduleService) SwapActivity(ctx context.Context, sessionID string, req request_models.SwapActivityRequest) (*response_models.CurrentPlan, error) {
	return s.mutate(ctx, sessionID, func(days []response_models.ItineraryDay) ([]response_models.ItineraryDay, error) {
		return SwapToAlternative(days, req.ActivityID, req.Alternative)
	})
}

func (s *ScheduleService) Alternatives(ctx context.Context, sessionID string) ([]response_models.Activity, error) {
	plan, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return AlternativesPool(plan.Itinerary, plan.Schedule), nil
}
