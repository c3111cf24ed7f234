package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/pkg/utils"
)

// fakePlanner lets a test script the planner response per call.
type fakePlanner struct {
	respond func(prompt string) (string, error)
	prompts []string
}

func (f *fakePlanner) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.respond(prompt)
}

func (f *fakePlanner) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(nil), nil
}

const validItineraryJSON = `{
  "variant": "single_city",
  "destination": "Lisbon",
  "duration_days": 1,
  "days": [
    {"day": 1, "date": "2025-01-10", "activities": [
      {"time": "15:00", "name": "Museum", "price": 20, "type": "bookable"},
      {"time": "09:00", "name": "Arrive", "price": 0, "type": "bookable"}
    ]}
  ]
}`

func newTestAssistant(respond func(string) (string, error)) (*AssistantService, *fakePlanner, ScheduleServiceInterface) {
	planner := &fakePlanner{respond: respond}
	schedules := NewScheduleService(newStubStore())
	svc := NewAssistantService(planner, schedules).(*AssistantService)
	return svc, planner, schedules
}

func TestChat_LoadsGeneratedItinerary(t *testing.T) {
	svc, planner, schedules := newTestAssistant(func(string) (string, error) {
		return validItineraryJSON, nil
	})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "s1", request_models.ChatRequest{Message: "Plan a weekend in Lisbon"})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), resp.Sequence)
	require.NotNil(t, resp.Itinerary)
	assert.Equal(t, "Lisbon", resp.Itinerary.Destination)

	require.Len(t, planner.prompts, 1)
	assert.Contains(t, planner.prompts[0], "lisbon", "extracted location hints feed the prompt")

	plan, err := schedules.Current(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, plan.Schedule, 1)
	assert.Equal(t, "Arrive", plan.Schedule[0].Activities[0].Name, "loaded schedule is normalized")
}

func TestChat_EmptyMessage(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) { return validItineraryJSON, nil })

	_, err := svc.Chat(context.Background(), "s1", request_models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerate_StaleResponseDiscarded(t *testing.T) {
	var svc *AssistantService
	svc, _, schedules := newTestAssistant(func(string) (string, error) {
		// A newer request arrives while this one is still in flight.
		svc.issueSequence("s1")
		return validItineraryJSON, nil
	})
	ctx := context.Background()

	_, err := svc.GenerateItinerary(ctx, "s1", request_models.GenerateItineraryRequest{
		Destination:  "Lisbon",
		DurationDays: 1,
	})
	assert.ErrorIs(t, err, utils.ErrSupersededRequest)

	_, err = schedules.Current(ctx, "s1")
	assert.ErrorIs(t, err, utils.ErrNoItineraryLoaded, "stale response must not clobber session state")
}

func TestCommitPlan_StaleTokenNeverWrites(t *testing.T) {
	svc, _, schedules := newTestAssistant(func(string) (string, error) { return validItineraryJSON, nil })
	ctx := context.Background()

	older := svc.issueSequence("s1")
	newer := svc.issueSequence("s1")

	stale := &response_models.Itinerary{Destination: "Rome", Days: []response_models.ItineraryDay{{Day: 1}}}
	current := &response_models.Itinerary{Destination: "Porto", Days: []response_models.ItineraryDay{{Day: 1}}}

	// The newer request commits first.
	_, err := svc.commitPlan(ctx, "s1", newer, current)
	require.NoError(t, err)

	// The older response resolves late; even though it passed any earlier
	// staleness check, the commit itself must refuse it.
	_, err = svc.commitPlan(ctx, "s1", older, stale)
	assert.ErrorIs(t, err, utils.ErrSupersededRequest)

	plan, err := schedules.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Porto", plan.Itinerary.Destination)
}

func TestGenerate_SequenceIsPerSession(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) { return validItineraryJSON, nil })
	ctx := context.Background()

	first, err := svc.GenerateItinerary(ctx, "a", request_models.GenerateItineraryRequest{Destination: "Rome", DurationDays: 1})
	require.NoError(t, err)
	second, err := svc.GenerateItinerary(ctx, "a", request_models.GenerateItineraryRequest{Destination: "Rome", DurationDays: 1})
	require.NoError(t, err)
	other, err := svc.GenerateItinerary(ctx, "b", request_models.GenerateItineraryRequest{Destination: "Rome", DurationDays: 1})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.Sequence)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.Equal(t, uint64(1), other.Sequence, "sessions count independently")
}

func TestGenerate_MalformedPlannerOutput(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) {
		return "sorry, I can't help with that", nil
	})

	_, err := svc.GenerateItinerary(context.Background(), "s1", request_models.GenerateItineraryRequest{
		Destination:  "Lisbon",
		DurationDays: 1,
	})
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
}

func TestGenerate_PlannerFailure(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) {
		return "", errors.New("upstream timeout")
	})

	_, err := svc.GenerateItinerary(context.Background(), "s1", request_models.GenerateItineraryRequest{
		Destination:  "Lisbon",
		DurationDays: 1,
	})
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
}

func TestGenerateItinerary_Validation(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) { return validItineraryJSON, nil })
	ctx := context.Background()

	_, err := svc.GenerateItinerary(ctx, "s1", request_models.GenerateItineraryRequest{Destination: "Lisbon"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput, "duration out of range")

	_, err = svc.GenerateItinerary(ctx, "s1", request_models.GenerateItineraryRequest{DurationDays: 3})
	assert.ErrorIs(t, err, utils.ErrInvalidInput, "destination required")

	_, err = svc.GenerateItinerary(ctx, "s1", request_models.GenerateItineraryRequest{Destination: "Lisbon", DurationDays: 31})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestParseItinerary_Defaults(t *testing.T) {
	it, err := parseItinerary(`{"destinations":["Rome","Florence"],"days":[{"day":1,"activities":[]}]}`)
	require.NoError(t, err)

	assert.Equal(t, response_models.VariantMultiCity, it.Variant)
	assert.Equal(t, 1, it.DurationDays)

	_, err = parseItinerary(`{"destination":"Rome","days":[]}`)
	assert.Error(t, err)
}

func TestExtractLocations(t *testing.T) {
	svc, _, _ := newTestAssistant(func(string) (string, error) { return validItineraryJSON, nil })

	got := svc.ExtractLocations("I want to visit Tokyo for 5 days")
	assert.Contains(t, got, "tokyo")

	got = svc.ExtractLocations("short")
	assert.Empty(t, got)
}
