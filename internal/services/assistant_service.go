package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/pkg/utils"
)

type AssistantServiceInterface interface {
	Chat(ctx context.Context, sessionID string, req request_models.ChatRequest) (*response_models.ChatResponse, error)
	GenerateItinerary(ctx context.Context, sessionID string, req request_models.GenerateItineraryRequest) (*response_models.ChatResponse, error)
	ExtractLocations(prompt string) []string
}

type AssistantService struct {
	planner   utils.PlannerClientInterface
	schedules ScheduleServiceInterface

	mu     sync.Mutex
	latest map[string]uint64
}

func NewAssistantService(planner utils.PlannerClientInterface, schedules ScheduleServiceInterface) AssistantServiceInterface {
	return &AssistantService{
		planner:   planner,
		schedules: schedules,
		latest:    make(map[string]uint64),
	}
}

// issueSequence hands out the next request token for a session. The most
// recent user intent wins: any response carrying an older token is
// discarded when it finally resolves.
func (a *AssistantService) issueSequence(sessionID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latest[sessionID]++
	return a.latest[sessionID]
}

func (a *AssistantService) isLatest(sessionID string, seq uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.latest[sessionID] == seq
}

// commitPlan writes a generated itinerary into session state, but only when
// seq is still the session's newest token. Check and write share one critical
// section so a response overtaken mid-flight can never land after the newer
// one already committed.
func (a *AssistantService) commitPlan(ctx context.Context, sessionID string, seq uint64, itinerary *response_models.Itinerary) (*response_models.CurrentPlan, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.latest[sessionID] != seq {
		return nil, utils.ErrSupersededRequest
	}
	return a.schedules.LoadItinerary(ctx, sessionID, itinerary)
}

const itinerarySchema = `{
  "variant": "single_city",
  "destination": "string",
  "duration_days": 3,
  "flights": [
    {"airline":"string","flight_number":"string","from":"string","to":"string","departure":"2024-07-15T08:00","arrival":"2024-07-15T11:00","price":250.0,
     "alternatives":[{"airline":"string","from":"string","to":"string","price":210.0}]}
  ],
  "hotel": {"name":"string","address":"string","price":120.0,"total_nights":3,"rating":4.5,
            "alternatives":[{"name":"string","price":95.0,"total_nights":3}]},
  "days": [
    {"day":1,"date":"2024-07-15","activities":[
      {"time":"09:00","name":"string","price":0.0,"type":"bookable","description":"string",
       "alternatives":[{"time":"09:00","name":"string","price":12.0,"type":"estimated"}]}
    ]}
  ],
  "total_cost": 1000.0, "bookable_cost": 700.0, "estimated_cost": 300.0
}`

func buildItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	var b strings.Builder

	b.WriteString("Create a trip itinerary. Return JSON only, matching this schema exactly:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\nHard constraints:\n")
	fmt.Fprintf(&b, "- Exactly %d entries in \"days\", day = 1..%d with no gaps.\n", req.DurationDays, req.DurationDays)
	b.WriteString("- Activity times formatted HH:MM, 2-5 activities per day, sorted ascending by time.\n")
	b.WriteString("- Every price in USD. Activity type is \"bookable\" for firm purchasable prices, \"estimated\" otherwise.\n")
	b.WriteString("- Exactly one outbound and one return flight for single-city trips.\n")

	if len(req.Destinations) > 1 {
		b.WriteString("- variant is \"multi_city\"; fill \"destinations\", \"hotels\" (one per city, with city set), and \"transport_legs\" between cities; set \"city\" on each day.\n")
		fmt.Fprintf(&b, "\nDestinations: %s\n", strings.Join(req.Destinations, ", "))
	} else {
		dest := req.Destination
		if dest == "" && len(req.Destinations) == 1 {
			dest = req.Destinations[0]
		}
		fmt.Fprintf(&b, "\nDestination: %s\n", dest)
	}

	if req.UndecidedDates {
		fmt.Fprintf(&b, "- The traveler has not committed to dates: set every day's \"date\" to %q.\n", response_models.UndecidedDates)
	} else if req.StartDate != "" {
		fmt.Fprintf(&b, "- First day's date is %s; subsequent days are consecutive, formatted YYYY-MM-DD.\n", req.StartDate)
	}
	if req.Interests != "" {
		fmt.Fprintf(&b, "\nTraveler interests (bias activity selection): %s\n", req.Interests)
	}

	b.WriteString("\nReturn JSON only. No comments, no markdown.")
	return b.String()
}

func buildChatPrompt(message string, locations []string) string {
	var b strings.Builder

	b.WriteString("The traveler wrote the message below. Infer destination, trip length and preferences and create a trip itinerary. Return JSON only, matching this schema exactly:\n")
	b.WriteString(itinerarySchema)
	if len(locations) > 0 {
		fmt.Fprintf(&b, "\n\nDestination hints extracted from the message: %s", strings.Join(locations, ", "))
	}
	fmt.Fprintf(&b, "\n\nIf the message commits to no dates, set every day's \"date\" to %q.", response_models.UndecidedDates)
	fmt.Fprintf(&b, "\n\nTraveler message: %s\n\nReturn JSON only. No comments, no markdown.", message)
	return b.String()
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`to\s+([A-Za-z\s]+?)(?:\s+in|\s+for|\s+during|\s+\d|$)`),
	regexp.MustCompile(`in\s+([A-Za-z\s]+?)(?:\s+for|\s+during|\s+\d|$)`),
	regexp.MustCompile(`visit\s+([A-Za-z\s]+?)(?:\s+in|\s+for|\s+during|\s+\d|$)`),
	regexp.MustCompile(`around\s+([A-Za-z\s]+?)(?:\s+in|\s+for|\s+during|\s+\d|$)`),
}

// ExtractLocations pulls destination candidates out of a free-form chat
// message to seed the planner prompt.
func (a *AssistantService) ExtractLocations(prompt string) []string {
	var locations []string
	lower := strings.ToLower(prompt)

	for _, re := range locationPatterns {
		for _, match := range re.FindAllStringSubmatch(lower, -1) {
			if len(match) > 1 {
				location := strings.TrimSpace(match[1])
				if len(location) > 2 && len(location) < 50 {
					locations = append(locations, location)
				}
			}
		}
	}

	seen := make(map[string]bool)
	var unique []string
	for _, loc := range locations {
		if !seen[loc] {
			seen[loc] = true
			unique = append(unique, loc)
		}
	}
	return unique
}

// parseItinerary decodes and sanity-checks a planner response.
func parseItinerary(raw string) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, fmt.Errorf("decoding itinerary: %w", err)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("itinerary has no days")
	}
	if itinerary.Variant == "" {
		if len(itinerary.Destinations) > 1 {
			itinerary.Variant = response_models.VariantMultiCity
		} else {
			itinerary.Variant = response_models.VariantSingleCity
		}
	}
	if itinerary.DurationDays == 0 {
		itinerary.DurationDays = len(itinerary.Days)
	}
	return &itinerary, nil
}

func (a *AssistantService) generate(ctx context.Context, sessionID, prompt string) (*response_models.ChatResponse, error) {
	seq := a.issueSequence(sessionID)

	raw, err := a.planner.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	// A newer request for this session was issued while this one was in
	// flight; its result must not clobber session state. This early check
	// skips parsing for responses already known to be stale; commitPlan
	// re-checks under the lock before writing.
	if !a.isLatest(sessionID, seq) {
		return nil, utils.ErrSupersededRequest
	}

	itinerary, err := parseItinerary(raw)
	if err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	plan, err := a.commitPlan(ctx, sessionID, seq, itinerary)
	if err != nil {
		return nil, err
	}

	return &response_models.ChatResponse{
		Reply:     fmt.Sprintf("Here is a %d-day plan for %s.", itinerary.DurationDays, itinerary.DestinationLabel()),
		Sequence:  seq,
		Itinerary: plan.Itinerary,
	}, nil
}

func (a *AssistantService) Chat(ctx context.Context, sessionID string, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.ErrInvalidInput
	}
	return a.generate(ctx, sessionID, buildChatPrompt(req.Message, a.ExtractLocations(req.Message)))
}

func (a *AssistantService) GenerateItinerary(ctx context.Context, sessionID string, req request_models.GenerateItineraryRequest) (*response_models.ChatResponse, error) {
	if req.DurationDays < 1 || req.DurationDays > 30 {
		return nil, utils.ErrInvalidInput
	}
	if req.Destination == "" && len(req.Destinations) == 0 {
		return nil, utils.ErrInvalidInput
	}
	return a.generate(ctx, sessionID, buildItineraryPrompt(req))
}
