package utils

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiPlannerClient implements PlannerClientInterface on the Gemini free
// tier. Generation is forced to JSON; embeddings fall back to a hash-based
// vector since the free tier has no dedicated embedding model.
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPlannerClient(apiKey, model string) (*GeminiPlannerClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlannerClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	if cached, found := getCachedPlan(planCacheKey(prompt)); found {
		log.Printf("Plan cache hit")
		return cached, nil
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(plannerSystemPrompt+"\n\n"+prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}

	setCachedPlan(planCacheKey(prompt), content)
	return content, nil
}

func (c *GeminiPlannerClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}

type cachedPlan struct {
	content   string
	timestamp time.Time
}

var planCache = struct {
	sync.RWMutex
	plans map[string]cachedPlan
}{plans: make(map[string]cachedPlan)}

func planCacheKey(prompt string) string {
	h := sha256.New()
	h.Write([]byte(prompt))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func getCachedPlan(key string) (string, bool) {
	planCache.RLock()
	defer planCache.RUnlock()

	cached, exists := planCache.plans[key]
	if !exists || time.Since(cached.timestamp) > time.Hour {
		return "", false
	}
	return cached.content, true
}

func setCachedPlan(key, content string) {
	planCache.Lock()
	defer planCache.Unlock()

	planCache.plans[key] = cachedPlan{content: content, timestamp: time.Now()}

	if len(planCache.plans) > 1000 {
		for k, cached := range planCache.plans {
			if time.Since(cached.timestamp) > 2*time.Hour {
				delete(planCache.plans, k)
			}
		}
	}
}

// textToVector creates a hash-based vector representation of text. Matches
// the embedding dimensionality of the OpenAI client so both providers share
// one index.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
