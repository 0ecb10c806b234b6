package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"unzone-backend/models"

	"github.com/google/generative-ai-go/genai"
)

const (
	defaultGenerationAPI = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
	generationTimeout    = 30 * time.Second
)

// CoachResponse is what the coach hands back for a challenge outcome. It is
// always fully populated; the coach never surfaces a failure to its caller.
type CoachResponse struct {
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
	CoinsAwarded  int    `json:"coinsAwarded"`
}

// JournalInsight is the coach's take on a journal entry.
type JournalInsight struct {
	Summary   string           `json:"summary"`
	Sentiment models.Sentiment `json:"sentiment"`
	MoodTag   *string          `json:"moodTag"`
}

var (
	coachMessageRe = regexp.MustCompile(`(?s)COACH_MESSAGE:\s*(.*?)(?:COINS:|$)`)
	coinsRe        = regexp.MustCompile(`COINS:\s*(\d+)`)
	summaryRe      = regexp.MustCompile(`(?s)SUMMARY:\s*(.*?)(?:SENTIMENT:|$)`)
	sentimentRe    = regexp.MustCompile(`SENTIMENT:\s*(POSITIVE|NEUTRAL|NEGATIVE)`)
	moodRe         = regexp.MustCompile(`MOOD:\s*([A-Za-z][A-Za-z -]*)`)
)

// CoachService builds coaching prompts, sends them to the generative-text
// endpoint, and extracts the tagged fields from the reply. Every error path
// collapses into a hardcoded fallback.
type CoachService struct {
	geminiClient *genai.Client
	httpClient   *http.Client
	apiURL       string
	apiKey       string
}

// CoachServiceOption is a functional option for CoachService
type CoachServiceOption func(*CoachService)

// CoachWithGeminiClient sets the Gemini client
func CoachWithGeminiClient(client *genai.Client) CoachServiceOption {
	return func(s *CoachService) {
		s.geminiClient = client
	}
}

// CoachWithAPIKey sets the generation API key
func CoachWithAPIKey(key string) CoachServiceOption {
	return func(s *CoachService) {
		s.apiKey = key
	}
}

// CoachWithAPIURL overrides the generation endpoint (used by tests to point
// at a stub server)
func CoachWithAPIURL(url string) CoachServiceOption {
	return func(s *CoachService) {
		s.apiURL = url
	}
}

// CoachWithHTTPClient overrides the HTTP client
func CoachWithHTTPClient(client *http.Client) CoachServiceOption {
	return func(s *CoachService) {
		s.httpClient = client
	}
}

// NewCoachService creates a new coach service
func NewCoachService(opts ...CoachServiceOption) *CoachService {
	s := &CoachService{
		apiURL:     defaultGenerationAPI,
		httpClient: &http.Client{Timeout: generationTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChallengeCompleted reacts to a finished challenge with a celebratory
// message and a 5-10 coin award.
func (s *CoachService) ChallengeCompleted(ctx context.Context, challengeTitle, experience string) *CoachResponse {
	prompt := fmt.Sprintf(`You are a warm, encouraging life coach helping someone grow outside their comfort zone.

Challenge completed: %q
User's experience: %q

Respond as a supportive coach in 2-3 sentences. Be personal, celebrate their courage, and acknowledge their specific experience. Give them 5-10 courage coins as a reward. Keep it upbeat and motivating.

Format your response as:
COACH_MESSAGE: [your encouraging response]
COINS: [number between 5-10]`, challengeTitle, experience)

	fallback := &CoachResponse{
		Message:       fmt.Sprintf("Amazing work on %q! Every step outside your comfort zone is building your confidence. I'm so proud of your courage!", challengeTitle),
		Encouragement: "You're growing stronger with each challenge!",
		CoinsAwarded:  7,
	}
	return s.coachReply(ctx, prompt, fallback, 5, 10)
}

// ChallengeSkipped reacts to a skipped challenge without judgment and still
// awards 1-2 coins for honesty.
func (s *CoachService) ChallengeSkipped(ctx context.Context, challengeTitle, reason string) *CoachResponse {
	prompt := fmt.Sprintf(`You are a gentle, understanding life coach. Someone skipped a challenge and you want to understand and encourage them.

Challenge skipped: %q
Their reason: %q

Respond as a caring coach in 2-3 sentences. Be understanding, not judgmental. Help them reflect on what might make it easier next time. Still give them 1-2 courage coins for being honest about their feelings.

Format your response as:
COACH_MESSAGE: [your understanding and encouraging response]
COINS: [1 or 2]`, challengeTitle, reason)

	fallback := &CoachResponse{
		Message:       fmt.Sprintf("I hear you on %q. Sometimes we need to honor where we are. That's wisdom, not failure. What would make this feel more manageable for you?", challengeTitle),
		Encouragement: "Your honesty shows self-awareness - that's growth too!",
		CoinsAwarded:  2,
	}
	return s.coachReply(ctx, prompt, fallback, 1, 2)
}

// coachReply runs the prompt and extracts COACH_MESSAGE and COINS. Missing
// tags or a failed call fall back wholesale; extracted coins are clamped to
// the range the prompt asked for.
func (s *CoachService) coachReply(ctx context.Context, prompt string, fallback *CoachResponse, minCoins, maxCoins int) *CoachResponse {
	reply, err := s.callGeneration(ctx, prompt)
	if err != nil {
		log.Printf("Coach generation failed, using fallback: %v", err)
		return fallback
	}

	resp := &CoachResponse{Encouragement: fallback.Encouragement}

	if m := coachMessageRe.FindStringSubmatch(reply); m != nil && strings.TrimSpace(m[1]) != "" {
		resp.Message = strings.TrimSpace(m[1])
	} else {
		resp.Message = fallback.Message
	}

	if m := coinsRe.FindStringSubmatch(reply); m != nil {
		coins, err := strconv.Atoi(m[1])
		if err != nil {
			coins = fallback.CoinsAwarded
		}
		resp.CoinsAwarded = clamp(coins, minCoins, maxCoins)
	} else {
		resp.CoinsAwarded = fallback.CoinsAwarded
	}

	return resp
}

// Motivation produces a one-line hype message for a challenge about to be
// attempted.
func (s *CoachService) Motivation(ctx context.Context, challengeTitle string) string {
	prompt := fmt.Sprintf("Give a short, upbeat motivational message (1 sentence) for someone about to try this challenge: %q. Be encouraging and remind them why stepping outside their comfort zone matters.", challengeTitle)

	reply, err := s.callGeneration(ctx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		return "I'm here to support you on your growth journey!"
	}
	return strings.TrimSpace(reply)
}

// SummarizeJournal condenses a journal entry into a summary, sentiment, and
// mood tag. The fallback is a content prefix with a neutral sentiment.
func (s *CoachService) SummarizeJournal(ctx context.Context, journal *models.Journal) *JournalInsight {
	prompt := fmt.Sprintf(`You are a reflective journaling assistant. Summarize the following journal entry in 1-2 sentences, classify its overall sentiment, and give a single-word mood tag.

Journal entry:
%s

Format your response as:
SUMMARY: [your 1-2 sentence summary]
SENTIMENT: [POSITIVE, NEUTRAL or NEGATIVE]
MOOD: [one word]`, journal.Content)

	insight := &JournalInsight{
		Summary:   contentPrefix(journal.Content, 140),
		Sentiment: models.SentimentNeutral,
	}

	reply, err := s.callGeneration(ctx, prompt)
	if err != nil {
		log.Printf("Journal summary generation failed, using fallback: %v", err)
		return insight
	}

	if m := summaryRe.FindStringSubmatch(reply); m != nil && strings.TrimSpace(m[1]) != "" {
		insight.Summary = strings.TrimSpace(m[1])
	}
	if m := sentimentRe.FindStringSubmatch(reply); m != nil {
		insight.Sentiment = models.Sentiment(m[1])
	}
	if m := moodRe.FindStringSubmatch(reply); m != nil {
		mood := strings.ToLower(strings.TrimSpace(m[1]))
		insight.MoodTag = &mood
	}
	return insight
}

// callGeneration calls the generation API directly via HTTP. One attempt
// with a bounded timeout; callers have fallbacks, so retries would only
// stack latency.
func (s *CoachService) callGeneration(ctx context.Context, prompt string) (string, error) {
	// Calls against the real endpoint require the initialized client; an
	// overridden URL points at a stub and needs no credentials.
	if s.geminiClient == nil && s.apiURL == defaultGenerationAPI {
		return "", errors.New("Gemini client not initialized")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error struct {
			Code    int    `json:"code,omitempty"`
			Message string `json:"message,omitempty"`
		} `json:"error,omitempty"`
	}
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Error.Message != "" {
		return "", fmt.Errorf("API error: %s (code: %d)", apiResp.Error.Message, apiResp.Error.Code)
	}
	if len(apiResp.Candidates) == 0 {
		return "", fmt.Errorf("API returned no candidates")
	}

	var text strings.Builder
	for _, candidate := range apiResp.Candidates {
		for _, part := range candidate.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("API returned empty content")
	}
	return text.String(), nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func contentPrefix(content string, max int) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
