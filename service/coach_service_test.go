package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unzone-backend/models"
)

func stubGeneration(t *testing.T, replyText string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if len(body.Contents) == 0 || len(body.Contents[0].Parts) == 0 || body.Contents[0].Parts[0].Text == "" {
			t.Errorf("request carried no prompt text")
		}

		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"code":500,"message":"boom"}}`))
			return
		}
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"text": replyText},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChallengeCompletedParsesTaggedReply(t *testing.T) {
	srv := stubGeneration(t, "COACH_MESSAGE: You crushed it today, that took real courage!\nCOINS: 9", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL), CoachWithAPIKey("test-key"))
	resp := svc.ChallengeCompleted(context.Background(), "Eat at a restaurant alone", "It felt weird but freeing")

	if resp.Message != "You crushed it today, that took real courage!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.CoinsAwarded != 9 {
		t.Fatalf("expected 9 coins, got %d", resp.CoinsAwarded)
	}
	if resp.Encouragement == "" {
		t.Fatalf("expected non-empty encouragement")
	}
}

func TestChallengeCompletedClampsCoins(t *testing.T) {
	srv := stubGeneration(t, "COACH_MESSAGE: Incredible!\nCOINS: 500", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	resp := svc.ChallengeCompleted(context.Background(), "Try a new hobby for 30 minutes", "loved it")

	if resp.CoinsAwarded != 10 {
		t.Fatalf("expected coins clamped to 10, got %d", resp.CoinsAwarded)
	}
}

func TestChallengeCompletedFallbackOnMalformedReply(t *testing.T) {
	srv := stubGeneration(t, "Sure! Here is some unstructured chatter with no tags at all.", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	resp := svc.ChallengeCompleted(context.Background(), "Take a different route to work", "it was fine")

	if resp.CoinsAwarded != 7 {
		t.Fatalf("expected fallback 7 coins, got %d", resp.CoinsAwarded)
	}
	if !strings.Contains(resp.Message, "Take a different route to work") {
		t.Fatalf("fallback message should name the challenge, got %q", resp.Message)
	}
}

func TestChallengeCompletedFallbackOnServerError(t *testing.T) {
	srv := stubGeneration(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	resp := svc.ChallengeCompleted(context.Background(), "Start a conversation with a stranger", "nope")

	if resp == nil {
		t.Fatalf("coach must never return nil")
	}
	if resp.CoinsAwarded != 7 {
		t.Fatalf("expected fallback 7 coins, got %d", resp.CoinsAwarded)
	}
}

func TestChallengeSkippedParsesAndClamps(t *testing.T) {
	srv := stubGeneration(t, "COACH_MESSAGE: That's okay, be kind to yourself.\nCOINS: 8", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	resp := svc.ChallengeSkipped(context.Background(), "Eat at a restaurant alone", "too anxious today")

	if resp.Message != "That's okay, be kind to yourself." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.CoinsAwarded != 2 {
		t.Fatalf("expected coins clamped to 2, got %d", resp.CoinsAwarded)
	}
}

func TestChallengeSkippedFallback(t *testing.T) {
	srv := stubGeneration(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	resp := svc.ChallengeSkipped(context.Background(), "Give a genuine compliment to 3 people", "forgot")

	if resp.CoinsAwarded != 2 {
		t.Fatalf("expected fallback 2 coins, got %d", resp.CoinsAwarded)
	}
	if !strings.Contains(resp.Message, "Give a genuine compliment to 3 people") {
		t.Fatalf("fallback message should name the challenge, got %q", resp.Message)
	}
}

func TestCoachWithoutClientFallsBack(t *testing.T) {
	// no client and no URL override: generation must short-circuit to the
	// fallback without touching the network
	svc := NewCoachService()
	resp := svc.ChallengeCompleted(context.Background(), "Start a conversation with a stranger", "done")

	if resp.CoinsAwarded != 7 {
		t.Fatalf("expected fallback 7 coins, got %d", resp.CoinsAwarded)
	}
	if resp.Message == "" {
		t.Fatalf("expected non-empty fallback message")
	}
}

func TestMotivation(t *testing.T) {
	srv := stubGeneration(t, "You've got this, one brave step at a time!", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	msg := svc.Motivation(context.Background(), "Try a new hobby for 30 minutes")
	if msg != "You've got this, one brave step at a time!" {
		t.Fatalf("unexpected motivation: %q", msg)
	}
}

func TestMotivationFallback(t *testing.T) {
	srv := stubGeneration(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	msg := svc.Motivation(context.Background(), "Try a new hobby for 30 minutes")
	if msg == "" {
		t.Fatalf("motivation fallback must not be empty")
	}
}

func TestSummarizeJournalParsesTags(t *testing.T) {
	srv := stubGeneration(t, "SUMMARY: A hard but rewarding day at work.\nSENTIMENT: POSITIVE\nMOOD: proud", http.StatusOK)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	journal := &models.Journal{ID: 1, UserID: intPtr(1), Content: "Today was tough but I pushed through and shipped the release."}

	insight := svc.SummarizeJournal(context.Background(), journal)
	if insight.Summary != "A hard but rewarding day at work." {
		t.Fatalf("unexpected summary: %q", insight.Summary)
	}
	if insight.Sentiment != models.SentimentPositive {
		t.Fatalf("expected POSITIVE sentiment, got %s", insight.Sentiment)
	}
	if insight.MoodTag == nil || *insight.MoodTag != "proud" {
		t.Fatalf("expected mood tag proud, got %v", insight.MoodTag)
	}
}

func TestSummarizeJournalFallback(t *testing.T) {
	srv := stubGeneration(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc := NewCoachService(CoachWithAPIURL(srv.URL))
	journal := &models.Journal{ID: 1, UserID: intPtr(1), Content: "Short entry."}

	insight := svc.SummarizeJournal(context.Background(), journal)
	if insight.Summary != "Short entry." {
		t.Fatalf("expected content prefix fallback, got %q", insight.Summary)
	}
	if insight.Sentiment != models.SentimentNeutral {
		t.Fatalf("expected NEUTRAL fallback sentiment, got %s", insight.Sentiment)
	}
	if insight.MoodTag != nil {
		t.Fatalf("expected nil mood tag on fallback, got %q", *insight.MoodTag)
	}
}
