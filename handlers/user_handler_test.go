package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"unzone-backend/repository"
	"unzone-backend/service"
	"unzone-backend/storage"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds a router over a fresh in-memory store. The coach
// points at coachURL; pass an unroutable URL to force its fallback path.
func newTestRouter(t *testing.T, coachURL string) (*gin.Engine, *repository.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemStore()
	blobs, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		Store:            store,
		ChallengeService: service.NewChallengeService(service.WithStore(store)),
		CoachService:     service.NewCoachService(service.CoachWithAPIURL(coachURL)),
		Blobs:            blobs,
	})
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func annPayload() map[string]interface{} {
	return map[string]interface{}{
		"firebaseUid": "fb-ann",
		"email":       "ann@example.com",
		"name":        "Ann",
		"username":    "ann",
	}
}

func TestCreateUserReturnsDefaults(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	w := doJSON(t, r, http.MethodPost, "/api/users", annPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["coins"] != float64(0) || body["streak"] != float64(0) {
		t.Fatalf("expected zeroed counters, got %v", body)
	}
	if body["gardenLevel"] != float64(1) {
		t.Fatalf("expected gardenLevel 1, got %v", body["gardenLevel"])
	}
	if body["difficultyPreference"] != float64(2) {
		t.Fatalf("expected difficultyPreference 2, got %v", body["difficultyPreference"])
	}
	if body["createdAt"] == nil {
		t.Fatalf("expected createdAt in response")
	}
}

func TestCreateUserValidation(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{
		"firebaseUid": "fb-1",
		"name":        "No Email",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["message"] == nil {
		t.Fatalf("expected message in validation response, got %v", body)
	}
	errs, ok := body["errors"].([]interface{})
	if !ok || len(errs) == 0 {
		t.Fatalf("expected field errors, got %v", body)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	if w := doJSON(t, r, http.MethodPost, "/api/users", annPayload()); w.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", w.Code)
	}

	dup := annPayload()
	dup["firebaseUid"] = "fb-other"
	dup["username"] = "other"
	w := doJSON(t, r, http.MethodPost, "/api/users", dup)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	w := doJSON(t, r, http.MethodGet, "/api/users/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "User not found" {
		t.Fatalf("unexpected 404 body: %v", body)
	}
}

func TestGetUserInvalidID(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	w := doJSON(t, r, http.MethodGet, "/api/users/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestDeleteUserIsAStub(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	created := decodeBody(t, doJSON(t, r, http.MethodPost, "/api/users", annPayload()))
	id := int(created["id"].(float64))

	w := doJSON(t, r, http.MethodDelete, "/api/users/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from delete stub, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "User deletion not implemented yet" {
		t.Fatalf("unexpected stub message: %v", body["message"])
	}

	// the user is still there
	w = doJSON(t, r, http.MethodGet, "/api/users/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected user %d to survive delete, got %d", id, w.Code)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	doJSON(t, r, http.MethodPost, "/api/users", annPayload())

	w := doJSON(t, r, http.MethodPut, "/api/users/1", map[string]interface{}{
		"coins": 42,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["coins"] != float64(42) {
		t.Fatalf("expected coins 42, got %v", body["coins"])
	}
	if body["username"] != "ann" {
		t.Fatalf("partial update touched username: %v", body["username"])
	}
}

func TestGetUserByFirebaseUID(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	doJSON(t, r, http.MethodPost, "/api/users", annPayload())

	w := doJSON(t, r, http.MethodGet, "/api/users/firebase/fb-ann", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["username"] != "ann" {
		t.Fatalf("expected ann, got %v", body["username"])
	}
}

func TestAssignTopic(t *testing.T) {
	r, store := newTestRouter(t, "http://127.0.0.1:1/generate")

	doJSON(t, r, http.MethodPost, "/api/users", annPayload())

	w := doJSON(t, r, http.MethodPost, "/api/users/1/assign-topic-from-answers", map[string]interface{}{
		"answers": []string{"I want to be braver socially"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	topic, _ := body["assignedTopic"].(string)
	if topic == "" {
		t.Fatalf("expected assignedTopic, got %v", body)
	}

	stored, err := store.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if len(stored.ChallengePreferences) != 1 || stored.ChallengePreferences[0] != topic {
		t.Fatalf("topic not persisted: %v", stored.ChallengePreferences)
	}
}

func TestResetDailyStats(t *testing.T) {
	r, _ := newTestRouter(t, "http://127.0.0.1:1/generate")

	doJSON(t, r, http.MethodPost, "/api/users", annPayload())

	w := doJSON(t, r, http.MethodPost, "/api/users/admin/reset-daily-stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["affectedUsers"] != float64(1) {
		t.Fatalf("expected affectedUsers 1, got %v", body["affectedUsers"])
	}
}
