package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/einstufung/backend/internal/models"
)

func postQuiz(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/quiz", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Quiz(rec, req)
	return rec
}

func TestQuizHandler_FirstQuestion(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	rec := postQuiz(t, handler, `{"phase":"quiz","questionIndex":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.QuestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Question != "Wie heißt du?" {
		t.Errorf("question = %q", resp.Question)
	}
	if len(resp.Options) != 3 {
		t.Errorf("got %d options, want 3", len(resp.Options))
	}
	if resp.SessionID == "" {
		t.Error("response has no session id")
	}
	if len(store.analytics) != 0 {
		t.Errorf("first question wrote %d analytics rows", len(store.analytics))
	}
	// The correct option must never leak to the client.
	if strings.Contains(rec.Body.String(), `"answer"`) {
		t.Error("response body exposes the answer field")
	}
}

func TestQuizHandler_AnswerRecordsPrevious(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	rec := postQuiz(t, handler, `{"phase":"quiz","questionIndex":1,"answer":"b","sessionId":"s1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.QuestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("session id = %q, want s1", resp.SessionID)
	}

	if len(store.analytics) != 1 {
		t.Fatalf("got %d analytics rows, want 1", len(store.analytics))
	}
	row := store.analytics[0]
	if row.QuestionID != 0 || row.IsCorrect != 1 || row.SelectedOption != models.OptionB {
		t.Errorf("analytics row = %+v", row)
	}
}

func TestQuizHandler_Repeat_NoDoubleWrite(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	// A retried lookup without an answer must not touch analytics.
	postQuiz(t, handler, `{"phase":"quiz","questionIndex":5,"sessionId":"s1"}`)
	postQuiz(t, handler, `{"phase":"quiz","questionIndex":5,"sessionId":"s1"}`)

	if len(store.analytics) != 0 {
		t.Errorf("lookup-only requests wrote %d analytics rows", len(store.analytics))
	}
}

func TestQuizHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"phase":`},
		{"unknown phase", `{"phase":"cleanup","questionIndex":0}`},
		{"missing index", `{"phase":"quiz"}`},
		{"invalid option", `{"phase":"quiz","questionIndex":1,"answer":"D"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			handler := NewHandler(newTestService(store))

			rec := postQuiz(t, handler, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != "Invalid request data" {
				t.Errorf("error = %q", resp.Error)
			}
			if len(store.analytics) != 0 {
				t.Errorf("rejected request wrote %d analytics rows", len(store.analytics))
			}
		})
	}
}

func TestQuizHandler_IndexOutOfRange(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	for _, body := range []string{
		`{"phase":"quiz","questionIndex":40,"answer":"A","sessionId":"s1"}`,
		`{"phase":"quiz","questionIndex":-1}`,
	} {
		rec := postQuiz(t, handler, body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d for %s, want 404", rec.Code, body)
		}
	}
	if len(store.analytics) != 0 {
		t.Errorf("out-of-range request wrote %d analytics rows", len(store.analytics))
	}
}

func TestQuizHandler_UntrustedClientScore(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	// The client claims a perfect score but answered nothing.
	rec := postQuiz(t, handler, `{"phase":"feedback","sessionId":"s1","score":40}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if len(store.results) != 1 {
		t.Fatalf("got %d results, want 1", len(store.results))
	}
	if store.results[0].Score != 0 || store.results[0].Level != models.LevelA1 {
		t.Errorf("result = score %d level %s, want 0 A1", store.results[0].Score, store.results[0].Level)
	}
}

func TestQuizHandler_Feedback(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(newTestService(store))

	// Answer questions 0 and 1 correctly (B then A).
	postQuiz(t, handler, `{"phase":"quiz","questionIndex":1,"answer":"B","sessionId":"s1"}`)
	postQuiz(t, handler, `{"phase":"quiz","questionIndex":2,"answer":"A","sessionId":"s1"}`)

	rec := postQuiz(t, handler, `{"phase":"feedback","sessionId":"s1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.FeedbackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Feedback != "score=2 level=A1" {
		t.Errorf("feedback = %q", resp.Feedback)
	}
	if resp.SessionID != "s1" {
		t.Errorf("session id = %q, want s1", resp.SessionID)
	}
}

func TestQuizHandler_FeedbackStoreFailure(t *testing.T) {
	store := &memoryStore{analyticsErr: errors.New("db down")}
	handler := NewHandler(newTestService(store))

	rec := postQuiz(t, handler, `{"phase":"feedback","sessionId":"s1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Failed to generate feedback" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"forwarded single", "10.0.0.1:1234", "203.0.113.7", "203.0.113.7"},
		{"forwarded chain", "10.0.0.1:1234", "203.0.113.7, 10.0.0.2", "203.0.113.7"},
		{"remote addr", "192.0.2.4:5678", "", "192.0.2.4"},
		{"bare remote addr", "192.0.2.4", "", "192.0.2.4"},
		{"nothing", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/quiz", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
