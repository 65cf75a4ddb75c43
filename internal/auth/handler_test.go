package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/einstufung/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newConfiguredHandler(t *testing.T, email, password string) *Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	t.Setenv("ADMIN_EMAIL", email)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	return NewHandler()
}

func postLogin(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	handler := newConfiguredHandler(t, "admin@example.com", "correct-horse")

	rec := postLogin(handler, `{"email":"Admin@Example.com","password":"correct-horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.AdminLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("response has no token")
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	handler := newConfiguredHandler(t, "admin@example.com", "correct-horse")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"admin@example.com","password":"battery-staple"}`},
		{"unknown email", `{"email":"other@example.com","password":"correct-horse"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(handler, tt.body)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != "Invalid email or password" {
				t.Errorf("error = %q", resp.Error)
			}
		})
	}
}

func TestLogin_BadRequests(t *testing.T) {
	handler := newConfiguredHandler(t, "admin@example.com", "correct-horse")

	for _, body := range []string{
		`{"email":`,
		`{"email":"","password":"x"}`,
		`{"email":"admin@example.com","password":""}`,
	} {
		rec := postLogin(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d for %s, want 400", rec.Code, body)
		}
	}
}

func TestLogin_Unconfigured(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	handler := NewHandler()

	rec := postLogin(handler, `{"email":"admin@example.com","password":"x"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestMiddleware(t *testing.T) {
	protected := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	token, err := generateToken("admin@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
