package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elearning-service/internal/models"
	"elearning-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubVerificationStore struct {
	records []models.VerificationRecord
}

func (s *stubVerificationStore) Create(ctx context.Context, rec *models.VerificationRecord) error {
	s.records = append(s.records, *rec)
	return nil
}

func (s *stubVerificationStore) FindByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationRecord, error) {
	for i := range s.records {
		if s.records[i].Email == email && s.records[i].Code == code {
			return &s.records[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubVerificationStore) DeleteAllForEmail(ctx context.Context, email string) error {
	kept := s.records[:0]
	for _, r := range s.records {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

type stubSender struct {
	configured bool
}

func (s *stubSender) Configured() bool { return s.configured }

func (s *stubSender) Send(to, subject, body string) error { return nil }

func newAuthRouter(store *stubVerificationStore, sender *stubSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(service.NewVerificationService(store, sender))
	r := gin.New()
	r.POST("/api/auth/register/request", h.RequestVerification)
	r.POST("/api/auth/register/verify", h.VerifyCode)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestVerificationRoute(t *testing.T) {
	store := &stubVerificationStore{}
	r := newAuthRouter(store, &stubSender{configured: true})

	w := postJSON(r, "/api/auth/register/request", `{"email":"user@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 verification record, got %d", len(store.records))
	}
}

func TestRequestVerificationRouteUnconfigured(t *testing.T) {
	r := newAuthRouter(&stubVerificationStore{}, &stubSender{configured: false})

	w := postJSON(r, "/api/auth/register/request", `{"email":"user@example.com"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRequestVerificationRouteRejectsBadEmail(t *testing.T) {
	r := newAuthRouter(&stubVerificationStore{}, &stubSender{configured: true})

	w := postJSON(r, "/api/auth/register/request", `{"email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestVerifyCodeRoute(t *testing.T) {
	store := &stubVerificationStore{}
	r := newAuthRouter(store, &stubSender{configured: true})

	if w := postJSON(r, "/api/auth/register/request", `{"email":"user@example.com"}`); w.Code != http.StatusOK {
		t.Fatalf("request status = %d, want 200", w.Code)
	}
	code := store.records[0].Code

	w := postJSON(r, "/api/auth/register/verify", `{"email":"user@example.com","code":"`+code+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	// Consumed: the same pair is rejected on a second attempt.
	w = postJSON(r, "/api/auth/register/verify", `{"email":"user@example.com","code":"`+code+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("repeat verify status = %d, want 400", w.Code)
	}
}

func TestVerifyCodeRouteInvalid(t *testing.T) {
	r := newAuthRouter(&stubVerificationStore{}, &stubSender{configured: true})

	w := postJSON(r, "/api/auth/register/verify", `{"email":"user@example.com","code":"000000"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
