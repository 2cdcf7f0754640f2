package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"facility-admin/internal/config"
	"facility-admin/internal/domain/account"
	"facility-admin/internal/domain/order"
)

func newTestRouter() http.Handler {
	return NewRouter(RouterDeps{
		Cfg: config.Config{AllowedOrigins: []string{"http://localhost:3000"}},
	})
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("healthz status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("healthz body is not json: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("healthz ok = %v, want true", body["ok"])
	}
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p1/academies", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated request status = %d, want 401", rec.Code)
	}
}

func TestWebhookRouteAbsentWithoutPayments(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code == 200 {
		t.Fatal("webhook route should not be mounted without a payments service")
	}
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: order o1 not found", order.ErrNotFound), 404},
		{fmt.Errorf("%w: cannot go from delivered to pending", order.ErrInvalidTransition), 409},
		{fmt.Errorf("%w: item quantity must be positive", order.ErrBadRequest), 400},
		{errors.New("firestore unavailable"), 500},
	}
	for _, tc := range cases {
		status, msg := mapOrderError(tc.err)
		if status != tc.wantStatus {
			t.Errorf("mapOrderError(%v) status = %d, want %d", tc.err, status, tc.wantStatus)
		}
		if msg == "" {
			t.Errorf("mapOrderError(%v) returned empty message", tc.err)
		}
	}
}

func TestMapAccountErrorCodes(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{fmt.Errorf("%w: sign in first", account.ErrUnauthenticated), 401, "unauthenticated"},
		{fmt.Errorf("%w: email is required", account.ErrInvalidArgument), 400, "invalid-argument"},
		{fmt.Errorf("%w: email already in use", account.ErrAlreadyExists), 409, "already-exists"},
		{fmt.Errorf("%w: user u1 not found", account.ErrNotFound), 404, "not-found"},
		{fmt.Errorf("%w: account suspended", account.ErrPermissionDenied), 403, "permission-denied"},
		{errors.New("boom"), 500, "internal"},
	}
	for _, tc := range cases {
		status, code, _ := mapAccountError(tc.err)
		if status != tc.wantStatus || code != tc.wantCode {
			t.Errorf("mapAccountError(%v) = (%d, %q), want (%d, %q)",
				tc.err, status, code, tc.wantStatus, tc.wantCode)
		}
	}
}
