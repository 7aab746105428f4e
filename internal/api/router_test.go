// internal/api/router_test.go
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmvora/internal/api/handler"
	mw "farmvora/internal/api/middleware"
	"farmvora/internal/auth"
	"farmvora/internal/metrics"
	"farmvora/internal/realtime"
	"farmvora/internal/util"
)

const testSecret = "router-test-secret-with-at-least-32-chars"

type staticAdmins map[uuid.UUID]bool

func (s staticAdmins) IsAdmin(_ context.Context, id uuid.UUID) (bool, error) {
	return s[id], nil
}

func token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email: "user@farmvora.ng",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// newTestRouter mounts handlers without services; only requests refused
// before reaching a service may be sent through it.
func newTestRouter(admins staticAdmins, m *metrics.Metrics) http.Handler {
	logger := util.DiscardLogger()
	h := Handlers{
		Investments:   handler.NewInvestmentHandler(nil, logger),
		Admin:         handler.NewAdminHandler(nil, logger),
		Projects:      handler.NewProjectHandler(nil, nil, logger),
		Questions:     handler.NewQuestionHandler(nil, logger),
		Notifications: handler.NewNotificationHandler(nil, logger),
		Payments:      handler.NewPaymentHandler("", logger),
		Realtime:      handler.NewRealtimeHandler(realtime.NewHub(logger), nil, nil, m, logger),
		Profiles:      handler.NewProfileHandler(nil, nil, logger),
		Users:         handler.NewUserHandler(nil, logger),
	}
	authn := mw.NewAuthenticator(auth.NewVerifier(testSecret), admins, nil, logger)
	return NewRouter(h, authn, mw.NewRateLimiter(100, 100, logger), m, logger)
}

func TestRouter(t *testing.T) {
	investorID, adminID := uuid.New(), uuid.New()
	admins := staticAdmins{adminID: true}

	cases := []struct {
		name   string
		method string
		path   string
		user   *uuid.UUID
		code   int
	}{
		{"Health", http.MethodGet, "/health", nil, http.StatusOK},
		{"AnonymousPortfolio", http.MethodGet, "/investments/portfolio", nil, http.StatusUnauthorized},
		{"AnonymousSubmit", http.MethodPost, "/projects/" + uuid.NewString() + "/investments", nil, http.StatusUnauthorized},
		{"AnonymousStream", http.MethodGet, "/ws/investments", nil, http.StatusUnauthorized},
		{"InvestorOnAdminQueue", http.MethodGet, "/admin/investments/pending", &investorID, http.StatusForbidden},
		{"InvestorCreatesProject", http.MethodPost, "/admin/projects", &investorID, http.StatusForbidden},
		{"AdminBadInvestmentID", http.MethodPost, "/admin/investments/not-a-uuid/approve", &adminID, http.StatusBadRequest},
		{"Currencies", http.MethodGet, "/currencies", nil, http.StatusOK},
		{"AnonymousProfile", http.MethodGet, "/profile", nil, http.StatusUnauthorized},
		{"AnonymousFavorite", http.MethodPost, "/projects/" + uuid.NewString() + "/favorite", nil, http.StatusUnauthorized},
		{"InvestorListsUsers", http.MethodGet, "/admin/users", &investorID, http.StatusForbidden},
		{"InvestorSuspendsUser", http.MethodPost, "/admin/users/" + uuid.NewString() + "/suspend", &investorID, http.StatusForbidden},
		{"AdminBadUserID", http.MethodPut, "/admin/users/not-a-uuid", &adminID, http.StatusBadRequest},
		{"UnknownRoute", http.MethodGet, "/no-such-route", nil, http.StatusNotFound},
	}
	router := newTestRouter(admins, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.user != nil {
				req.Header.Set("Authorization", "Bearer "+token(t, *tc.user))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.code, rr.Code)
		})
	}

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRouterMetrics(t *testing.T) {
	m := metrics.New()
	router := newTestRouter(staticAdmins{}, m)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `farmvora_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
