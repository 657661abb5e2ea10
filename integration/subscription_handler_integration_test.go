package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuotas/internal/auth"
	"cuotas/internal/config"
	"cuotas/internal/server"
	"cuotas/internal/subscription"
)

func setupTestServer(t *testing.T, passcodeHash string) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	svc := subscription.NewService(repo, subscription.NewSession(repo), subscription.NewPricing(8), nil)

	srv := server.New(server.Deps{
		Config: &config.Config{
			JWTSecret:      "test-secret",
			PasscodeHash:   passcodeHash,
			CacheVersion:   "suscripciones-v2",
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
		},
		Subscriptions: svc,
	})
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSubscriptionLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	h := setupTestServer(t, "")

	w := doRequest(t, h, http.MethodPost, "/api/subscriptions", "", map[string]any{
		"name": "Netflix", "usdPrice": 15.49, "frequency": "Mensual",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	netflix := decode[map[string]any](t, w)
	netflixID := int64(netflix["id"].(float64))
	assert.Equal(t, 123.92, netflix["totalDebited"])

	w = doRequest(t, h, http.MethodPost, "/api/subscriptions", "", map[string]any{
		"name": "Spotify", "usdPrice": 10.99, "frequency": "Mensual",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	spotifyID := int64(decode[map[string]any](t, w)["id"].(float64))

	w = doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/subscriptions/%d/members", netflixID), "", map[string]any{
		"name": "Ana", "payment": 60, "frequency": "Anual", "paymentMethods": []string{"transfer"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	member := decode[subscription.Member](t, w)
	require.NotEmpty(t, member.ID)

	w = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/subscriptions/%d/members/%s/paid", netflixID, member.ID), "", map[string]any{"isPaid": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[subscription.Member](t, w).IsPaid)

	w = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/subscriptions/%d", netflixID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[map[string]any](t, w)
	summary := view["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["memberCount"])
	assert.Equal(t, float64(1), summary["paidCount"])
	assert.Equal(t, 5.0, summary["totalReceivedMonthly"])
	assert.Equal(t, 15.49, summary["cycleCharge"])
	members := summary["members"].([]any)
	require.Len(t, members, 1)
	assert.Equal(t, member.ID, members[0].(map[string]any)["id"])
	assert.Equal(t, 5.0, members[0].(map[string]any)["monthlyEquivalent"])

	w = doRequest(t, h, http.MethodPut, "/api/subscriptions/order", "", map[string]any{"ids": []int64{spotifyID, netflixID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ordered := decode[[]map[string]any](t, w)
	require.Len(t, ordered, 2)
	assert.Equal(t, "Spotify", ordered[0]["name"])
	assert.Equal(t, "Netflix", ordered[1]["name"])

	w = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/subscriptions/%d", spotifyID), "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/subscriptions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Netflix", list[0]["name"])
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	w = doRequest(t, h, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["subscriptions"])
}

func TestRestoreSnapshot_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	h := setupTestServer(t, "")

	for _, name := range []string{"A", "B"} {
		w := doRequest(t, h, http.MethodPost, "/api/subscriptions", "", map[string]any{
			"name": name, "usdPrice": 5, "frequency": "Mensual",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, h, http.MethodGet, "/api/subscriptions", "", nil)
	snapshot := decode[[]subscription.Subscription](t, w)
	require.Len(t, snapshot, 2)

	w = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/subscriptions/%d", snapshot[1].ID), "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	for i := 0; i < 2; i++ {
		w = doRequest(t, h, http.MethodPost, "/api/subscriptions/restore", "", snapshot)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		restored := decode[[]subscription.Subscription](t, w)
		require.Len(t, restored, 2)
		assert.Equal(t, "A", restored[0].Name)
		assert.Equal(t, "B", restored[1].Name)
	}
}

func TestAuthenticatedAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	hash, err := auth.HashPasscode("1234")
	require.NoError(t, err)
	h := setupTestServer(t, hash)

	w := doRequest(t, h, http.MethodGet, "/api/subscriptions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, h, http.MethodPost, "/auth/token", "", map[string]any{"passcode": "0000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, h, http.MethodPost, "/auth/token", "", map[string]any{"passcode": "1234"})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decode[auth.TokenResponse](t, w)

	w = doRequest(t, h, http.MethodGet, "/api/subscriptions", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPost, "/auth/refresh", "", map[string]any{"refreshToken": tokens.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	refreshed := decode[auth.TokenResponse](t, w)

	w = doRequest(t, h, http.MethodGet, "/api/subscriptions", refreshed.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/subscriptions", tokens.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
