package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/middleware"
	"github.com/olimjonbek/savdo-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCabinetApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		ContactPhone:   "+998 71 200 00 00",
		ContactAddress: "Tashkent",
	}

	h := NewCabinetHandler(nil, cfg)
	app := fiber.New()
	app.Get("/aloqa/", h.Aloqa)

	guard := middleware.LoginRequired(cfg)
	app.Get("/dashbord", guard, h.Dashboard)
	app.Get("/stream", guard, h.Stream)
	app.Get("/statistics", guard, h.Statistics)
	app.Get("/payment", guard, h.Payment)
	return app, cfg
}

func signTestToken(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":          uuid.NewString(),
		"phone_number": "998901234567",
		"role":         role,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestCabinetPagesRequireLogin(t *testing.T) {
	app, _ := newCabinetApp(t)

	for _, path := range []string{"/dashbord", "/stream", "/statistics", "/payment"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestCabinetDashboardWithCookieSession(t *testing.T) {
	app, cfg := newCabinetApp(t)

	req := httptest.NewRequest("GET", "/dashbord", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.AccessCookie,
		Value: signTestToken(t, cfg, "seller"),
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dashboard", body["page"])
	assert.Equal(t, "998901234567", body["phone"])
	assert.Equal(t, "seller", body["role"])
}

func TestCabinetBearerHeaderSession(t *testing.T) {
	app, cfg := newCabinetApp(t)

	req := httptest.NewRequest("GET", "/statistics", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAloqaIsPublic(t *testing.T) {
	app, _ := newCabinetApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/aloqa/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "aloqa", body["page"])
	assert.Equal(t, "+998 71 200 00 00", body["phone"])
}
