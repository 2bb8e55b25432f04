package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"cinema_admin/auth"
	"cinema_admin/backend/backendtest"
	"cinema_admin/handler"
	"cinema_admin/helper"
	"cinema_admin/model"
	"cinema_admin/router"
	"cinema_admin/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var ict = time.FixedZone("ICT", 7*3600)

type env struct {
	app   *fiber.App
	fake  *backendtest.Fake
	h     *handler.Handler
	token string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fake := backendtest.New()
	fake.Users["admin"] = "secret123"
	fake.Movies[1] = schedule.Movie{ID: 1, Title: "Mai", DurationMinutes: 120}
	fake.Rooms[2] = model.Room{ID: 2, CinemaId: 1, RoomNumber: 1, Type: model.Small, Status: "available"}
	fake.Rooms[3] = model.Room{ID: 3, CinemaId: 1, RoomNumber: 2, Type: model.Small, Status: "available"}

	sessions := auth.NewManager(auth.NewMemoryStore(), "test-secret", time.Hour)
	h := handler.New(fake, sessions, helper.NewCatalog(nil, fake, 0, ""), handler.Options{
		DefaultBasePrice: 50000,
		Location:         ict,
	})
	app := fiber.New()
	router.SetupRoutes(app, h)

	e := &env{app: app, fake: fake, h: h}
	status, body := e.do(t, "POST", "/api/v1/auth/login", fiber.Map{"username": "admin", "password": "secret123"})
	require.Equal(t, fiber.StatusOK, status, body)
	e.token = body["data"].(map[string]any)["accessToken"].(string)
	return e
}

func (e *env) do(t *testing.T, method, path string, payload any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, body)
	return d
}
