package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestLogin_WrongPassword(t *testing.T) {
	e := newEnv(t)
	e.token = ""

	status, body := e.do(t, "POST", "/api/v1/auth/login", fiber.Map{"username": "admin", "password": "wrong-pass"})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Sai tên đăng nhập hoặc mật khẩu", body["message"])
}

func TestLogin_InvalidInput(t *testing.T) {
	e := newEnv(t)
	e.token = ""

	status, _ := e.do(t, "POST", "/api/v1/auth/login", fiber.Map{"username": "ad"})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSession_MeLogoutThenRejected(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, "GET", "/api/v1/auth/me", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", data(t, body)["username"])
	assert.Equal(t, "authenticated", data(t, body)["state"])

	status, body = e.do(t, "POST", "/api/v1/auth/logout", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "logged_out", data(t, body)["state"])

	status, _ = e.do(t, "GET", "/api/v1/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRefreshSession_IssuesNewToken(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, "POST", "/api/v1/auth/refresh", nil)

	assert.Equal(t, fiber.StatusOK, status)
	fresh := data(t, body)["accessToken"].(string)
	assert.NotEmpty(t, fresh)
	assert.Equal(t, 1, e.fake.Calls["RefreshToken"])

	e.token = fresh
	status, _ = e.do(t, "GET", "/api/v1/auth/me", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestProtectedRoute_WithoutToken(t *testing.T) {
	e := newEnv(t)
	e.token = ""

	status, _ := e.do(t, "POST", "/api/v1/room/seat-plan", fiber.Map{"rowCount": 5, "columnCount": 10})

	assert.Equal(t, fiber.StatusUnauthorized, status)
}
