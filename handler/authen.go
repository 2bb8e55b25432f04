package handler

import (
	"errors"
	"time"

	"cinema_admin/auth"
	"cinema_admin/constants"
	"cinema_admin/middleware"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func sessionView(s *auth.Session) fiber.Map {
	return fiber.Map{
		"id":        s.ID,
		"username":  s.Username,
		"state":     s.State,
		"expiresAt": s.ExpiresAt,
	}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, err := utils.Locals[model.LoginInput](c, "loginInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	tokens, err := h.Backend.Login(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return h.fail(c, err)
	}

	session, token, err := h.Sessions.Start(c.UserContext(), input.Username, tokens)
	if err != nil {
		return h.fail(c, err)
	}
	setSessionCookie(c, token, session.ExpiresAt)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": token,
		"session":     sessionView(session),
	})
}

// RefreshSession xin token mới từ backend, nhận cả phiên đã hết hạn
func (h *Handler) RefreshSession(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
	}

	session, err := h.Sessions.ResolveForRefresh(c.UserContext(), token)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, err, "session")
	}

	tokens, err := h.Backend.RefreshToken(c.UserContext(), session.RefreshToken)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, err, "session")
	}

	fresh, err := h.Sessions.Refresh(c.UserContext(), session, tokens)
	if err != nil {
		return h.fail(c, err)
	}
	setSessionCookie(c, fresh, session.ExpiresAt)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": fresh,
		"session":     sessionView(session),
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.Sessions.End(c.UserContext(), session); err != nil {
		return h.fail(c, err)
	}
	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, sessionView(session))
}

func (h *Handler) Me(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sessionView(session))
}
