package middleware

import (
	"errors"
	"strings"

	"cinema_admin/auth"
	"cinema_admin/constants"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

const SessionKey = "session"

// TokenFromRequest đọc token từ cookie, header Authorization hoặc query (websocket)
func TokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")

	if token == "" {
		// check header Authorization: Bearer xxx
		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		token = c.Query("token")
	}
	return token
}

func Protected(sessions *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		session, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrSessionExpired):
				return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, err, "session")
			case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrLoggedOut), errors.Is(err, auth.ErrNotAuthenticated):
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
			default:
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// CurrentSession trả về phiên đã được Protected nạp
func CurrentSession(c *fiber.Ctx) (*auth.Session, bool) {
	s, ok := c.Locals(SessionKey).(*auth.Session)
	return s, ok && s != nil
}
