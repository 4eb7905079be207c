package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "payout_session"

// Session validates the session cookie and injects the caller's identity
// into the request context. The session is identity only: the user row is
// re-read on every request so a blocked or deleted user loses access
// immediately, even while holding a token that still verifies.
func Session(sessions ports.SessionManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			sess, ok := sessions.Read(c.Request().Context(), cookie.Value)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			user, err := users.FindByID(c.Request().Context(), sess.UserID)
			if err != nil || user.Status != domain.AccountActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			c.Set("user_id", user.ID)
			c.Set("role", user.Role)
			c.Set("email", user.Email)

			return next(c)
		}
	}
}
