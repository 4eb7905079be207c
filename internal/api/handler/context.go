package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: both values being
// present proves the middleware ran.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(domain.Role)
	if userID == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return userID, role, nil
}
