package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/api/metrics"
	"github.com/artistpay/payout-portal/internal/api/middleware"
	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// AuthHandler handles login, logout, session introspection, and password
// changes.
type AuthHandler struct {
	authService  ports.AuthService
	sessions     ports.SessionManager
	users        ports.UserRepository
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionManager, users ports.UserRepository, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		users:        users,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(res.Token, h.cookieTTL))

	return c.JSON(http.StatusOK, loginResponse{
		User:                   res.User,
		RequiresPasswordChange: res.RequiresPasswordChange,
	})
}

// Logout revokes the session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// Me reports whether the caller holds a live session. It never errors: an
// anonymous caller gets is_logged_in=false, not a 401. Like the session
// middleware, it re-reads the user row, so a blocked or deleted user reads
// as logged out even while holding a token that still verifies.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	out := meResponse{}

	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, out)
	}

	sess, ok := h.sessions.Read(c.Request().Context(), cookie.Value)
	if !ok {
		return c.JSON(http.StatusOK, out)
	}

	user, err := h.users.FindByID(c.Request().Context(), sess.UserID)
	if err != nil || user.Status != domain.AccountActive {
		return c.JSON(http.StatusOK, out)
	}

	out.IsLoggedIn = true
	out.User = user
	return c.JSON(http.StatusOK, out)
}

// ChangePassword replaces the caller's password after verifying the current
// one.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password changed"})
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
