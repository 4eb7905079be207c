package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/api/metrics"
	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// UserHandler exposes the admin-facing artist management endpoints. Route
// registration guards these with the admin role; the service layer
// re-checks the admin↔artist relation on every call.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create onboards a new artist under the calling admin.
//
// @Summary      Create artist
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createArtistRequest  true  "Artist data"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artist, err := h.users.CreateArtist(c.Request().Context(), ports.CreateArtistInput{
		AdminID:  adminID,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	metrics.ArtistsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, artist)
}

// List returns the artists managed by the calling admin.
//
// @Summary      List artists
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	artists, err := h.users.ListArtists(c.Request().Context(), adminID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

// Get returns a single managed artist.
//
// @Summary      Get artist
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Artist ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	artist, err := h.users.GetArtist(c.Request().Context(), adminID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artist)
}

// Update edits a managed artist's profile.
//
// @Summary      Update artist
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Artist ID"
// @Param        body  body      updateArtistRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artist, err := h.users.UpdateArtist(c.Request().Context(), ports.UpdateArtistInput{
		AdminID:  adminID,
		ArtistID: c.Param("id"),
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artist)
}

// SetStatus blocks or unblocks a managed artist.
//
// @Summary      Set artist status
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Artist ID"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/estado [put]
func (h *UserHandler) SetStatus(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.AccountStatus(req.Estado)
	if err := h.users.SetArtistStatus(c.Request().Context(), adminID, c.Param("id"), status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"estado": req.Estado})
}

// AddNote appends a note to a managed artist's record.
//
// @Summary      Add note
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Artist ID"
// @Param        body  body      addNoteRequest  true  "Note text"
// @Success      201   {object}  domain.Note
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/notas [post]
func (h *UserHandler) AddNote(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.users.AddNote(c.Request().Context(), ports.AddNoteInput{
		AdminID:  adminID,
		ArtistID: c.Param("id"),
		Body:     req.Texto,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

// ListNotes returns a managed artist's notes, newest first.
//
// @Summary      List notes
// @Tags         users
// @Produce      json
// @Param        id   path     string  true  "Artist ID"
// @Success      200  {array}  domain.Note
// @Failure      403  {object} errorResponse
// @Failure      404  {object} errorResponse
// @Router       /users/{id}/notas [get]
func (h *UserHandler) ListNotes(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notes, err := h.users.ListNotes(c.Request().Context(), adminID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}
