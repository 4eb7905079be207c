package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/api/metrics"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// WithdrawalHandler exposes the withdrawal workflow. Artists create and
// read their own requests; admins read requests of their managed artists
// and resolve pending ones.
type WithdrawalHandler struct {
	withdrawals ports.WithdrawalService
}

func NewWithdrawalHandler(withdrawals ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawals: withdrawals}
}

// Request creates a pending withdrawal for the calling artist.
//
// @Summary      Request withdrawal
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        body  body      requestWithdrawalRequest  true  "Amount"
// @Success      201   {object}  domain.WithdrawalRequest
// @Failure      400   {object}  errorResponse
// @Router       /withdrawals [post]
func (h *WithdrawalHandler) Request(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req requestWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	withdrawal, err := h.withdrawals.Request(c.Request().Context(), ports.RequestWithdrawalInput{
		UserID: userID,
		Amount: req.Monto,
	})
	if err != nil {
		return err
	}
	metrics.WithdrawalsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, withdrawal)
}

// List returns the withdrawals visible to the caller: their own for an
// artist, their managed artists' for an admin.
//
// @Summary      List withdrawals
// @Tags         withdrawals
// @Produce      json
// @Success      200  {array}  domain.WithdrawalRequest
// @Router       /withdrawals [get]
func (h *WithdrawalHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	withdrawals, err := h.withdrawals.List(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withdrawals)
}

// Get returns a single withdrawal, scoped to the caller.
//
// @Summary      Get withdrawal
// @Tags         withdrawals
// @Produce      json
// @Param        id   path      string  true  "Withdrawal ID"
// @Success      200  {object}  domain.WithdrawalRequest
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /withdrawals/{id} [get]
func (h *WithdrawalHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	withdrawal, err := h.withdrawals.Get(c.Request().Context(), ports.GetWithdrawalInput{
		ID:       c.Param("id"),
		CallerID: userID,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withdrawal)
}

// Approve resolves a pending withdrawal as approved.
//
// @Summary      Approve withdrawal
// @Tags         withdrawals
// @Produce      json
// @Param        id   path      string  true  "Withdrawal ID"
// @Success      200  {object}  domain.WithdrawalRequest
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /withdrawals/{id}/aprobar [put]
func (h *WithdrawalHandler) Approve(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	withdrawal, err := h.withdrawals.Approve(c.Request().Context(), ports.ResolveWithdrawalInput{
		ID:      c.Param("id"),
		AdminID: adminID,
	})
	if err != nil {
		return err
	}
	metrics.WithdrawalsResolvedTotal.WithLabelValues("approved").Inc()

	return c.JSON(http.StatusOK, withdrawal)
}

// Reject resolves a pending withdrawal as rejected. A reason is required.
//
// @Summary      Reject withdrawal
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Withdrawal ID"
// @Param        body  body      rejectWithdrawalRequest  true  "Rejection reason"
// @Success      200   {object}  domain.WithdrawalRequest
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /withdrawals/{id}/rechazar [put]
func (h *WithdrawalHandler) Reject(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req rejectWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	withdrawal, err := h.withdrawals.Reject(c.Request().Context(), ports.ResolveWithdrawalInput{
		ID:      c.Param("id"),
		AdminID: adminID,
		Reason:  req.Motivo,
	})
	if err != nil {
		return err
	}
	metrics.WithdrawalsResolvedTotal.WithLabelValues("rejected").Inc()

	return c.JSON(http.StatusOK, withdrawal)
}
