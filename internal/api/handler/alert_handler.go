package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/core/service"
)

// AlertHandler exposes the admin alert threshold configuration.
type AlertHandler struct {
	alerts *service.AlertConfigStore
}

func NewAlertHandler(alerts *service.AlertConfigStore) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// Get returns the current alert thresholds.
//
// @Summary      Get alert config
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  service.AlertConfig
// @Router       /admin/alertas/configuracion [get]
func (h *AlertHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.alerts.Get())
}

// Patch updates the provided thresholds and returns the resulting config.
//
// @Summary      Patch alert config
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        body  body      alertConfigPatchRequest  true  "Thresholds to change"
// @Success      200   {object}  service.AlertConfig
// @Failure      400   {object}  errorResponse
// @Router       /admin/alertas/configuracion [patch]
func (h *AlertHandler) Patch(c echo.Context) error {
	var req alertConfigPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg := h.alerts.Patch(req.AmountThreshold, req.WithdrawalCount, req.ReviewWindowDays)
	return c.JSON(http.StatusOK, cfg)
}
