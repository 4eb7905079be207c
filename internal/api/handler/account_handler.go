package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// AccountHandler exposes the artist-facing bank account endpoints. The
// service layer masks account identifiers before persistence, so
// responses never carry full numbers.
type AccountHandler struct {
	accounts ports.BankAccountService
}

func NewAccountHandler(accounts ports.BankAccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create registers a payout destination for the calling artist.
//
// @Summary      Create bank account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account data"
// @Success      201   {object}  domain.BankAccount
// @Failure      400   {object}  errorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Create(c.Request().Context(), ports.CreateBankAccountInput{
		UserID:      userID,
		AccountType: domain.AccountType(req.AccountType),
		HolderName:  req.HolderName,
		BankName:    req.BankName,
		Number:      req.Number,
		Clabe:       req.Clabe,
		MakeDefault: req.MakeDefault,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, account)
}

// List returns the calling artist's bank accounts.
//
// @Summary      List bank accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  domain.BankAccount
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	accounts, err := h.accounts.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Update edits the holder or bank name of an owned account.
//
// @Summary      Update bank account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Account ID"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  domain.BankAccount
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /accounts/{id} [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Update(c.Request().Context(), ports.UpdateBankAccountInput{
		UserID:     userID,
		AccountID:  c.Param("id"),
		HolderName: req.HolderName,
		BankName:   req.BankName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// SetDefault marks an owned account as the payout default. Any previous
// default is cleared in the same transaction.
//
// @Summary      Set default bank account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /accounts/{id}/predeterminada [put]
func (h *AccountHandler) SetDefault(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.accounts.SetDefault(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "default updated"})
}
