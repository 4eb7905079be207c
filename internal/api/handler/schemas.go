package handler

import "github.com/artistpay/payout-portal/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User                   *domain.User `json:"user"`
	RequiresPasswordChange bool         `json:"requires_password_change"`
}

type meResponse struct {
	IsLoggedIn bool         `json:"is_logged_in"`
	User       *domain.User `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// --- Users ---

type createArtistRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
}

type updateArtistRequest struct {
	FullName string `json:"full_name" validate:"required"`
}

type setStatusRequest struct {
	Estado string `json:"estado" validate:"required,oneof=active blocked"`
}

type addNoteRequest struct {
	Texto string `json:"texto" validate:"required"`
}

// --- Withdrawals ---

type requestWithdrawalRequest struct {
	Monto float64 `json:"monto" validate:"required,gt=0"`
}

type rejectWithdrawalRequest struct {
	Motivo string `json:"motivo" validate:"required"`
}

// --- Bank accounts ---

type createAccountRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=checking savings"`
	HolderName  string `json:"holder_name"  validate:"required"`
	BankName    string `json:"bank_name"    validate:"required"`
	Number      string `json:"number"       validate:"required,min=8"`
	Clabe       string `json:"clabe"        validate:"omitempty,len=18"`
	MakeDefault bool   `json:"make_default"`
}

type updateAccountRequest struct {
	HolderName string `json:"holder_name"`
	BankName   string `json:"bank_name"`
}

// --- Alerts ---

type alertConfigPatchRequest struct {
	AmountThreshold  *float64 `json:"amount_threshold"   validate:"omitempty,gt=0"`
	WithdrawalCount  *int     `json:"withdrawal_count"   validate:"omitempty,gt=0"`
	ReviewWindowDays *int     `json:"review_window_days" validate:"omitempty,gt=0"`
}
