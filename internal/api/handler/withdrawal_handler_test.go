package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

type stubWithdrawalService struct {
	requestFn func(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error)
	getFn     func(ctx context.Context, in ports.GetWithdrawalInput) (*domain.WithdrawalRequest, error)
	listFn    func(ctx context.Context, callerID string, role domain.Role) ([]*domain.WithdrawalRequest, error)
	approveFn func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error)
	rejectFn  func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error)
}

func (s *stubWithdrawalService) Request(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error) {
	return s.requestFn(ctx, in)
}

func (s *stubWithdrawalService) Get(ctx context.Context, in ports.GetWithdrawalInput) (*domain.WithdrawalRequest, error) {
	return s.getFn(ctx, in)
}

func (s *stubWithdrawalService) List(ctx context.Context, callerID string, role domain.Role) ([]*domain.WithdrawalRequest, error) {
	return s.listFn(ctx, callerID, role)
}

func (s *stubWithdrawalService) Approve(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
	return s.approveFn(ctx, in)
}

func (s *stubWithdrawalService) Reject(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
	return s.rejectFn(ctx, in)
}

func TestWithdrawalHandler_Request_Created(t *testing.T) {
	stub := &stubWithdrawalService{
		requestFn: func(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error) {
			if in.UserID != "artist-1" || in.Amount != 1500.50 {
				t.Fatalf("unexpected args: %s %f", in.UserID, in.Amount)
			}
			return &domain.WithdrawalRequest{ID: "w1", UserID: in.UserID, Amount: in.Amount, Status: domain.WithdrawalPending}, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/withdrawals", `{"monto":1500.50}`)
	c.Set("user_id", "artist-1")
	c.Set("role", domain.RoleArtist)

	if err := h.Request(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.WithdrawalPending) {
		t.Fatalf("unexpected status: %v", resp["status"])
	}
}

func TestWithdrawalHandler_Request_NonPositiveAmount(t *testing.T) {
	stub := &stubWithdrawalService{
		requestFn: func(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/withdrawals", `{"monto":-5}`)
	c.Set("user_id", "artist-1")
	c.Set("role", domain.RoleArtist)

	if code := httpErrorCode(t, h.Request(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestWithdrawalHandler_Request_NoIdentity(t *testing.T) {
	h := NewWithdrawalHandler(&stubWithdrawalService{})

	c, _ := newTestContext(t, http.MethodPost, "/withdrawals", `{"monto":100}`)
	if code := httpErrorCode(t, h.Request(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestWithdrawalHandler_List_PassesCaller(t *testing.T) {
	stub := &stubWithdrawalService{
		listFn: func(ctx context.Context, callerID string, role domain.Role) ([]*domain.WithdrawalRequest, error) {
			if callerID != "admin-1" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", callerID, role)
			}
			return []*domain.WithdrawalRequest{{ID: "w1"}, {ID: "w2"}}, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/withdrawals", "")
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 withdrawals, got %d", len(resp))
	}
}

func TestWithdrawalHandler_Get_PassesScope(t *testing.T) {
	stub := &stubWithdrawalService{
		getFn: func(ctx context.Context, in ports.GetWithdrawalInput) (*domain.WithdrawalRequest, error) {
			if in.ID != "w1" || in.CallerID != "artist-1" || in.Role != domain.RoleArtist {
				t.Fatalf("unexpected args: %+v", in)
			}
			return &domain.WithdrawalRequest{ID: in.ID}, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/withdrawals/w1", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")
	c.Set("user_id", "artist-1")
	c.Set("role", domain.RoleArtist)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWithdrawalHandler_Approve_Resolved(t *testing.T) {
	stub := &stubWithdrawalService{
		approveFn: func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
			if in.ID != "w1" || in.AdminID != "admin-1" {
				t.Fatalf("unexpected args: %+v", in)
			}
			return &domain.WithdrawalRequest{ID: in.ID, Status: domain.WithdrawalApproved}, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/withdrawals/w1/aprobar", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWithdrawalHandler_Approve_AlreadyResolved(t *testing.T) {
	stub := &stubWithdrawalService{
		approveFn: func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
			return nil, domain.ErrWithdrawalResolved
		},
	}
	h := NewWithdrawalHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/withdrawals/w1/aprobar", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	if err := h.Approve(c); !errors.Is(err, domain.ErrWithdrawalResolved) {
		t.Fatalf("expected ErrWithdrawalResolved, got %v", err)
	}
}

func TestWithdrawalHandler_Reject_RequiresReason(t *testing.T) {
	stub := &stubWithdrawalService{
		rejectFn: func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/withdrawals/w1/rechazar", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("w1")
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	if code := httpErrorCode(t, h.Reject(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestWithdrawalHandler_Reject_PassesReason(t *testing.T) {
	stub := &stubWithdrawalService{
		rejectFn: func(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
			if in.Reason != "datos bancarios incompletos" {
				t.Fatalf("unexpected reason: %q", in.Reason)
			}
			return &domain.WithdrawalRequest{ID: in.ID, Status: domain.WithdrawalRejected, RejectionReason: in.Reason}, nil
		},
	}
	h := NewWithdrawalHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/withdrawals/w1/rechazar", `{"motivo":"datos bancarios incompletos"}`)
	c.SetParamNames("id")
	c.SetParamValues("w1")
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	if err := h.Reject(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
