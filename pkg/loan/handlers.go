// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package loan

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/authentication"
)

type BorrowRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	// DueDate is optional, the canonical default of now + loan period is
	// computed here, the service only checks it lies in the future.
	DueDate *time.Time `json:"due_date"`
}

type LoanResponse struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	ItemID     string     `json:"item_id"`
	MemberID   string     `json:"member_id"`
	Status     string     `json:"status"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Overdue    bool       `json:"overdue"`
}

type CountResponse struct {
	MemberID    string `json:"member_id"`
	ActiveLoans int    `json:"active_loans"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Resource string `json:"resource,omitempty"`
	Kind     string `json:"kind"`
}

type Handler struct {
	service ServiceInterface
	period  time.Duration

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewHandler(
	service ServiceInterface,
	period time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Handler {
	return &Handler{
		service:  service,
		period:   period,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (h *Handler) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/loans", h.HandleBorrow)
	router.Post("/api/v0/loans/{id}/return", h.HandleReturn)
	router.Get("/api/v0/loans/overdue", h.HandleListOverdue)
	router.Get("/api/v0/members/{id}/loans", h.HandleListMemberLoans)
	router.Get("/api/v0/members/{id}/loans/count", h.HandleActiveLoanCount)
}

func (h *Handler) HandleBorrow(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "loan.Handler.HandleBorrow")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, Forbidden("actor", "unauthenticated"))
		return
	}

	var req BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, Validation("body", "invalid JSON"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, Validation("item_id", "must be a valid item id"))
		return
	}

	dueDate := time.Now().UTC().Add(h.period)
	if req.DueDate != nil {
		dueDate = req.DueDate.UTC()
	}

	l, err := h.service.Borrow(ctx, actor, req.ItemID, dueDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, loanResponse(l))
}

func (h *Handler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "loan.Handler.HandleReturn")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, Forbidden("actor", "unauthenticated"))
		return
	}

	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		h.writeError(w, Validation("id", "loan id is required"))
		return
	}

	l, err := h.service.Return(ctx, actor, loanID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loanResponse(l))
}

func (h *Handler) HandleListOverdue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "loan.Handler.HandleListOverdue")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, Forbidden("actor", "unauthenticated"))
		return
	}

	loans, err := h.service.ListOverdue(ctx, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loanResponses(loans))
}

func (h *Handler) HandleListMemberLoans(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "loan.Handler.HandleListMemberLoans")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, Forbidden("actor", "unauthenticated"))
		return
	}

	loans, err := h.service.ListMemberLoans(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loanResponses(loans))
}

func (h *Handler) HandleActiveLoanCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "loan.Handler.HandleActiveLoanCount")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, Forbidden("actor", "unauthenticated"))
		return
	}

	memberID := chi.URLParam(r, "id")
	count, err := h.service.ActiveLoanCount(ctx, actor, memberID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CountResponse{MemberID: memberID, ActiveLoans: count})
}

func loanResponse(l *types.Loan) LoanResponse {
	return LoanResponse{
		ID:         l.ID,
		TenantID:   l.TenantID,
		ItemID:     l.ItemID,
		MemberID:   l.MemberID,
		Status:     l.Status,
		BorrowedAt: l.BorrowedAt,
		DueDate:    l.DueDate,
		ReturnedAt: l.ReturnedAt,
		Overdue:    l.Overdue(time.Now().UTC()),
	}
}

func loanResponses(loans []*types.Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = loanResponse(l)
	}
	return out
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := KindOf(err)

	status := http.StatusInternalServerError
	message := "internal error"
	resource := ""

	switch kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindForbidden:
		status = http.StatusForbidden
	case KindConflict:
		status = http.StatusConflict
	case KindValidation:
		status = http.StatusBadRequest
	}

	if kind != KindInternal {
		message = err.Error()
		var e *Error
		if errors.As(err, &e) {
			resource = e.Resource
		}
	} else {
		// Internal detail stays in the logs.
		h.logger.Errorf("internal error serving request: %v", err)
	}

	h.writeJSON(w, status, errorResponse{Error: message, Resource: resource, Kind: string(kind)})
}
