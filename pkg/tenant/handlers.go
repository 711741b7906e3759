// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/authentication"
	"github.com/canonical/lending-service/pkg/loan"
)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,lowercase,excludesall= "`
}

type TenantStatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=member admin"`
}

type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	IdentityID string    `json:"identity_id"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type MemberUserResponse struct {
	MemberID string `json:"member_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type Handler struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewHandler(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (h *Handler) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/tenants", h.HandleCreateTenant)
	router.Get("/api/v0/tenants", h.HandleListTenants)
	router.Get("/api/v0/tenants/{id}", h.HandleGetTenant)
	router.Patch("/api/v0/tenants/{id}/status", h.HandleSetTenantStatus)
	router.Delete("/api/v0/tenants/{id}", h.HandleDeleteTenant)

	router.Post("/api/v0/members", h.HandleAddMember)
	router.Get("/api/v0/members", h.HandleListMembers)
}

func (h *Handler) HandleCreateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleCreateTenant")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, loan.Validation("body", err.Error()))
		return
	}

	t, err := h.service.CreateTenant(ctx, actor, req.Name, req.Slug)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, tenantResponse(t))
}

func (h *Handler) HandleListTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleListTenants")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	tenants, err := h.service.ListTenants(ctx, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		out[i] = tenantResponse(t)
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleGetTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleGetTenant")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	t, err := h.service.GetTenant(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tenantResponse(t))
}

func (h *Handler) HandleSetTenantStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleSetTenantStatus")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req TenantStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}
	if req.Enabled == nil {
		h.writeError(w, loan.Validation("enabled", "is required"))
		return
	}

	if err := h.service.SetTenantStatus(ctx, actor, chi.URLParam(r, "id"), *req.Enabled); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleDeleteTenant")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	if err := h.service.DeleteTenant(ctx, actor, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleAddMember")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, loan.Validation("body", err.Error()))
		return
	}

	m, err := h.service.AddMember(ctx, actor, req.Email, req.Role)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, MemberResponse{
		ID:         m.ID,
		TenantID:   m.TenantID,
		IdentityID: m.IdentityID,
		Role:       m.Role,
		CreatedAt:  m.CreatedAt,
	})
}

func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.HandleListMembers")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	users, err := h.service.ListMembers(ctx, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]MemberUserResponse, len(users))
	for i, u := range users {
		out[i] = MemberUserResponse{MemberID: u.MemberID, Email: u.Email, Role: u.Role}
	}

	h.writeJSON(w, http.StatusOK, out)
}

func tenantResponse(t *types.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Enabled:   t.Enabled,
		CreatedAt: t.CreatedAt,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := loan.KindOf(err)

	status := http.StatusInternalServerError
	message := "internal error"

	switch kind {
	case loan.KindNotFound:
		status = http.StatusNotFound
	case loan.KindForbidden:
		status = http.StatusForbidden
	case loan.KindConflict:
		status = http.StatusConflict
	case loan.KindValidation:
		status = http.StatusBadRequest
	}

	if kind != loan.KindInternal {
		message = err.Error()
	} else {
		h.logger.Errorf("internal error serving request: %v", err)
	}

	h.writeJSON(w, status, errorResponse{Error: message, Kind: string(kind)})
}
