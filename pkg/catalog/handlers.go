// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

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

type CreateItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	Code        string `json:"code" validate:"required"`
	TotalCopies int    `json:"total_copies" validate:"required,min=1"`
}

type UpdateItemRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Code   *string `json:"code"`
}

type ResizeItemRequest struct {
	TotalCopies int `json:"total_copies" validate:"required,min=1"`
}

type ItemResponse struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Code            string    `json:"code"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	Availability    string    `json:"availability"`
	CreatedAt       time.Time `json:"created_at"`
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
	router.Post("/api/v0/items", h.HandleCreateItem)
	router.Get("/api/v0/items", h.HandleListItems)
	router.Get("/api/v0/items/{id}", h.HandleGetItem)
	router.Patch("/api/v0/items/{id}", h.HandleUpdateItem)
	router.Put("/api/v0/items/{id}/copies", h.HandleResizeItem)
	router.Delete("/api/v0/items/{id}", h.HandleDeleteItem)
}

func (h *Handler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleCreateItem")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, loan.Validation("body", err.Error()))
		return
	}

	item, err := h.service.CreateItem(ctx, actor, req.Title, req.Author, req.Code, req.TotalCopies)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, itemResponse(item))
}

func (h *Handler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleListItems")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	items, err := h.service.ListItems(ctx, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse(item)
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleGetItem")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	item, err := h.service.GetItem(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, itemResponse(item))
}

func (h *Handler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleUpdateItem")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}

	item, err := h.service.UpdateItem(ctx, actor, chi.URLParam(r, "id"), ItemDetails{
		Title:  req.Title,
		Author: req.Author,
		Code:   req.Code,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, itemResponse(item))
}

func (h *Handler) HandleResizeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleResizeItem")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	var req ResizeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, loan.Validation("body", "invalid JSON"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, loan.Validation("total_copies", "must be at least 1"))
		return
	}

	item, err := h.service.ResizeItem(ctx, actor, chi.URLParam(r, "id"), req.TotalCopies)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, itemResponse(item))
}

func (h *Handler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "catalog.Handler.HandleDeleteItem")
	defer span.End()

	actor, ok := authentication.GetActor(ctx)
	if !ok {
		h.writeError(w, loan.Forbidden("actor", "unauthenticated"))
		return
	}

	if err := h.service.DeleteItem(ctx, actor, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemResponse(item *types.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		TenantID:        item.TenantID,
		Title:           item.Title,
		Author:          item.Author,
		Code:            item.Code,
		TotalCopies:     item.TotalCopies,
		AvailableCopies: item.AvailableCopies,
		Availability:    item.Availability(),
		CreatedAt:       item.CreatedAt,
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
