// Package handler is the thin HTTP layer over the compliance facade. It
// decodes requests, delegates, and maps coded domain errors onto statuses;
// business logic stays in the service.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"regledger/internal/audit"
	"regledger/internal/compliance"
	dErrors "regledger/pkg/domain-errors"
	"regledger/pkg/platform/httputil"
)

const defaultAuditLimit = 50

type Handler struct {
	facade     *compliance.Facade
	auditTrail *audit.Publisher
	logger     *slog.Logger
}

func New(facade *compliance.Facade, auditTrail *audit.Publisher, logger *slog.Logger) *Handler {
	return &Handler{facade: facade, auditTrail: auditTrail, logger: logger}
}

// Register mounts all regulatory routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/regulatory", func(r chi.Router) {
		r.Post("/rules", h.createRule)
		r.Get("/rules", h.listRules)
		r.Get("/rules/{id}", h.getRule)
		r.Put("/rules/{id}", h.updateRule)
		r.Delete("/rules/{id}", h.deleteRule)
		r.Post("/reports", h.generateReport)
	})
	if h.auditTrail != nil {
		r.Get("/audit/events", h.listAuditEvents)
	}
}

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}

	candidate, err := req.toModel()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rule, err := h.facade.CreateRule(r.Context(), candidate)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, rule)
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.facade.GetAllRules(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rules)
}

func (h *Handler) getRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rule, err := h.facade.GetRuleByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if rule == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "rule not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rule)
}

func (h *Handler) updateRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req updateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rule, err := h.facade.UpdateRule(r.Context(), id, patch)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rule)
}

func (h *Handler) deleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rule, err := h.facade.DeleteRule(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rule)
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	modelReq, err := req.toModel()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.facade.GenerateRegulatoryReport(r.Context(), modelReq)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	events, err := h.auditTrail.ListRecent(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "rule id must be a positive integer")
	}
	return id, nil
}
