package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/user"
)

type userService interface {
	Ban(ctx context.Context, id uuid.UUID, input user.BanInput) (*domain.User, error)
	Unban(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Promote(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Demote(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Penalize(ctx context.Context, id uuid.UUID, input user.PenaltyInput) (*domain.User, error)
	ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	ListActivity(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type rulesService interface {
	Rules(ctx context.Context) (domain.ReputationRules, error)
	UpdateRules(ctx context.Context, changes map[string]int) (domain.ReputationRules, error)
	PreviewRules(ctx context.Context, changes map[string]int, sampleSize int) (*domain.RulePreview, error)
}

// AdminHandler serves user moderation, reputation rules and the dashboard.
// Routes are mounted behind the admin middleware; services re-check.
type AdminHandler struct {
	users userService
	rules rulesService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, rules rulesService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, rules: rules, log: logger.With("handler", "admin")}
}

// ListUsers handles GET /admin/users?search=&banned=&admin=&limit=&offset=.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	banned, err := queryBool(r, "banned")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	admin, err := queryBool(r, "admin")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), domain.UserFilter{
		Search: r.URL.Query().Get("search"),
		Banned: banned,
		Admin:  admin,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := list(users, limit, offset)
	resp.Total = total
	writeJSON(w, http.StatusOK, resp)
}

type banRequest struct {
	Reason string `json:"reason"`
}

// Ban handles PUT /admin/users/{id}/ban.
func (h *AdminHandler) Ban(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req banRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.users.Ban(r.Context(), id, user.BanInput{Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Unban handles PUT /admin/users/{id}/unban.
func (h *AdminHandler) Unban(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.users.Unban)
}

// Promote handles PUT /admin/users/{id}/promote.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.users.Promote)
}

// Demote handles PUT /admin/users/{id}/demote.
func (h *AdminHandler) Demote(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.users.Demote)
}

type penaltyRequest struct {
	Delta  int    `json:"delta"`
	Ban    bool   `json:"ban"`
	Reason string `json:"reason"`
}

// Penalize handles POST /admin/users/{id}/penalty.
func (h *AdminHandler) Penalize(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req penaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.users.Penalize(r.Context(), id, user.PenaltyInput{Delta: req.Delta, Ban: req.Ban, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Activity handles GET /admin/users/{id}/activity.
func (h *AdminHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, err := h.users.ListActivity(r.Context(), id, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.users.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Rules handles GET /admin/reputation-rules.
func (h *AdminHandler) Rules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.rules.Rules(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

type rulesRequest struct {
	Rules      map[string]int `json:"rules"`
	SampleSize int            `json:"sample_size"`
}

// UpdateRules handles PUT /admin/reputation-rules.
func (h *AdminHandler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req rulesRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rules, err := h.rules.UpdateRules(r.Context(), req.Rules)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// PreviewRules handles POST /admin/reputation-rules/preview.
func (h *AdminHandler) PreviewRules(w http.ResponseWriter, r *http.Request) {
	var req rulesRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	preview, err := h.rules.PreviewRules(r.Context(), req.Rules, req.SampleSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (h *AdminHandler) userAction(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.User, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
