package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/community"
)

type communityService interface {
	Create(ctx context.Context, input community.CreateInput) (*domain.Community, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	List(ctx context.Context, typ domain.CommunityType, limit, offset int) ([]domain.Community, error)
	Update(ctx context.Context, id uuid.UUID, input community.UpdateInput) (*domain.Community, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Join(ctx context.Context, id uuid.UUID) (*domain.CommunityMember, error)
	Leave(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context, id uuid.UUID, limit, offset int) ([]domain.CommunityMember, error)
	SetMemberRole(ctx context.Context, id, memberID uuid.UUID, role domain.CommunityRole) (*domain.CommunityMember, error)
	CreateGoal(ctx context.Context, input community.GoalInput) (*domain.CommunityGoal, error)
	DeleteGoal(ctx context.Context, communityID, goalID uuid.UUID) error
	ListGoals(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error)
}

// CommunityHandler serves communities, memberships and goals.
type CommunityHandler struct {
	svc communityService
	log *slog.Logger
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(svc communityService, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{svc: svc, log: logger.With("handler", "community")}
}

type communityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /communities?type=&limit=&offset=.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	typ := domain.CommunityType(r.URL.Query().Get("type"))
	items, err := h.svc.List(r.Context(), typ, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

// Create handles POST /communities.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req communityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := community.CreateInput{}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	c, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /communities/{id}.
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update handles PATCH /communities/{id}.
func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req communityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, community.UpdateInput{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /communities/{id}.
func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.svc.Delete)
}

// Join handles POST /communities/{id}/join.
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.Join(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Leave handles POST /communities/{id}/leave.
func (h *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.svc.Leave)
}

// Members handles GET /communities/{id}/members.
func (h *CommunityHandler) Members(w http.ResponseWriter, r *http.Request) {
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
	items, err := h.svc.ListMembers(r.Context(), id, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

type roleRequest struct {
	Role domain.CommunityRole `json:"role"`
}

// SetMemberRole handles PUT /communities/{id}/members/{userID}/role.
func (h *CommunityHandler) SetMemberRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	memberID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.SetMemberRole(r.Context(), id, memberID, req.Role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Goals handles GET /communities/{id}/goals.
func (h *CommunityHandler) Goals(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	goals, err := h.svc.ListGoals(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if goals == nil {
		goals = []domain.CommunityGoal{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": goals})
}

type goalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	TargetCount int        `json:"target_count"`
	DueAt       *time.Time `json:"due_at"`
}

// CreateGoal handles POST /communities/{id}/goals.
func (h *CommunityHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), community.GoalInput{
		CommunityID: id,
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		TargetCount: req.TargetCount,
		DueAt:       req.DueAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// DeleteGoal handles DELETE /communities/{id}/goals/{goalID}.
func (h *CommunityHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	goalID, err := pathUUID(r, "goalID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), id, goalID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommunityHandler) noContent(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := fn(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
