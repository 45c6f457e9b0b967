package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/appeal"
	"github.com/heartmarshall/termtrans-backend/internal/transport/dataloader"
)

type appealService interface {
	Create(ctx context.Context, input appeal.CreateInput) (*domain.Appeal, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Appeal, error)
	List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error)
	Update(ctx context.Context, input appeal.UpdateInput) (*domain.Appeal, error)
	PostMessage(ctx context.Context, input appeal.PostMessageInput) (*domain.AppealMessage, error)
	ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error)
	ReportMessage(ctx context.Context, input appeal.ReportInput) (*domain.MessageReport, error)
	ListReports(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.MessageReport, error)
	ResolveReport(ctx context.Context, input appeal.ResolveReportInput) (*domain.MessageReport, error)
}

// AppealHandler serves appeals, their message threads and message reports.
type AppealHandler struct {
	svc appealService
	log *slog.Logger
}

// NewAppealHandler creates an AppealHandler.
func NewAppealHandler(svc appealService, logger *slog.Logger) *AppealHandler {
	return &AppealHandler{svc: svc, log: logger.With("handler", "appeal")}
}

type createAppealRequest struct {
	TranslationID uuid.UUID `json:"translation_id"`
	Resolution    string    `json:"resolution"`
}

// Create handles POST /appeals.
func (h *AppealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppealRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), appeal.CreateInput{
		TranslationID: req.TranslationID,
		Resolution:    req.Resolution,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// List handles GET /appeals?translation_id=&opened_by=&status=&limit=&offset=.
func (h *AppealHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	translationID, err := queryUUID(r, "translation_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	openedBy, err := queryUUID(r, "opened_by")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), domain.AppealFilter{
		TranslationID: translationID,
		OpenedByID:    openedBy,
		Status:        domain.AppealStatus(r.URL.Query().Get("status")),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

// Get handles GET /appeals/{id}.
func (h *AppealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type updateAppealRequest struct {
	Status     *domain.AppealStatus `json:"status"`
	Resolution *string              `json:"resolution"`
}

// Update handles PATCH /appeals/{id}.
func (h *AppealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateAppealRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), appeal.UpdateInput{
		AppealID:   id,
		Status:     req.Status,
		Resolution: req.Resolution,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type messageResponse struct {
	ID        uuid.UUID          `json:"id"`
	AppealID  uuid.UUID          `json:"appeal_id"`
	Author    *dataloader.Author `json:"author,omitempty"`
	AuthorID  uuid.UUID          `json:"author_id"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"created_at"`
}

// Messages handles GET /appeals/{id}/messages. Authors are resolved in one batch.
func (h *AppealHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	msgs, err := h.svc.ListMessages(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(msgs))
	seen := make(map[uuid.UUID]bool, len(msgs))
	for _, m := range msgs {
		if !seen[m.AuthorID] {
			seen[m.AuthorID] = true
			ids = append(ids, m.AuthorID)
		}
	}
	authors, err := dataloader.LoadAuthors(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = messageResponse{
			ID:        m.ID,
			AppealID:  m.AppealID,
			AuthorID:  m.AuthorID,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
		if a, ok := authors[m.AuthorID]; ok {
			out[i].Author = &a
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

type postMessageRequest struct {
	Message string `json:"message"`
}

// PostMessage handles POST /appeals/{id}/messages.
func (h *AppealHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req postMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.PostMessage(r.Context(), appeal.PostMessageInput{AppealID: id, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Report handles POST /appeals/messages/{id}/report.
func (h *AppealHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.ReportMessage(r.Context(), appeal.ReportInput{MessageID: id, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

// ListReports handles GET /admin/reports?status=&limit=&offset=.
func (h *AppealHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := domain.ReportStatus(r.URL.Query().Get("status"))
	items, err := h.svc.ListReports(r.Context(), status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

type resolveReportRequest struct {
	Status domain.ReportStatus `json:"status"`
	Notes  *string             `json:"notes"`
}

// ResolveReport handles PUT /admin/reports/{id}.
func (h *AppealHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req resolveReportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.ResolveReport(r.Context(), appeal.ResolveReportInput{
		ReportID: id,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
