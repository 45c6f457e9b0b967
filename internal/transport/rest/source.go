package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/harvest"
)

type sourceService interface {
	CreateSource(ctx context.Context, input harvest.CreateSourceInput) (*domain.Source, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
	SyncSource(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error)
}

type ldesService interface {
	Publish(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error)
}

type taskService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, status domain.TaskStatus, limit, offset int) ([]domain.Task, error)
}

// SourceHandler serves vocabulary sources and the background tasks they launch.
type SourceHandler struct {
	sources sourceService
	ldes    ldesService
	tasks   taskService
	log     *slog.Logger
}

// NewSourceHandler creates a SourceHandler.
func NewSourceHandler(sources sourceService, ldes ldesService, tasks taskService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{sources: sources, ldes: ldes, tasks: tasks, log: logger.With("handler", "source")}
}

// List handles GET /admin/sources.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sources.ListSources(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if items == nil {
		items = []domain.Source{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type createSourceRequest struct {
	Name          string            `json:"name"`
	Kind          domain.SourceKind `json:"kind"`
	Endpoint      string            `json:"endpoint"`
	CollectionURI string            `json:"collection_uri"`
}

// Create handles POST /admin/sources.
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSourceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	src, err := h.sources.CreateSource(r.Context(), harvest.CreateSourceInput{
		Name:          req.Name,
		Kind:          req.Kind,
		Endpoint:      req.Endpoint,
		CollectionURI: req.CollectionURI,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

// Sync handles POST /admin/sources/{id}/sync and answers 202 with the task.
func (h *SourceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	h.launch(w, r, h.sources.SyncSource)
}

// Publish handles POST /admin/sources/{id}/ldes and answers 202 with the task.
func (h *SourceHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.launch(w, r, h.ldes.Publish)
}

// Task handles GET /tasks/{id}.
func (h *SourceHandler) Task(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Tasks handles GET /admin/tasks?status=&limit=&offset=.
func (h *SourceHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := domain.TaskStatus(r.URL.Query().Get("status"))
	items, err := h.tasks.List(r.Context(), status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

func (h *SourceHandler) launch(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Task, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Location", "/tasks/"+t.ID.String())
	writeJSON(w, http.StatusAccepted, t)
}
