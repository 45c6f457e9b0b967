package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/translation"
)

type translationService interface {
	Create(ctx context.Context, input translation.CreateInput) (*domain.Translation, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
	Update(ctx context.Context, input translation.UpdateInput) (*domain.Translation, error)
	Submit(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
	Review(ctx context.Context, input translation.ReviewInput) (*domain.Translation, error)
	ListByTermField(ctx context.Context, termFieldID uuid.UUID, status domain.TranslationStatus, limit, offset int) ([]domain.Translation, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TranslationStatus) (*domain.Translation, error)
	SetLanguage(ctx context.Context, id uuid.UUID, language string) (*domain.Translation, error)
}

type reputationService interface {
	GetUserReputation(ctx context.Context, userID uuid.UUID) (*domain.UserReputation, error)
}

// TranslationHandler serves the translation workflow and reputation lookups.
type TranslationHandler struct {
	svc        translationService
	reputation reputationService
	log        *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, reputation reputationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, reputation: reputation, log: logger.With("handler", "translation")}
}

type createTranslationRequest struct {
	TermFieldID uuid.UUID `json:"term_field_id"`
	Language    string    `json:"language"`
	Value       string    `json:"value"`
	Submit      bool      `json:"submit"`
}

// Create handles POST /translations.
func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTranslationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tr, err := h.svc.Create(r.Context(), translation.CreateInput{
		TermFieldID: req.TermFieldID,
		Language:    req.Language,
		Value:       req.Value,
		Submit:      req.Submit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tr)
}

// Get handles GET /translations/{id}.
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Get)
}

type updateTranslationRequest struct {
	Value string `json:"value"`
}

// Update handles PATCH /translations/{id}.
func (h *TranslationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTranslationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tr, err := h.svc.Update(r.Context(), translation.UpdateInput{TranslationID: id, Value: req.Value})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// Submit handles POST /translations/{id}/submit.
func (h *TranslationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Submit)
}

type reviewRequest struct {
	Approve *bool `json:"approve"`
}

// Review handles POST /translations/{id}/review.
func (h *TranslationHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Approve == nil {
		handleError(h.log, w, r, domain.NewValidationError("approve", "required"))
		return
	}

	tr, err := h.svc.Review(r.Context(), translation.ReviewInput{TranslationID: id, Approve: *req.Approve})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// ListByTermField handles GET /term-fields/{id}/translations?status=&limit=&offset=.
func (h *TranslationHandler) ListByTermField(w http.ResponseWriter, r *http.Request) {
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

	status := domain.TranslationStatus(r.URL.Query().Get("status"))
	items, err := h.svc.ListByTermField(r.Context(), id, status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(items, limit, offset))
}

type statusRequest struct {
	Status domain.TranslationStatus `json:"status"`
}

// SetStatus handles PUT /admin/translations/{id}/status.
func (h *TranslationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tr, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

type languageRequest struct {
	Language string `json:"language"`
}

// SetLanguage handles PUT /admin/translations/{id}/language.
func (h *TranslationHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tr, err := h.svc.SetLanguage(r.Context(), id, req.Language)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// UserReputation handles GET /users/{id}/reputation.
func (h *TranslationHandler) UserReputation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rep, err := h.reputation.GetUserReputation(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *TranslationHandler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Translation, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tr, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}
