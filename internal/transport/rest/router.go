package rest

import (
	"net/http"

	"github.com/heartmarshall/termtrans-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts. Metrics and LDESDir are optional.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Translations *TranslationHandler
	Appeals      *AppealHandler
	Communities  *CommunityHandler
	Admin        *AdminHandler
	Sources      *SourceHandler

	Metrics     http.Handler
	MetricsPath string
	LDESDir     string
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.AdminOnly()
	adminFunc := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, admin(fn))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}
	if h.LDESDir != "" {
		mux.Handle("GET /ldes/", http.StripPrefix("/ldes/", ldesFiles(h.LDESDir)))
	}

	mux.HandleFunc("POST /auth/session", h.Auth.Login)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("POST /translations", h.Translations.Create)
	mux.HandleFunc("GET /translations/{id}", h.Translations.Get)
	mux.HandleFunc("PATCH /translations/{id}", h.Translations.Update)
	mux.HandleFunc("POST /translations/{id}/submit", h.Translations.Submit)
	mux.HandleFunc("POST /translations/{id}/review", h.Translations.Review)
	mux.HandleFunc("GET /term-fields/{id}/translations", h.Translations.ListByTermField)
	mux.HandleFunc("GET /users/{id}/reputation", h.Translations.UserReputation)

	mux.HandleFunc("POST /appeals", h.Appeals.Create)
	mux.HandleFunc("GET /appeals", h.Appeals.List)
	mux.HandleFunc("GET /appeals/{id}", h.Appeals.Get)
	mux.HandleFunc("PATCH /appeals/{id}", h.Appeals.Update)
	mux.HandleFunc("GET /appeals/{id}/messages", h.Appeals.Messages)
	mux.HandleFunc("POST /appeals/{id}/messages", h.Appeals.PostMessage)
	mux.HandleFunc("POST /appeals/messages/{id}/report", h.Appeals.Report)

	mux.HandleFunc("GET /communities", h.Communities.List)
	mux.HandleFunc("POST /communities", h.Communities.Create)
	mux.HandleFunc("GET /communities/{id}", h.Communities.Get)
	mux.HandleFunc("PATCH /communities/{id}", h.Communities.Update)
	mux.HandleFunc("DELETE /communities/{id}", h.Communities.Delete)
	mux.HandleFunc("POST /communities/{id}/join", h.Communities.Join)
	mux.HandleFunc("POST /communities/{id}/leave", h.Communities.Leave)
	mux.HandleFunc("GET /communities/{id}/members", h.Communities.Members)
	mux.HandleFunc("PUT /communities/{id}/members/{userID}/role", h.Communities.SetMemberRole)
	mux.HandleFunc("GET /communities/{id}/goals", h.Communities.Goals)
	mux.HandleFunc("POST /communities/{id}/goals", h.Communities.CreateGoal)
	mux.HandleFunc("DELETE /communities/{id}/goals/{goalID}", h.Communities.DeleteGoal)

	mux.HandleFunc("GET /tasks/{id}", h.Sources.Task)

	adminFunc("PUT /admin/translations/{id}/status", h.Translations.SetStatus)
	adminFunc("PUT /admin/translations/{id}/language", h.Translations.SetLanguage)
	adminFunc("GET /admin/users", h.Admin.ListUsers)
	adminFunc("PUT /admin/users/{id}/ban", h.Admin.Ban)
	adminFunc("PUT /admin/users/{id}/unban", h.Admin.Unban)
	adminFunc("PUT /admin/users/{id}/promote", h.Admin.Promote)
	adminFunc("PUT /admin/users/{id}/demote", h.Admin.Demote)
	adminFunc("POST /admin/users/{id}/penalty", h.Admin.Penalize)
	adminFunc("GET /admin/users/{id}/activity", h.Admin.Activity)
	adminFunc("GET /admin/dashboard", h.Admin.Dashboard)
	adminFunc("GET /admin/reputation-rules", h.Admin.Rules)
	adminFunc("PUT /admin/reputation-rules", h.Admin.UpdateRules)
	adminFunc("POST /admin/reputation-rules/preview", h.Admin.PreviewRules)
	adminFunc("GET /admin/reports", h.Appeals.ListReports)
	adminFunc("PUT /admin/reports/{id}", h.Appeals.ResolveReport)
	adminFunc("GET /admin/sources", h.Sources.List)
	adminFunc("POST /admin/sources", h.Sources.Create)
	adminFunc("POST /admin/sources/{id}/sync", h.Sources.Sync)
	adminFunc("POST /admin/sources/{id}/ldes", h.Sources.Publish)
	adminFunc("GET /admin/tasks", h.Sources.Tasks)

	return mux
}

// ldesFiles serves published fragments as Turtle without directory listings.
func ldesFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		w.Header().Set("Content-Type", "text/turtle; charset=utf-8")
		fs.ServeHTTP(w, r)
	})
}
