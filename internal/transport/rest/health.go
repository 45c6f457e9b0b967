package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Check is one named dependency probe. A failing critical check takes the
// service down; a failing non-critical one only degrades it.
type Check struct {
	Name     string
	Critical bool
	Probe    func(ctx context.Context) error
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

// DatabaseCheck pings PostgreSQL.
func DatabaseCheck(db dbPinger) Check {
	return Check{Name: "database", Critical: true, Probe: db.Ping}
}

// DirCheck verifies that dir exists and is a directory. Used for the LDES
// output tree, which is served statically and written by publish tasks.
func DirCheck(name, dir string) Check {
	return Check{Name: name, Probe: func(context.Context) error {
		fi, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	}}
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	checks  []Check
}

func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live reports that the process is serving. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready runs only the critical checks and answers 503 when any fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	var critical []Check
	for _, c := range h.checks {
		if c.Critical {
			critical = append(critical, c)
		}
	}

	status, _ := h.run(r.Context(), critical)
	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health runs every check concurrently and reports each component with its
// latency. Errors are included so operators can see why a component failed.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), h.checks)
	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context, checks []Check) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(checks))
		status     = statusOK
	)

	var g errgroup.Group
	for _, c := range checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Probe(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[c.Name] = CompStatus{Status: statusDown, Error: probeError(err)}
				switch {
				case c.Critical:
					status = statusDown
				case status == statusOK:
					status = statusDegraded
				}
				return nil
			}
			components[c.Name] = CompStatus{Status: statusOK, Latency: latency.String()}
			return nil
		})
	}
	_ = g.Wait()

	return status, components
}

func probeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return err.Error()
}
