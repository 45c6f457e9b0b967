package ldes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Generation outcomes.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
)

// Result describes one generation run.
type Result struct {
	SourceID     uuid.UUID `json:"source_id"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	Fragment     string    `json:"fragment,omitempty"`
	Translations int       `json:"translations"`
	Members      int       `json:"members"`
}

// Generate writes a new fragment with the source's in-review translations
// modified after the newest timestamp already published in latest.ttl.
func (s *Service) Generate(ctx context.Context, sourceID uuid.UUID) (*Result, error) {
	if _, err := s.sources.GetSource(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("ldes.Generate: %w", err)
	}

	dir := s.Dir(sourceID)
	since, err := latestModified(filepath.Join(dir, latestFile))
	if err != nil {
		return nil, fmt.Errorf("ldes.Generate: %w", err)
	}

	rows, err := s.translations.ListForLDES(ctx, sourceID, since)
	if err != nil {
		return nil, fmt.Errorf("ldes.Generate: %w", err)
	}
	if len(rows) == 0 {
		msg := "no translations in review"
		if since != nil {
			msg = "no new translations to publish"
		}
		s.log.InfoContext(ctx, "ldes generation skipped",
			slog.String("source_id", sourceID.String()),
			slog.String("reason", msg),
		)
		return &Result{SourceID: sourceID, Status: StatusSkipped, Message: msg}, nil
	}

	members := groupMembers(rows)
	newest := rows[0].ModifiedAt
	for _, r := range rows[1:] {
		if r.ModifiedAt.After(newest) {
			newest = r.ModifiedAt
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ldes.Generate: create dir: %w", err)
	}
	epoch := freeEpoch(dir, newest.Unix())
	path := filepath.Join(dir, strconv.FormatInt(epoch, 10)+".ttl")

	data := fragmentData{
		StreamURI:   s.streamURI(sourceID),
		FragmentURI: s.fragmentURI(sourceID, epoch),
		NextURI:     s.fragmentURI(sourceID, epoch+1),
		NextTime:    time.Unix(epoch+1, 0).UTC().Format(time.RFC3339),
		Members:     members,
	}
	for i := range data.Members {
		data.Members[i].VersionURI = data.FragmentURI + "#" + strconv.Itoa(i+1)
	}

	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("ldes.Generate: render fragment: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("ldes.Generate: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, latestFile), buf.Bytes()); err != nil {
		return nil, fmt.Errorf("ldes.Generate: update latest: %w", err)
	}

	s.log.InfoContext(ctx, "ldes fragment written",
		slog.String("source_id", sourceID.String()),
		slog.String("fragment", path),
		slog.Int("translations", len(rows)),
		slog.Int("members", len(members)),
	)
	return &Result{
		SourceID:     sourceID,
		Status:       StatusSuccess,
		Message:      "fragment created",
		Fragment:     path,
		Translations: len(rows),
		Members:      len(members),
	}, nil
}

// freeEpoch returns the first epoch at or after want with no fragment on disk,
// so a run within the same second as the previous one never overwrites it.
func freeEpoch(dir string, want int64) int64 {
	for {
		if _, err := os.Stat(filepath.Join(dir, strconv.FormatInt(want, 10)+".ttl")); err != nil {
			return want
		}
		want++
	}
}

func (s *Service) streamURI(sourceID uuid.UUID) string {
	return s.prefixURI + "/" + sourceID.String() + "/"
}

func (s *Service) fragmentURI(sourceID uuid.UUID, epoch int64) string {
	return s.streamURI(sourceID) + strconv.FormatInt(epoch, 10) + ".ttl"
}

// GenerateAll generates fragments for every source. Failures are joined.
func (s *Service) GenerateAll(ctx context.Context) ([]Result, error) {
	sources, err := s.sources.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("ldes.GenerateAll: %w", err)
	}

	var (
		results []Result
		errs    []error
	)
	for _, src := range sources {
		res, err := s.Generate(ctx, src.ID)
		if err != nil {
			if ctx.Err() != nil {
				return results, fmt.Errorf("ldes.GenerateAll: %w", ctx.Err())
			}
			s.log.ErrorContext(ctx, "ldes generation failed",
				slog.String("source_id", src.ID.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("source %s: %w", src.ID, err))
			continue
		}
		results = append(results, *res)
	}
	return results, errors.Join(errs...)
}

// Publish launches a background generation for one source. Admin only.
func (s *Service) Publish(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.sources.GetSource(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("ldes.Publish: %w", err)
	}

	t, err := s.tasks.Launch(ctx, domain.TaskTypeLDES, &sourceID, &adminID, func(ctx context.Context) (any, error) {
		return s.Generate(ctx, sourceID)
	})
	if err != nil {
		return nil, fmt.Errorf("ldes.Publish: %w", err)
	}

	if err := s.activity.Log(ctx, domain.Activity{
		UserID: adminID,
		Action: domain.ActivityTaskLaunched,
		Extra:  map[string]any{"task_id": t.ID.String(), "type": t.Type.String(), "source_id": sourceID.String()},
	}); err != nil {
		s.log.WarnContext(ctx, "activity log failed", slog.String("error", err.Error()))
	}
	return t, nil
}
