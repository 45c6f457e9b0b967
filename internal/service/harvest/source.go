package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// CreateSource registers a vocabulary source. Admin only.
func (s *Service) CreateSource(ctx context.Context, input CreateSourceInput) (*domain.Source, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, err := s.terms.CreateSource(ctx, domain.Source{
		Name:          domain.NormalizeName(input.Name),
		Kind:          input.Kind,
		Endpoint:      input.Endpoint,
		CollectionURI: input.CollectionURI,
	})
	if err != nil {
		return nil, fmt.Errorf("harvest.CreateSource: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID: adminID,
		Action: domain.ActivitySourceCreated,
		Extra:  map[string]any{"source_id": src.ID.String(), "name": src.Name},
	})
	s.log.InfoContext(ctx, "source created",
		slog.String("source_id", src.ID.String()),
		slog.String("collection", src.CollectionURI),
	)
	return src, nil
}

// GetSource returns a source by ID.
func (s *Service) GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	src, err := s.terms.GetSource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("harvest.GetSource: %w", err)
	}
	return src, nil
}

// ListSources returns all sources.
func (s *Service) ListSources(ctx context.Context) ([]domain.Source, error) {
	items, err := s.terms.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("harvest.ListSources: %w", err)
	}
	return items, nil
}

// SyncSource launches a background harvest of one source. Admin only.
func (s *Service) SyncSource(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	src, err := s.terms.GetSource(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("harvest.SyncSource: %w", err)
	}
	if src.Kind != domain.SourceKindSPARQL {
		return nil, domain.NewValidationError("kind", "source is not a sparql source")
	}

	id := src.ID
	t, err := s.tasks.Launch(ctx, domain.TaskTypeHarvest, &id, &adminID, func(ctx context.Context) (any, error) {
		return s.Harvest(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("harvest.SyncSource: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID: adminID,
		Action: domain.ActivityTaskLaunched,
		Extra:  map[string]any{"task_id": t.ID.String(), "type": t.Type.String(), "source_id": id.String()},
	})
	return t, nil
}

// HarvestAll harvests every sparql source in turn. A failing source does not
// stop the others; the failures are joined into the returned error.
func (s *Service) HarvestAll(ctx context.Context) ([]Result, error) {
	sources, err := s.terms.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("harvest.HarvestAll: %w", err)
	}

	var (
		results []Result
		errs    []error
	)
	for _, src := range sources {
		if src.Kind != domain.SourceKindSPARQL {
			continue
		}
		res, err := s.Harvest(ctx, src.ID)
		if err != nil {
			if ctx.Err() != nil {
				return results, fmt.Errorf("harvest.HarvestAll: %w", ctx.Err())
			}
			s.log.ErrorContext(ctx, "source harvest failed",
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

func (s *Service) logActivity(ctx context.Context, a domain.Activity) {
	if err := s.activity.Log(ctx, a); err != nil {
		s.log.WarnContext(ctx, "activity log failed",
			slog.String("action", a.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
