package user

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Dashboard gathers platform counters concurrently (admin only).
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		d.Users, d.BannedUsers, err = s.users.Counts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.TranslationsByStat, err = s.stats.CountTranslationsByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.OpenAppeals, err = s.stats.CountOpenAppeals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.PendingReports, err = s.stats.CountPendingReports(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Tasks, err = s.stats.TaskStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user.Dashboard: %w", err)
	}
	return &d, nil
}
