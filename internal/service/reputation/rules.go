package reputation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

const (
	defaultPreviewSample = 1000
	maxPreviewSample     = 10000
)

// Rules returns the effective rule table: built-in defaults overridden by stored values.
func (s *Service) Rules(ctx context.Context) (domain.ReputationRules, error) {
	rows, err := s.rules.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("reputation.Rules: %w", err)
	}
	overrides := make(map[string]int, len(rows))
	for _, r := range rows {
		overrides[r.Name] = r.Value
	}
	return domain.DefaultReputationRules().Merge(overrides), nil
}

// UpdateRules stores new values for known rules. Admin only.
func (s *Service) UpdateRules(ctx context.Context, changes map[string]int) (domain.ReputationRules, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := validateRuleChanges(changes); err != nil {
		return nil, err
	}

	if err := s.rules.UpsertRules(ctx, changes, adminID); err != nil {
		return nil, fmt.Errorf("reputation.UpdateRules: %w", err)
	}

	extra := make(map[string]any, len(changes))
	for k, v := range changes {
		extra[k] = v
	}
	if err := s.activity.Log(ctx, domain.Activity{
		UserID: adminID,
		Action: domain.ActivityReputationRulesUpdated,
		Extra:  extra,
	}); err != nil {
		s.log.WarnContext(ctx, "activity log failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "reputation rules updated",
		slog.String("admin_id", adminID.String()),
		slog.Int("rules", len(changes)),
	)
	return s.Rules(ctx)
}

// PreviewRules simulates a rule change over the most recent ledger events without
// committing anything. Events whose reason is not a changed rule keep their
// recorded delta.
func (s *Service) PreviewRules(ctx context.Context, changes map[string]int, sampleSize int) (*domain.RulePreview, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := validateRuleChanges(changes); err != nil {
		return nil, err
	}
	switch {
	case sampleSize <= 0:
		sampleSize = defaultPreviewSample
	case sampleSize > maxPreviewSample:
		sampleSize = maxPreviewSample
	}

	current, err := s.Rules(ctx)
	if err != nil {
		return nil, err
	}
	proposed := current.Merge(changes)

	events, err := s.events.ListRecent(ctx, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("reputation.PreviewRules: %w", err)
	}

	preview := &domain.RulePreview{
		EventsSampled: len(events),
		ProposedRules: proposed,
		ByReason:      make(map[string]domain.Reasons),
	}
	perUser := make(map[string]*domain.UserRulePreview)
	for _, ev := range events {
		newDelta := ev.Delta
		if _, changed := changes[ev.Reason]; changed {
			newDelta = proposed.Get(ev.Reason)
		}

		r := preview.ByReason[ev.Reason]
		r.Events++
		r.Current += ev.Delta
		r.Proposed += newDelta
		preview.ByReason[ev.Reason] = r

		preview.TotalCurrent += ev.Delta
		preview.TotalProposed += newDelta

		key := ev.UserID.String()
		u, ok := perUser[key]
		if !ok {
			u = &domain.UserRulePreview{UserID: ev.UserID}
			perUser[key] = u
		}
		u.Current += ev.Delta
		u.Proposed += newDelta
	}

	preview.Users = make([]domain.UserRulePreview, 0, len(perUser))
	for _, u := range perUser {
		u.Diff = u.Proposed - u.Current
		if u.Diff != 0 {
			preview.UsersAffected++
		}
		preview.Users = append(preview.Users, *u)
	}
	sort.Slice(preview.Users, func(i, j int) bool {
		a, b := abs(preview.Users[i].Diff), abs(preview.Users[j].Diff)
		if a != b {
			return a > b
		}
		return preview.Users[i].UserID.String() < preview.Users[j].UserID.String()
	})

	return preview, nil
}

// SeedRules stores values for rules that have no row yet. Existing rows are left untouched.
func (s *Service) SeedRules(ctx context.Context, values map[string]int) error {
	if len(values) == 0 {
		return nil
	}
	if err := validateRuleChanges(values); err != nil {
		return err
	}
	if err := s.rules.InsertMissingRules(ctx, values); err != nil {
		return fmt.Errorf("reputation.SeedRules: %w", err)
	}
	return nil
}

func validateRuleChanges(changes map[string]int) error {
	if len(changes) == 0 {
		return domain.NewValidationError("rules", "at least one rule is required")
	}

	var errs []domain.FieldError
	for name, v := range changes {
		switch {
		case !domain.IsKnownRule(name):
			errs = append(errs, domain.FieldError{Field: name, Message: "unknown rule"})
		case strings.HasSuffix(name, "_penalty") && v > 0:
			errs = append(errs, domain.FieldError{Field: name, Message: "must not be positive"})
		case !strings.HasSuffix(name, "_penalty") && v < 0:
			errs = append(errs, domain.FieldError{Field: name, Message: "must not be negative"})
		case v > math.MaxInt32 || v < math.MinInt32:
			errs = append(errs, domain.FieldError{Field: name, Message: "out of range"})
		}
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
