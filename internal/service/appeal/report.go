package appeal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// ReportMessage flags someone else's message for moderation. Each user may
// report a message once.
func (s *Service) ReportMessage(ctx context.Context, input ReportInput) (*domain.MessageReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.appeals.GetMessage(ctx, input.MessageID)
	if err != nil {
		return nil, fmt.Errorf("appeal.ReportMessage: %w", err)
	}
	if msg.AuthorID == userID {
		return nil, domain.NewValidationError("message_id", "cannot report your own message")
	}

	report, err := s.appeals.CreateReport(ctx, msg.ID, userID, strings.TrimSpace(input.Reason))
	if err != nil {
		return nil, fmt.Errorf("appeal.ReportMessage: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID: userID,
		Action: domain.ActivityMessageReported,
		Extra: map[string]any{
			"report_id":  report.ID.String(),
			"message_id": msg.ID.String(),
			"appeal_id":  msg.AppealID.String(),
		},
	})
	return report, nil
}

// ListReports returns reports in a status, pending by default. Admin only.
func (s *Service) ListReports(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.MessageReport, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if status == "" {
		status = domain.ReportStatusPending
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}
	if offset < 0 {
		offset = 0
	}

	reports, err := s.appeals.ListReports(ctx, status, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("appeal.ListReports: %w", err)
	}
	return reports, nil
}

// ResolveReport records an administrator's decision on a report.
func (s *Service) ResolveReport(ctx context.Context, input ResolveReportInput) (*domain.MessageReport, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	report, err := s.appeals.ResolveReport(ctx, input.ReportID, input.Status, adminID, input.Notes)
	if err != nil {
		return nil, fmt.Errorf("appeal.ResolveReport: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID: adminID,
		Action: domain.ActivityReportResolved,
		Extra: map[string]any{
			"report_id":  report.ID.String(),
			"message_id": report.MessageID.String(),
			"status":     report.Status.String(),
		},
	})
	s.log.InfoContext(ctx, "report resolved",
		slog.String("report_id", report.ID.String()),
		slog.String("status", report.Status.String()),
	)
	return report, nil
}
