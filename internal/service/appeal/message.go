package appeal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// PostMessage adds a message to an appeal thread. The appeal owner, the
// translation author and admins may post, at most maxMessagesPerHour per
// appeal in any rolling hour.
func (s *Service) PostMessage(ctx context.Context, input PostMessageInput) (*domain.AppealMessage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.appeals.GetByID(ctx, input.AppealID)
	if err != nil {
		return nil, fmt.Errorf("appeal.PostMessage: %w", err)
	}
	if err := s.checkParticipant(ctx, a, userID); err != nil {
		return nil, err
	}
	if a.Status != domain.AppealStatusOpen {
		return nil, fmt.Errorf("appeal.PostMessage: %w", domain.NewStatusError("appeal", a.Status, domain.AppealStatusOpen))
	}

	recent, err := s.appeals.CountMessagesWithin(ctx, a.ID, userID, time.Hour)
	if err != nil {
		return nil, fmt.Errorf("appeal.PostMessage: %w", err)
	}
	if recent >= s.maxMessagesPerHour {
		s.log.WarnContext(ctx, "appeal message rate exceeded",
			slog.String("appeal_id", a.ID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("recent", recent),
		)
		return nil, fmt.Errorf("appeal.PostMessage: %d messages in the last hour: %w", recent, domain.ErrRateLimited)
	}

	msg, err := s.appeals.CreateMessage(ctx, a.ID, userID, strings.TrimSpace(input.Message))
	if err != nil {
		return nil, fmt.Errorf("appeal.PostMessage: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        userID,
		Action:        domain.ActivityAppealMessagePosted,
		TranslationID: &a.TranslationID,
		Extra: map[string]any{
			"appeal_id":  a.ID.String(),
			"message_id": msg.ID.String(),
		},
	})
	return msg, nil
}

// ListMessages returns an appeal's thread, oldest first.
func (s *Service) ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error) {
	if _, err := s.appeals.GetByID(ctx, appealID); err != nil {
		return nil, fmt.Errorf("appeal.ListMessages: %w", err)
	}
	msgs, err := s.appeals.ListMessages(ctx, appealID)
	if err != nil {
		return nil, fmt.Errorf("appeal.ListMessages: %w", err)
	}
	return msgs, nil
}

func (s *Service) checkParticipant(ctx context.Context, a *domain.Appeal, userID uuid.UUID) error {
	if a.OpenedByID == userID || ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	tr, err := s.translations.GetByID(ctx, a.TranslationID)
	if err != nil {
		return fmt.Errorf("appeal.checkParticipant: %w", err)
	}
	if tr.CreatedByID == userID {
		return nil
	}
	return fmt.Errorf("appeal: not a participant: %w", domain.ErrForbidden)
}
