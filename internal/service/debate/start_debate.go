package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// StartDebate moves an OPEN debate to IN_PROGRESS with the cursor at the
// first PROPOSER turn. Both sides need at least one ACTIVE participant.
func (s *Service) StartDebate(ctx context.Context, debateID uuid.UUID) (*domain.Debate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if debateID == uuid.Nil {
		return nil, domain.NewValidationError("debate_id", "required")
	}

	var (
		started *domain.Debate
		events  []domain.Event
	)
	err := s.runInTx(ctx, "start_debate", func(txCtx context.Context) error {
		d, err := s.lockDebate(txCtx, debateID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebateStatusOpen {
			return domain.ErrInvalidTransition.WithMessage("debate is %s, starting requires OPEN", d.Status)
		}

		if _, err := s.participants.GetActiveByUser(txCtx, d.ID, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotParticipant
			}
			return fmt.Errorf("get participant: %w", err)
		}

		for _, role := range []domain.Role{domain.RoleProposer, domain.RoleOpposer} {
			n, err := s.participants.CountActiveByRole(txCtx, d.ID, role)
			if err != nil {
				return fmt.Errorf("count %s participants: %w", role, err)
			}
			if n == 0 {
				return domain.ErrInvalidTransition.WithMessage("no active %s participant", role)
			}
		}

		now := s.now()
		first := domain.FirstCursor()
		next := *d
		next.Status = domain.DebateStatusInProgress
		next.CurrentTurnSide = first.Side
		next.CurrentTurnNumber = first.Number
		next.StartedAt = &now

		started, err = s.debates.UpdateState(txCtx, next)
		if err != nil {
			return fmt.Errorf("update debate state: %w", err)
		}

		events = []domain.Event{{
			Type: domain.EventDebateStarted, DebateID: d.ID, OccurredAt: now,
			Side: first.Side, TurnNumber: first.Number,
		}}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events)

	s.log.InfoContext(ctx, "debate started",
		slog.String("user_id", userID.String()),
		slog.String("debate_id", debateID.String()),
	)

	return started, nil
}
