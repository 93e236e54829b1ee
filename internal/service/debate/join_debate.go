package debate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// JoinDebate adds the caller to an OPEN debate with the given role.
func (s *Service) JoinDebate(ctx context.Context, input JoinDebateInput) (*domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var joined *domain.Participant
	err := s.runInTx(ctx, "join_debate", func(txCtx context.Context) error {
		d, err := s.lockDebate(txCtx, input.DebateID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebateStatusOpen {
			return domain.ErrInvalidTransition.WithMessage("debate is %s, joining requires OPEN", d.Status)
		}
		if errs := validateRole(d.Format, input.Role); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs}
		}

		if err := s.checkCapacity(txCtx, d, input.Role); err != nil {
			return err
		}

		now := s.now()
		joined, err = s.participants.Create(txCtx, domain.Participant{
			ID:        uuid.New(),
			DebateID:  d.ID,
			UserID:    userID,
			Role:      input.Role,
			Status:    domain.ParticipantStatusActive,
			JoinedAt:  now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create participant: %w", err)
		}

		if _, err := s.debates.UpdateState(txCtx, *d); err != nil {
			return fmt.Errorf("update debate state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "debate joined",
		slog.String("user_id", userID.String()),
		slog.String("debate_id", input.DebateID.String()),
		slog.String("role", input.Role.String()),
	)

	return joined, nil
}

func (s *Service) checkCapacity(ctx context.Context, d *domain.Debate, role domain.Role) error {
	participants, err := s.participants.ListByDebate(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}

	total, onSide := 0, 0
	for _, p := range participants {
		if !p.IsActive() {
			continue
		}
		total++
		if p.Role == role {
			onSide++
		}
	}

	if total >= d.MaxParticipants {
		return domain.ErrInvalidTransition.WithMessage("debate is full (%d participants)", d.MaxParticipants)
	}
	if limit := domain.MaxPerSide(d.Format, role); limit > 0 && onSide >= limit {
		return domain.ErrInvalidTransition.WithMessage("%s side is full", role)
	}
	return nil
}
