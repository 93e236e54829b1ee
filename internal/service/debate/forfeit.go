package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// ForfeitParticipant marks a participant FORFEITED, typically when an external
// timer decides their time ran out. While the debate is IN_PROGRESS the
// current side is re-evaluated, since the forfeit may leave it complete.
// Forfeiting an already forfeited participant changes nothing.
func (s *Service) ForfeitParticipant(ctx context.Context, input ForfeitInput) (*ForfeitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *ForfeitResult
	err := s.runInTx(ctx, "forfeit_participant", func(txCtx context.Context) error {
		d, err := s.lockDebate(txCtx, input.DebateID)
		if err != nil {
			return err
		}

		p, err := s.participants.GetByID(txCtx, input.ParticipantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrParticipantNotFound.WithCause(err)
			}
			return fmt.Errorf("get participant: %w", err)
		}
		if p.DebateID != d.ID {
			return domain.ErrParticipantNotFound.WithMessage("participant %s is not in debate %s", p.ID, d.ID)
		}

		if p.Status == domain.ParticipantStatusForfeited {
			result = &ForfeitResult{Participant: p, Progress: Progress{Debate: d}}
			return nil
		}
		if d.Status.IsTerminal() {
			return domain.ErrInvalidTransition.WithMessage("debate is %s", d.Status)
		}

		forfeited, err := s.participants.UpdateStatus(txCtx, p.ID, domain.ParticipantStatusForfeited)
		if err != nil {
			return fmt.Errorf("forfeit participant: %w", err)
		}

		now := s.now()
		var progress Progress
		if d.IsInProgress() {
			progress, err = s.advance(txCtx, d, now)
			if err != nil {
				return err
			}
		} else {
			updated, err := s.debates.UpdateState(txCtx, *d)
			if err != nil {
				return fmt.Errorf("update debate state: %w", err)
			}
			progress.Debate = updated
		}

		pid := forfeited.ID
		progress.Events = append([]domain.Event{{
			Type: domain.EventParticipantForfeited, DebateID: d.ID, OccurredAt: now,
			Side: forfeited.Role, TurnNumber: d.CurrentTurnNumber, ParticipantID: &pid,
		}}, progress.Events...)

		result = &ForfeitResult{Participant: forfeited, Progress: progress}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, result.Events)

	s.log.InfoContext(ctx, "participant forfeited",
		slog.String("debate_id", input.DebateID.String()),
		slog.String("participant_id", input.ParticipantID.String()),
		slog.Bool("completed", result.Completed),
		slog.String("caller", ctxutil.CallerFromCtx(ctx)),
	)

	return result, nil
}
