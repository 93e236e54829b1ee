package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/content"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// SubmitArguments records the caller's argument set for the current turn and,
// if that completes the side, advances the turn or completes the debate.
//
// State checks, validation, the write and side completion all run in one
// transaction holding the debate row lock. A write conflict re-runs the whole
// transaction against fresh state.
func (s *Service) SubmitArguments(ctx context.Context, input SubmitArgumentsInput) (*SubmissionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validateShape(s.cfg.MaxArgumentsPerSubmission); err != nil {
		return nil, err
	}

	var result *SubmissionResult
	err := s.runInTx(ctx, "submit_arguments", func(txCtx context.Context) error {
		var txErr error
		result, txErr = s.submit(txCtx, userID, input)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, result.Events)

	s.log.InfoContext(ctx, "arguments submitted",
		slog.String("user_id", userID.String()),
		slog.String("debate_id", input.DebateID.String()),
		slog.Int("count", len(result.Arguments)),
		slog.Bool("side_switched", result.SideSwitched),
		slog.Bool("turn_advanced", result.TurnAdvanced),
		slog.Bool("completed", result.Completed),
	)

	return result, nil
}

func (s *Service) submit(ctx context.Context, userID uuid.UUID, input SubmitArgumentsInput) (*SubmissionResult, error) {
	d, err := s.lockDebate(ctx, input.DebateID)
	if err != nil {
		return nil, err
	}
	if !d.IsInProgress() {
		return nil, domain.ErrDebateNotInProgress.WithMessage("debate is %s", d.Status)
	}

	participant, err := s.participants.GetActiveByUser(ctx, d.ID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotParticipant
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	if participant.Role != d.CurrentTurnSide {
		return nil, domain.ErrNotYourTurn.WithMessage("it is %s's turn, you are %s", d.CurrentTurnSide, participant.Role)
	}

	submitted, err := s.arguments.HasSubmitted(ctx, participant.ID, d.CurrentTurnNumber)
	if err != nil {
		return nil, fmt.Errorf("check submission: %w", err)
	}
	if submitted {
		return nil, domain.ErrAlreadySubmitted.WithMessage("already submitted for turn %d", d.CurrentTurnNumber)
	}

	for i, p := range input.Arguments {
		if err := s.cfg.Content.ValidateArgument(p.Content, p.References, d.MinReferences); err != nil {
			return nil, domain.ErrInvalidArgument.WithMessage("argument %d", i).WithCause(err)
		}
	}

	responseTo, err := s.resolveResponses(ctx, d.ID, input.Arguments)
	if err != nil {
		return nil, err
	}

	now := s.now()
	args := make([]domain.Argument, len(input.Arguments))
	for i, p := range input.Arguments {
		id := uuid.New()
		var respID *uuid.UUID
		if p.ResponseToID != nil && responseTo[*p.ResponseToID] {
			v := *p.ResponseToID
			respID = &v
		}
		args[i] = domain.Argument{
			ID:            id,
			DebateID:      d.ID,
			ParticipantID: participant.ID,
			Role:          participant.Role,
			TurnNumber:    d.CurrentTurnNumber,
			Content:       strings.TrimSpace(p.Content),
			ResponseToID:  respID,
			CreatedAt:     now,
			References:    domain.AttachToArgument(content.NormalizeReferences(p.References), id, now),
		}
	}

	created, err := s.arguments.CreateSubmission(ctx, domain.ArgumentSubmission{
		DebateID:      d.ID,
		ParticipantID: participant.ID,
		TurnNumber:    d.CurrentTurnNumber,
		SubmittedAt:   now,
		Arguments:     args,
	})
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	progress, err := s.advance(ctx, d, now)
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{Arguments: created, Progress: progress}, nil
}

// resolveResponses returns the set of referenced argument ids that belong to
// the debate. Unknown or foreign ids are dropped, not rejected.
func (s *Service) resolveResponses(ctx context.Context, debateID uuid.UUID, payloads []ArgumentPayload) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	for _, p := range payloads {
		if p.ResponseToID != nil {
			ids = append(ids, *p.ResponseToID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	valid, err := s.arguments.FilterInDebate(ctx, debateID, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve responses: %w", err)
	}

	set := make(map[uuid.UUID]bool, len(valid))
	for _, id := range valid {
		set[id] = true
	}
	return set, nil
}
