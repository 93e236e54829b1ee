package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

const (
	defaultTurnsPerSide    = 3
	defaultMaxParticipants = 10
)

// CreateDebate creates an OPEN debate and joins the caller to it.
func (s *Service) CreateDebate(ctx context.Context, input CreateDebateInput) (*domain.Debate, *domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	now := s.now()
	d := domain.Debate{
		ID:                uuid.New(),
		Title:             strings.TrimSpace(input.Title),
		Status:            domain.DebateStatusOpen,
		Format:            input.Format,
		MaxParticipants:   input.MaxParticipants,
		TurnsPerSide:      input.TurnsPerSide,
		MinReferences:     input.MinReferences,
		CurrentTurnSide:   domain.FirstCursor().Side,
		CurrentTurnNumber: domain.FirstCursor().Number,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if d.TurnsPerSide == 0 {
		d.TurnsPerSide = defaultTurnsPerSide
	}
	if d.MaxParticipants == 0 {
		d.MaxParticipants = defaultMaxParticipants
	}
	if d.Format == domain.DebateFormatOneVsOne {
		d.MaxParticipants = 2
	}

	role := input.CreatorRole
	if role == "" {
		role = domain.RoleProposer
	}

	var (
		created *domain.Debate
		creator *domain.Participant
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.debates.Create(txCtx, d)
		if err != nil {
			return fmt.Errorf("create debate: %w", err)
		}

		creator, err = s.participants.Create(txCtx, domain.Participant{
			ID:        uuid.New(),
			DebateID:  created.ID,
			UserID:    userID,
			Role:      role,
			Status:    domain.ParticipantStatusActive,
			JoinedAt:  now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("join creator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "debate created",
		slog.String("user_id", userID.String()),
		slog.String("debate_id", created.ID.String()),
		slog.String("format", created.Format.String()),
	)

	return created, creator, nil
}
