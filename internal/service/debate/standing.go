package debate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
)

// GetStanding returns the debate, its participants, the vote totals per side
// and the verdict once decided.
func (s *Service) GetStanding(ctx context.Context, debateID uuid.UUID) (*Standing, error) {
	if debateID == uuid.Nil {
		return nil, domain.NewValidationError("debate_id", "required")
	}

	d, err := s.debates.GetByID(ctx, debateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDebateNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("get debate: %w", err)
	}

	participants, err := s.participants.ListByDebate(ctx, debateID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	totals, err := s.totals(ctx, debateID)
	if err != nil {
		return nil, err
	}

	standing := &Standing{
		Debate:       d,
		Participants: participants,
		Totals:       totals,
		Leader:       tally.Winner(totals),
	}

	if d.Status == domain.DebateStatusCompleted {
		win, err := s.wins.GetByDebate(ctx, debateID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get win condition: %w", err)
		}
		standing.WinCondition = win
	}

	return standing, nil
}
