package definition

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
)

// GetChain returns every version of the definition's chain, oldest first.
func (s *Service) GetChain(ctx context.Context, definitionID uuid.UUID) ([]domain.Definition, error) {
	if definitionID == uuid.Nil {
		return nil, domain.NewValidationError("definition_id", "required")
	}

	def, err := s.getDefinition(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	defs, err := s.definitions.ListByDebate(ctx, def.DebateID)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}

	arena, err := domain.NewDefinitionArena(defs)
	if err != nil {
		return nil, err
	}
	return arena.Chain(definitionID)
}

// ListDefinitions returns a debate's definitions with their net vote tally
// and endorsement count, oldest first.
func (s *Service) ListDefinitions(ctx context.Context, debateID uuid.UUID) ([]domain.DefinitionSummary, error) {
	if debateID == uuid.Nil {
		return nil, domain.NewValidationError("debate_id", "required")
	}

	if _, err := s.debates.GetByID(ctx, debateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDebateNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("get debate: %w", err)
	}

	defs, err := s.definitions.ListByDebate(ctx, debateID)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}

	votes, err := s.votes.ListDefinitionVotesByDebate(ctx, debateID)
	if err != nil {
		return nil, fmt.Errorf("list definition votes: %w", err)
	}
	byDefinition := tally.GroupByTarget(votes)

	endorsements, err := s.definitions.CountEndorsements(ctx, debateID)
	if err != nil {
		return nil, fmt.Errorf("count endorsements: %w", err)
	}

	out := make([]domain.DefinitionSummary, len(defs))
	for i, d := range defs {
		out[i] = domain.DefinitionSummary{
			Definition:   d,
			NetVotes:     tally.NetVotes(byDefinition[d.ID]),
			Endorsements: endorsements[d.ID],
		}
	}
	return out, nil
}
