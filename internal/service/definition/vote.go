package definition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// Vote records or replaces the caller's vote on a definition. It never
// changes the definition's status.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*VoteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	def, err := s.getDefinition(ctx, input.DefinitionID)
	if err != nil {
		return nil, err
	}

	vote, err := s.votes.UpsertDefinitionVote(ctx, def.ID, userID, input.Support)
	if err != nil {
		return nil, fmt.Errorf("upsert vote: %w", err)
	}

	votes, err := s.votes.ListDefinitionVotes(ctx, def.ID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	s.log.InfoContext(ctx, "definition voted",
		slog.String("user_id", userID.String()),
		slog.String("definition_id", def.ID.String()),
		slog.Bool("support", input.Support),
	)

	return &VoteResult{Definition: def, Vote: vote, NetVotes: tally.NetVotes(votes)}, nil
}
