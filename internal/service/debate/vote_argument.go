package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// VoteOnArgument records or replaces the caller's vote on an argument and
// returns the argument's net tally. Votes are frozen once the debate ends,
// so the verdict inputs cannot change after it is recorded.
func (s *Service) VoteOnArgument(ctx context.Context, input VoteInput) (*VoteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *VoteResult
	err := s.runInTx(ctx, "vote_argument", func(txCtx context.Context) error {
		arg, err := s.arguments.GetByID(txCtx, input.ArgumentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrArgumentNotFound.WithCause(err)
			}
			return fmt.Errorf("get argument: %w", err)
		}

		// Shares the debate lock with the verdict so no vote lands after it.
		d, err := s.lockDebate(txCtx, arg.DebateID)
		if err != nil {
			return err
		}
		if d.Status.IsTerminal() {
			return domain.ErrInvalidTransition.WithMessage("voting is closed, debate is %s", d.Status)
		}

		vote, err := s.votes.UpsertArgumentVote(txCtx, arg.ID, userID, input.Support)
		if err != nil {
			return fmt.Errorf("upsert vote: %w", err)
		}

		votes, err := s.votes.ListArgumentVotes(txCtx, arg.ID)
		if err != nil {
			return fmt.Errorf("list votes: %w", err)
		}

		result = &VoteResult{Vote: vote, NetVotes: tally.NetVotes(votes)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "argument voted",
		slog.String("user_id", userID.String()),
		slog.String("argument_id", input.ArgumentID.String()),
		slog.Bool("support", input.Support),
	)

	return result, nil
}
