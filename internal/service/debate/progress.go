package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
)

// advance re-evaluates whether the side at the debate's cursor is complete
// and, if so, moves the cursor or completes the debate. It always writes the
// debate row, so every write under the debate lock bumps the version.
// It must run inside the transaction that holds the debate lock.
func (s *Service) advance(ctx context.Context, d *domain.Debate, now time.Time) (Progress, error) {
	cursor := d.Cursor()

	complete, err := s.sideComplete(ctx, d, cursor)
	if err != nil {
		return Progress{}, err
	}

	next := *d
	var (
		progress Progress
		events   []domain.Event
	)

	if complete {
		cur, adv := domain.NextCursor(cursor, d.TurnsPerSide)
		switch adv {
		case domain.AdvanceSideSwitched:
			progress.SideSwitched = true
			events = append(events, domain.Event{
				Type: domain.EventSideSwitched, DebateID: d.ID, OccurredAt: now,
				Side: cur.Side, TurnNumber: cur.Number,
			})
		case domain.AdvanceTurnStarted:
			progress.SideSwitched = true
			progress.TurnAdvanced = true
			events = append(events, domain.Event{
				Type: domain.EventTurnAdvanced, DebateID: d.ID, OccurredAt: now,
				Side: cur.Side, TurnNumber: cur.Number,
			})
		case domain.AdvanceCompleted:
			win, err := s.decide(ctx, d.ID, now)
			if err != nil {
				return Progress{}, err
			}
			progress.Completed = true
			progress.WinCondition = win
			progress.WinningRole = win.WinningRole
			next.Status = domain.DebateStatusCompleted
			next.CompletedAt = &now
			events = append(events, domain.Event{
				Type: domain.EventDebateCompleted, DebateID: d.ID, OccurredAt: now,
				Side: cursor.Side, TurnNumber: cursor.Number, WinningRole: win.WinningRole,
			})
		}
		next.CurrentTurnSide = cur.Side
		next.CurrentTurnNumber = cur.Number
	}

	updated, err := s.debates.UpdateState(ctx, next)
	if err != nil {
		return Progress{}, fmt.Errorf("update debate state: %w", err)
	}

	progress.Debate = updated
	progress.Events = events
	return progress, nil
}

// sideComplete reports whether every ACTIVE participant holding the cursor's
// side has submitted for the cursor's turn. A side with no ACTIVE participants
// left is complete.
func (s *Service) sideComplete(ctx context.Context, d *domain.Debate, cursor domain.TurnCursor) (bool, error) {
	active, err := s.participants.ActiveIDs(ctx, d.ID, domain.ActiveRolesForSide(d.Format, cursor.Side))
	if err != nil {
		return false, fmt.Errorf("list active participants: %w", err)
	}
	if len(active) == 0 {
		return true, nil
	}

	submitted, err := s.arguments.SubmittedParticipantIDs(ctx, d.ID, cursor.Number, active)
	if err != nil {
		return false, fmt.Errorf("list submitted participants: %w", err)
	}
	return len(submitted) >= len(active), nil
}

// decide tallies argument votes per side and records the verdict.
// A unique violation means another transaction already decided this debate.
func (s *Service) decide(ctx context.Context, debateID uuid.UUID, now time.Time) (*domain.WinCondition, error) {
	totals, err := s.totals(ctx, debateID)
	if err != nil {
		return nil, err
	}

	win, err := s.wins.Create(ctx, domain.WinCondition{
		ID:            uuid.New(),
		DebateID:      debateID,
		Type:          domain.WinConditionVoteCount,
		WinningRole:   tally.Winner(totals),
		ProposerVotes: totals.Proposer,
		OpposerVotes:  totals.Opposer,
		DecidedAt:     now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("record verdict: %w: %w", domain.ErrConflict, err)
		}
		return nil, fmt.Errorf("record verdict: %w", err)
	}

	s.log.InfoContext(ctx, "debate decided",
		slog.String("debate_id", debateID.String()),
		slog.Int("proposer_votes", totals.Proposer),
		slog.Int("opposer_votes", totals.Opposer),
		slog.Bool("tie", win.IsTie()),
	)
	return win, nil
}

func (s *Service) totals(ctx context.Context, debateID uuid.UUID) (tally.SideTotals, error) {
	args, err := s.arguments.ListByDebate(ctx, debateID)
	if err != nil {
		return tally.SideTotals{}, fmt.Errorf("list arguments: %w", err)
	}
	votes, err := s.votes.ListArgumentVotesByDebate(ctx, debateID)
	if err != nil {
		return tally.SideTotals{}, fmt.Errorf("list argument votes: %w", err)
	}
	return tally.BySide(args, tally.GroupByTarget(votes)), nil
}
