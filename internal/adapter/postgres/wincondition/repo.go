// Package wincondition implements the WinCondition repository using PostgreSQL.
// debate_id is unique, so a verdict can be stored at most once per debate.
package wincondition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

const columns = `id, debate_id, type, winning_role, proposer_votes, opposer_votes, decided_at`

// Repo provides win condition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new win condition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores the verdict. A second verdict for the same debate fails with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w domain.WinCondition) (*domain.WinCondition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var role *string
	if w.WinningRole != nil {
		s := string(*w.WinningRole)
		role = &s
	}

	created, err := scanWinCondition(q.QueryRow(ctx,
		`INSERT INTO win_conditions (id, debate_id, type, winning_role, proposer_votes, opposer_votes, decided_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+columns,
		w.ID, w.DebateID, string(w.Type), role, w.ProposerVotes, w.OpposerVotes, w.DecidedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "win condition of debate", w.DebateID)
	}
	return created, nil
}

// GetByDebate returns the verdict of a debate, or domain.ErrNotFound while undecided.
func (r *Repo) GetByDebate(ctx context.Context, debateID uuid.UUID) (*domain.WinCondition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	w, err := scanWinCondition(q.QueryRow(ctx,
		`SELECT `+columns+` FROM win_conditions WHERE debate_id = $1`, debateID))
	if err != nil {
		return nil, postgres.MapError(err, "win condition of debate", debateID)
	}
	return w, nil
}

func scanWinCondition(row pgx.Row) (*domain.WinCondition, error) {
	var (
		w       domain.WinCondition
		typ     string
		role    *string
		decided time.Time
	)
	if err := row.Scan(&w.ID, &w.DebateID, &typ, &role, &w.ProposerVotes, &w.OpposerVotes, &decided); err != nil {
		return nil, err
	}
	w.Type = domain.WinConditionType(typ)
	if role != nil {
		r := domain.Role(*role)
		w.WinningRole = &r
	}
	w.DecidedAt = decided
	return &w, nil
}
