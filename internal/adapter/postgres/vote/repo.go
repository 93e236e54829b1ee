// Package vote implements upsertable votes on arguments and definitions.
// Both tables share one shape, keyed by (target, user).
package vote

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

// target describes one vote table.
type target struct {
	table  string
	column string
	parent string // table of the voted item, joined to filter by debate
	entity string
}

var (
	argumentTarget   = target{table: "argument_votes", column: "argument_id", parent: "arguments", entity: "argument vote"}
	definitionTarget = target{table: "definition_votes", column: "definition_id", parent: "definitions", entity: "definition vote"}
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// UpsertArgumentVote records the user's vote on an argument, replacing any earlier one.
func (r *Repo) UpsertArgumentVote(ctx context.Context, argumentID, userID uuid.UUID, support bool) (domain.Vote, error) {
	return r.upsert(ctx, argumentTarget, argumentID, userID, support)
}

// UpsertDefinitionVote records the user's vote on a definition, replacing any earlier one.
func (r *Repo) UpsertDefinitionVote(ctx context.Context, definitionID, userID uuid.UUID, support bool) (domain.Vote, error) {
	return r.upsert(ctx, definitionTarget, definitionID, userID, support)
}

// ListArgumentVotes returns the votes cast on one argument.
func (r *Repo) ListArgumentVotes(ctx context.Context, argumentID uuid.UUID) ([]domain.Vote, error) {
	return r.listByTarget(ctx, argumentTarget, argumentID)
}

// ListDefinitionVotes returns the votes cast on one definition.
func (r *Repo) ListDefinitionVotes(ctx context.Context, definitionID uuid.UUID) ([]domain.Vote, error) {
	return r.listByTarget(ctx, definitionTarget, definitionID)
}

// ListArgumentVotesByDebate returns every vote on every argument of a debate.
func (r *Repo) ListArgumentVotesByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error) {
	return r.listByDebate(ctx, argumentTarget, debateID)
}

// ListDefinitionVotesByDebate returns every vote on every definition of a debate.
func (r *Repo) ListDefinitionVotesByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error) {
	return r.listByDebate(ctx, definitionTarget, debateID)
}

func (r *Repo) upsert(ctx context.Context, t target, targetID, userID uuid.UUID, support bool) (domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC()

	query := postgres.Builder().
		Insert(t.table).
		Columns(t.column, "user_id", "support", "created_at", "updated_at").
		Values(targetID, userID, support, now, now).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s, user_id) DO UPDATE SET support = EXCLUDED.support, updated_at = EXCLUDED.updated_at "+
				"RETURNING %s AS target_id, user_id, support, created_at, updated_at", t.column, t.column))

	var row voteRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return domain.Vote{}, postgres.MapError(err, t.entity, targetID)
	}
	return row.toDomain(), nil
}

func (r *Repo) listByTarget(ctx context.Context, t target, targetID uuid.UUID) ([]domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(t.column+" AS target_id", "user_id", "support", "created_at", "updated_at").
		From(t.table).
		Where(squirrel.Eq{t.column: targetID}).
		OrderBy("created_at ASC", "user_id ASC")

	return selectVotes(ctx, q, query, t.entity)
}

func (r *Repo) listByDebate(ctx context.Context, t target, debateID uuid.UUID) ([]domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("v."+t.column+" AS target_id", "v.user_id", "v.support", "v.created_at", "v.updated_at").
		From(fmt.Sprintf("%s v", t.table)).
		Join(fmt.Sprintf("%s x ON x.id = v.%s", t.parent, t.column)).
		Where(squirrel.Eq{"x.debate_id": debateID}).
		OrderBy("v.created_at ASC", "v.user_id ASC")

	return selectVotes(ctx, q, query, t.entity)
}

func selectVotes(ctx context.Context, q postgres.Querier, query squirrel.Sqlizer, entity string) ([]domain.Vote, error) {
	var rows []voteRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list %ss: %w", entity, err)
	}
	out := make([]domain.Vote, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type voteRow struct {
	TargetID  uuid.UUID `db:"target_id"`
	UserID    uuid.UUID `db:"user_id"`
	Support   bool      `db:"support"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r voteRow) toDomain() domain.Vote {
	return domain.Vote{
		TargetID:  r.TargetID,
		UserID:    r.UserID,
		Support:   r.Support,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
