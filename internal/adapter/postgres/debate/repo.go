// Package debate implements the Debate repository using PostgreSQL.
// Every state write bumps the version column, which the turn engine relies on
// to make concurrent submissions on the same debate conflict.
package debate

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

const columns = `id, title, status, format, max_participants, turns_per_side, min_references,
       current_turn_side, current_turn_number, version, started_at, completed_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + columns + ` FROM debates WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// Repo provides debate persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new debate repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a debate and returns it as stored.
func (r *Repo) Create(ctx context.Context, d domain.Debate) (*domain.Debate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert("debates").
		Columns("id", "title", "status", "format", "max_participants", "turns_per_side", "min_references",
			"current_turn_side", "current_turn_number", "created_at", "updated_at").
		Values(d.ID, d.Title, string(d.Status), string(d.Format), d.MaxParticipants, d.TurnsPerSide, d.MinReferences,
			string(d.CurrentTurnSide), d.CurrentTurnNumber, d.CreatedAt, d.UpdatedAt).
		Suffix("RETURNING " + columns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert debate: %w", err)
	}

	created, err := scanDebate(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "debate", d.ID)
	}
	return created, nil
}

// GetByID returns a debate without locking it.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDebate(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "debate", id)
	}
	return d, nil
}

// GetForUpdate returns a debate and holds a row lock on it until the
// surrounding transaction ends. It must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("debate %s: GetForUpdate outside of a transaction", id)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDebate(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "debate", id)
	}
	return d, nil
}

// UpdateState writes status, cursor and lifecycle timestamps of d. The write
// only applies if the stored version still equals d.Version; otherwise it fails
// with domain.ErrConflict. The returned debate carries the bumped version.
func (r *Repo) UpdateState(ctx context.Context, d domain.Debate) (*domain.Debate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update("debates").
		Set("status", string(d.Status)).
		Set("current_turn_side", string(d.CurrentTurnSide)).
		Set("current_turn_number", d.CurrentTurnNumber).
		Set("started_at", d.StartedAt).
		Set("completed_at", d.CompletedAt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": d.ID, "version": d.Version}).
		Suffix("RETURNING " + columns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update debate: %w", err)
	}

	updated, err := scanDebate(q.QueryRow(ctx, sql, args...))
	if postgres.IsNoRows(err) {
		return nil, fmt.Errorf("debate %s version %d: %w", d.ID, d.Version, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "debate", d.ID)
	}
	return updated, nil
}

// ListInProgress returns debates that are currently running, oldest first.
func (r *Repo) ListInProgress(ctx context.Context, limit int) ([]domain.Debate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns).
		From("debates").
		Where(squirrel.Eq{"status": string(domain.DebateStatusInProgress)}).
		OrderBy("started_at ASC").
		Limit(uint64(limit))

	var rows []debateRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list in-progress debates: %w", err)
	}

	out := make([]domain.Debate, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type debateRow struct {
	ID                uuid.UUID  `db:"id"`
	Title             string     `db:"title"`
	Status            string     `db:"status"`
	Format            string     `db:"format"`
	MaxParticipants   int        `db:"max_participants"`
	TurnsPerSide      int        `db:"turns_per_side"`
	MinReferences     int        `db:"min_references"`
	CurrentTurnSide   string     `db:"current_turn_side"`
	CurrentTurnNumber int        `db:"current_turn_number"`
	Version           int64      `db:"version"`
	StartedAt         *time.Time `db:"started_at"`
	CompletedAt       *time.Time `db:"completed_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r debateRow) toDomain() domain.Debate {
	return domain.Debate{
		ID:                r.ID,
		Title:             r.Title,
		Status:            domain.DebateStatus(r.Status),
		Format:            domain.DebateFormat(r.Format),
		MaxParticipants:   r.MaxParticipants,
		TurnsPerSide:      r.TurnsPerSide,
		MinReferences:     r.MinReferences,
		CurrentTurnSide:   domain.Role(r.CurrentTurnSide),
		CurrentTurnNumber: r.CurrentTurnNumber,
		Version:           r.Version,
		StartedAt:         r.StartedAt,
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func scanDebate(row pgx.Row) (*domain.Debate, error) {
	var r debateRow
	err := row.Scan(
		&r.ID, &r.Title, &r.Status, &r.Format, &r.MaxParticipants, &r.TurnsPerSide, &r.MinReferences,
		&r.CurrentTurnSide, &r.CurrentTurnNumber, &r.Version, &r.StartedAt, &r.CompletedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := r.toDomain()
	return &d, nil
}
