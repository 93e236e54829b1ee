// Package argument implements the Argument repository using PostgreSQL.
// Arguments are append-only: a submission row in argument_submissions guards
// one argument set per (participant, turn), and the arguments hang off it.
package argument

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

const selectWithRole = `a.id, a.debate_id, a.participant_id, p.role, a.turn_number, a.content, a.response_to_id, a.created_at`

// Repo provides argument persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new argument repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// HasSubmitted reports whether the participant already submitted for turn.
func (r *Repo) HasSubmitted(ctx context.Context, participantID uuid.UUID, turn int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM argument_submissions WHERE participant_id = $1 AND turn_number = $2)`,
		participantID, turn,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check submission of %s for turn %d: %w", participantID, turn, err)
	}
	return exists, nil
}

// CreateSubmission stores the submission guard row, then every argument and
// its references. A second submission for the same (participant, turn)
// fails with domain.ErrAlreadySubmitted. Call it inside RunInTx so a failure
// leaves nothing behind.
func (r *Repo) CreateSubmission(ctx context.Context, s domain.ArgumentSubmission) ([]domain.Argument, error) {
	if len(s.Arguments) == 0 {
		return nil, fmt.Errorf("create submission: %w", domain.ErrInvalidArgument.WithMessage("no arguments"))
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	guard := postgres.Builder().
		Insert("argument_submissions").
		Columns("participant_id", "turn_number", "debate_id", "submitted_at").
		Values(s.ParticipantID, s.TurnNumber, s.DebateID, s.SubmittedAt)

	if _, err := postgres.Exec(ctx, q, guard); err != nil {
		mapped := postgres.MapError(err, "submission of participant", s.ParticipantID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadySubmitted.WithCause(mapped)
		}
		return nil, mapped
	}

	insert := postgres.Builder().
		Insert("arguments").
		Columns("id", "debate_id", "participant_id", "turn_number", "content", "response_to_id", "created_at")

	var refs []domain.Reference
	for _, a := range s.Arguments {
		insert = insert.Values(a.ID, s.DebateID, s.ParticipantID, s.TurnNumber, a.Content, a.ResponseToID, a.CreatedAt)
		refs = append(refs, a.References...)
	}

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return nil, postgres.MapError(err, "arguments of participant", s.ParticipantID)
	}

	if err := reference.Insert(ctx, q, refs); err != nil {
		return nil, err
	}

	return s.Arguments, nil
}

// FilterInDebate returns the subset of ids that name arguments of debateID.
func (r *Repo) FilterInDebate(ctx context.Context, debateID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("id").
		From("arguments").
		Where(squirrel.Eq{"debate_id": debateID, "id": ids})

	var found []uuid.UUID
	if err := postgres.Select(ctx, q, &found, query); err != nil {
		return nil, fmt.Errorf("filter arguments of debate %s: %w", debateID, err)
	}
	return found, nil
}

// SubmittedParticipantIDs returns, among participantIDs, the distinct ones
// that have at least one argument for turn.
func (r *Repo) SubmittedParticipantIDs(ctx context.Context, debateID uuid.UUID, turn int, participantIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(participantIDs) == 0 {
		return []uuid.UUID{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("DISTINCT participant_id").
		From("arguments").
		Where(squirrel.Eq{
			"debate_id":      debateID,
			"turn_number":    turn,
			"participant_id": participantIDs,
		}).
		OrderBy("participant_id")

	var ids []uuid.UUID
	if err := postgres.Select(ctx, q, &ids, query); err != nil {
		return nil, fmt.Errorf("submitted participants of debate %s turn %d: %w", debateID, turn, err)
	}
	return ids, nil
}

// GetByID returns an argument with its author's role and references.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(selectWithRole).
		From("arguments a").
		Join("participants p ON p.id = a.participant_id").
		Where(squirrel.Eq{"a.id": id})

	var row argumentRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "argument", id)
	}

	a := row.toDomain()
	refs, err := reference.ListByOwners(ctx, q, reference.OwnerArgument, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	a.References = refs[id]
	return &a, nil
}

// ListByDebate returns every argument of a debate in submission order,
// with author roles and references.
func (r *Repo) ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Argument, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(selectWithRole).
		From("arguments a").
		Join("participants p ON p.id = a.participant_id").
		Where(squirrel.Eq{"a.debate_id": debateID}).
		OrderBy("a.turn_number ASC", "a.created_at ASC", "a.id ASC")

	var rows []argumentRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list arguments of debate %s: %w", debateID, err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	refs, err := reference.ListByOwners(ctx, q, reference.OwnerArgument, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Argument, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
		out[i].References = refs[row.ID]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type argumentRow struct {
	ID            uuid.UUID  `db:"id"`
	DebateID      uuid.UUID  `db:"debate_id"`
	ParticipantID uuid.UUID  `db:"participant_id"`
	Role          string     `db:"role"`
	TurnNumber    int        `db:"turn_number"`
	Content       string     `db:"content"`
	ResponseToID  *uuid.UUID `db:"response_to_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r argumentRow) toDomain() domain.Argument {
	return domain.Argument{
		ID:            r.ID,
		DebateID:      r.DebateID,
		ParticipantID: r.ParticipantID,
		Role:          domain.Role(r.Role),
		TurnNumber:    r.TurnNumber,
		Content:       r.Content,
		ResponseToID:  r.ResponseToID,
		CreatedAt:     r.CreatedAt,
	}
}
