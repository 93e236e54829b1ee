// Package definition implements the Definition repository using PostgreSQL,
// including endorsements and the supersession links between versions.
package definition

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/debate-backend/internal/domain"
)

const columns = `id, debate_id, proposer_id, term, term_normalized, definition, context, status,
       superseded_by_id, accepted_at, created_at, updated_at`

// Repo provides definition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new definition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a definition together with its references.
func (r *Repo) Create(ctx context.Context, d domain.Definition) (*domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert("definitions").
		Columns("id", "debate_id", "proposer_id", "term", "term_normalized", "definition", "context",
			"status", "created_at", "updated_at").
		Values(d.ID, d.DebateID, d.ProposerID, d.Term, d.TermNormalized, d.Text, d.Context,
			string(d.Status), d.CreatedAt, d.UpdatedAt).
		Suffix("RETURNING " + columns)

	var row definitionRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "definition", d.ID)
	}

	if err := reference.Insert(ctx, q, d.References); err != nil {
		return nil, err
	}

	created := row.toDomain()
	created.References = d.References
	return &created, nil
}

// GetByID returns a definition with its references.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a definition and locks its row until the surrounding
// transaction ends. It must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("definition %s: GetForUpdate outside of a transaction", id)
	}
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock string) (*domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns).
		From("definitions").
		Where(squirrel.Eq{"id": id})
	if lock != "" {
		query = query.Suffix(lock)
	}

	var row definitionRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "definition", id)
	}

	d := row.toDomain()
	refs, err := reference.ListByOwners(ctx, q, reference.OwnerDefinition, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	d.References = refs[id]
	return &d, nil
}

// GetPredecessor returns the definition whose superseded_by_id is id.
// It fails with domain.ErrNotFound when id heads its own chain.
func (r *Repo) GetPredecessor(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns).
		From("definitions").
		Where(squirrel.Eq{"superseded_by_id": id})

	var row definitionRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "predecessor of definition", id)
	}
	d := row.toDomain()
	return &d, nil
}

// UpdateStatus sets the status and, when non-nil, accepted_at.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DefinitionStatus, acceptedAt *time.Time) (*domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update("definitions").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columns)
	if acceptedAt != nil {
		query = query.Set("accepted_at", *acceptedAt)
	}

	var row definitionRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "definition", id)
	}
	d := row.toDomain()
	return &d, nil
}

// LinkSuccessor points originalID at successorID and moves the original to
// status. It only applies while the original has no successor yet; otherwise
// it fails with domain.ErrConflict.
func (r *Repo) LinkSuccessor(ctx context.Context, originalID, successorID uuid.UUID, status domain.DefinitionStatus) (*domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update("definitions").
		Set("superseded_by_id", successorID).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": originalID, "superseded_by_id": nil}).
		Suffix("RETURNING " + columns)

	var row definitionRow
	err := postgres.Get(ctx, q, &row, query)
	if postgres.IsNoRows(err) {
		return nil, fmt.Errorf("definition %s already superseded: %w", originalID, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "definition", originalID)
	}
	d := row.toDomain()
	return &d, nil
}

// ListByDebate returns all definitions of a debate, oldest first.
func (r *Repo) ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Definition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns).
		From("definitions").
		Where(squirrel.Eq{"debate_id": debateID}).
		OrderBy("created_at ASC", "id ASC")

	var rows []definitionRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list definitions of debate %s: %w", debateID, err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	refs, err := reference.ListByOwners(ctx, q, reference.OwnerDefinition, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Definition, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
		out[i].References = refs[row.ID]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Endorsements
// ---------------------------------------------------------------------------

// Endorse records the user's endorsement. It reports false when the user had
// already endorsed the definition.
func (r *Repo) Endorse(ctx context.Context, definitionID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert("definition_endorsements").
		Columns("definition_id", "user_id", "created_at").
		Values(definitionID, userID, time.Now().UTC()).
		Suffix("ON CONFLICT (definition_id, user_id) DO NOTHING")

	tag, err := postgres.Exec(ctx, q, query)
	if err != nil {
		return false, postgres.MapError(err, "endorsement of definition", definitionID)
	}
	return tag.RowsAffected() == 1, nil
}

// CountEndorsements returns endorsement counts of every endorsed definition of a debate.
func (r *Repo) CountEndorsements(ctx context.Context, debateID uuid.UUID) (map[uuid.UUID]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("e.definition_id", "count(*) AS count").
		From("definition_endorsements e").
		Join("definitions d ON d.id = e.definition_id").
		Where(squirrel.Eq{"d.debate_id": debateID}).
		GroupBy("e.definition_id")

	var rows []struct {
		DefinitionID uuid.UUID `db:"definition_id"`
		Count        int       `db:"count"`
	}
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("count endorsements of debate %s: %w", debateID, err)
	}

	out := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		out[row.DefinitionID] = row.Count
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type definitionRow struct {
	ID             uuid.UUID  `db:"id"`
	DebateID       uuid.UUID  `db:"debate_id"`
	ProposerID     uuid.UUID  `db:"proposer_id"`
	Term           string     `db:"term"`
	TermNormalized string     `db:"term_normalized"`
	Definition     string     `db:"definition"`
	Context        *string    `db:"context"`
	Status         string     `db:"status"`
	SupersededByID *uuid.UUID `db:"superseded_by_id"`
	AcceptedAt     *time.Time `db:"accepted_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r definitionRow) toDomain() domain.Definition {
	return domain.Definition{
		ID:             r.ID,
		DebateID:       r.DebateID,
		ProposerID:     r.ProposerID,
		Term:           r.Term,
		TermNormalized: r.TermNormalized,
		Text:           r.Definition,
		Context:        r.Context,
		Status:         domain.DefinitionStatus(r.Status),
		SupersededByID: r.SupersededByID,
		AcceptedAt:     r.AcceptedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
