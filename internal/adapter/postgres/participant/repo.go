// Package participant implements the Participant repository using PostgreSQL.
package participant

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

const columns = `id, debate_id, user_id, role, status, joined_at, updated_at`

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new participant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a participant. A second row for the same (debate, user)
// fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Participant) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert("participants").
		Columns("id", "debate_id", "user_id", "role", "status", "joined_at", "updated_at").
		Values(p.ID, p.DebateID, p.UserID, string(p.Role), string(p.Status), p.JoinedAt, p.UpdatedAt).
		Suffix("RETURNING " + columns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert participant: %w", err)
	}

	created, err := scanParticipant(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", p.ID)
	}
	return created, nil
}

// GetByID returns a participant by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanParticipant(q.QueryRow(ctx,
		`SELECT `+columns+` FROM participants WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return p, nil
}

// GetActiveByUser returns the ACTIVE participant of userID in a debate.
func (r *Repo) GetActiveByUser(ctx context.Context, debateID, userID uuid.UUID) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanParticipant(q.QueryRow(ctx,
		`SELECT `+columns+` FROM participants WHERE debate_id = $1 AND user_id = $2 AND status = 'ACTIVE'`,
		debateID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "participant of user", userID)
	}
	return p, nil
}

// ListByDebate returns all participants of a debate ordered by join time.
func (r *Repo) ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns).
		From("participants").
		Where(squirrel.Eq{"debate_id": debateID}).
		OrderBy("joined_at ASC", "id ASC")

	var rows []participantRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list participants of debate %s: %w", debateID, err)
	}

	out := make([]domain.Participant, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ActiveIDs returns the ids of ACTIVE participants holding any of roles.
func (r *Repo) ActiveIDs(ctx context.Context, debateID uuid.UUID, roles []domain.Role) ([]uuid.UUID, error) {
	if len(roles) == 0 {
		return []uuid.UUID{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("id").
		From("participants").
		Where(squirrel.Eq{
			"debate_id": debateID,
			"status":    string(domain.ParticipantStatusActive),
			"role":      roleStrings(roles),
		}).
		OrderBy("id")

	var ids []uuid.UUID
	if err := postgres.Select(ctx, q, &ids, query); err != nil {
		return nil, fmt.Errorf("active participants of debate %s: %w", debateID, err)
	}
	return ids, nil
}

// CountActiveByRole counts ACTIVE participants with the given role.
func (r *Repo) CountActiveByRole(ctx context.Context, debateID uuid.UUID, role domain.Role) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM participants WHERE debate_id = $1 AND role = $2 AND status = 'ACTIVE'`,
		debateID, string(role),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active %s of debate %s: %w", role, debateID, err)
	}
	return count, nil
}

// UpdateStatus sets the participant status and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanParticipant(q.QueryRow(ctx,
		`UPDATE participants SET status = $2, updated_at = $3 WHERE id = $1 RETURNING `+columns,
		id, string(status), time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type participantRow struct {
	ID        uuid.UUID `db:"id"`
	DebateID  uuid.UUID `db:"debate_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	JoinedAt  time.Time `db:"joined_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r participantRow) toDomain() domain.Participant {
	return domain.Participant{
		ID:        r.ID,
		DebateID:  r.DebateID,
		UserID:    r.UserID,
		Role:      domain.Role(r.Role),
		Status:    domain.ParticipantStatus(r.Status),
		JoinedAt:  r.JoinedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var r participantRow
	if err := row.Scan(&r.ID, &r.DebateID, &r.UserID, &r.Role, &r.Status, &r.JoinedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	p := r.toDomain()
	return &p, nil
}

func roleStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
