package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// DebateOpts overrides the defaults used by SeedDebate. Zero values keep the default.
type DebateOpts struct {
	Status        domain.DebateStatus
	Format        domain.DebateFormat
	TurnsPerSide  int
	MinReferences int
	Cursor        *domain.TurnCursor
}

// SeedDebate creates a debate. Defaults: IN_PROGRESS, ONE_VS_ONE, 3 turns per side,
// no reference minimum, cursor at (PROPOSER, 1).
func SeedDebate(t *testing.T, pool *pgxpool.Pool, opts DebateOpts) domain.Debate {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Debate{
		ID:                uuid.New(),
		Title:             "Debate " + uuid.New().String()[:8],
		Status:            domain.DebateStatusInProgress,
		Format:            domain.DebateFormatOneVsOne,
		MaxParticipants:   2,
		TurnsPerSide:      3,
		CurrentTurnSide:   domain.RoleProposer,
		CurrentTurnNumber: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if opts.Status != "" {
		d.Status = opts.Status
	}
	if opts.Format != "" {
		d.Format = opts.Format
		if d.Format != domain.DebateFormatOneVsOne {
			d.MaxParticipants = 10
		}
	}
	if opts.TurnsPerSide > 0 {
		d.TurnsPerSide = opts.TurnsPerSide
	}
	d.MinReferences = opts.MinReferences
	if opts.Cursor != nil {
		d.CurrentTurnSide = opts.Cursor.Side
		d.CurrentTurnNumber = opts.Cursor.Number
	}
	if d.Status == domain.DebateStatusInProgress {
		d.StartedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO debates (id, title, status, format, max_participants, turns_per_side, min_references,
		                      current_turn_side, current_turn_number, started_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		d.ID, d.Title, string(d.Status), string(d.Format), d.MaxParticipants, d.TurnsPerSide, d.MinReferences,
		string(d.CurrentTurnSide), d.CurrentTurnNumber, d.StartedAt, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDebate: %v", err)
	}

	return d
}

// SeedParticipant adds an ACTIVE participant with a fresh user id.
func SeedParticipant(t *testing.T, pool *pgxpool.Pool, debateID uuid.UUID, role domain.Role) domain.Participant {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Participant{
		ID:        uuid.New(),
		DebateID:  debateID,
		UserID:    uuid.New(),
		Role:      role,
		Status:    domain.ParticipantStatusActive,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO participants (id, debate_id, user_id, role, status, joined_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.DebateID, p.UserID, string(p.Role), string(p.Status), p.JoinedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipant: %v", err)
	}

	return p
}

// SeedArgument records a submission for (participant, turn) and one argument in it.
func SeedArgument(t *testing.T, pool *pgxpool.Pool, p domain.Participant, turn int) domain.Argument {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Argument{
		ID:            uuid.New(),
		DebateID:      p.DebateID,
		ParticipantID: p.ID,
		Role:          p.Role,
		TurnNumber:    turn,
		Content:       "Seeded argument " + uuid.New().String()[:8],
		CreatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO argument_submissions (participant_id, turn_number, debate_id, submitted_at)
		 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		a.ParticipantID, a.TurnNumber, a.DebateID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArgument submission: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO arguments (id, debate_id, participant_id, turn_number, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.DebateID, a.ParticipantID, a.TurnNumber, a.Content, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArgument: %v", err)
	}

	return a
}

// SeedDefinition creates a PROPOSED definition for term.
func SeedDefinition(t *testing.T, pool *pgxpool.Pool, debateID, proposerID uuid.UUID, term string) domain.Definition {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Definition{
		ID:             uuid.New(),
		DebateID:       debateID,
		ProposerID:     proposerID,
		Term:           term,
		TermNormalized: domain.NormalizeTerm(term),
		Text:           "Meaning of " + term,
		Status:         domain.DefinitionStatusProposed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO definitions (id, debate_id, proposer_id, term, term_normalized, definition, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.DebateID, d.ProposerID, d.Term, d.TermNormalized, d.Text, string(d.Status), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDefinition: %v", err)
	}

	return d
}

// SeedArgumentVote casts a vote on an argument.
func SeedArgumentVote(t *testing.T, pool *pgxpool.Pool, argumentID uuid.UUID, support bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO argument_votes (argument_id, user_id, support) VALUES ($1, $2, $3)`,
		argumentID, uuid.New(), support,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArgumentVote: %v", err)
	}
}
