package domain

import (
	"time"

	"github.com/google/uuid"
)

// Debate is the aggregate root of a turn-based argument. Its turn cursor
// (CurrentTurnSide, CurrentTurnNumber) is only meaningful while IN_PROGRESS.
type Debate struct {
	ID                uuid.UUID
	Title             string
	Status            DebateStatus
	Format            DebateFormat
	MaxParticipants   int
	TurnsPerSide      int
	MinReferences     int
	CurrentTurnSide   Role
	CurrentTurnNumber int
	Version           int64
	StartedAt         *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsInProgress returns true if arguments may currently be submitted.
func (d *Debate) IsInProgress() bool {
	return d.Status == DebateStatusInProgress
}

// Cursor returns the current turn position.
func (d *Debate) Cursor() TurnCursor {
	return TurnCursor{Side: d.CurrentTurnSide, Number: d.CurrentTurnNumber}
}

// Participant links a user to a debate with a role.
type Participant struct {
	ID        uuid.UUID
	DebateID  uuid.UUID
	UserID    uuid.UUID
	Role      Role
	Status    ParticipantStatus
	JoinedAt  time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the participant still counts toward side completion.
func (p *Participant) IsActive() bool {
	return p.Status == ParticipantStatusActive
}

// Argument is one immutable submission row for a turn.
// Role is the author's role, filled in by reads that join participants.
type Argument struct {
	ID            uuid.UUID
	DebateID      uuid.UUID
	ParticipantID uuid.UUID
	Role          Role
	TurnNumber    int
	Content       string
	ResponseToID  *uuid.UUID
	CreatedAt     time.Time

	References []Reference
}

// Reference is supporting source metadata attached to an argument or a definition.
type Reference struct {
	ID           uuid.UUID
	ArgumentID   *uuid.UUID
	DefinitionID *uuid.UUID
	Type         ReferenceType
	Title        string
	URL          *string
	Author       *string
	Notes        *string
	CreatedAt    time.Time
}

// Vote is a user's support or opposition for an argument or a definition.
// TargetID is the argument or definition id, depending on the table it lives in.
type Vote struct {
	TargetID  uuid.UUID
	UserID    uuid.UUID
	Support   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WinCondition is the verdict of a completed debate. A nil WinningRole is a tie.
type WinCondition struct {
	ID            uuid.UUID
	DebateID      uuid.UUID
	Type          WinConditionType
	WinningRole   *Role
	ProposerVotes int
	OpposerVotes  int
	DecidedAt     time.Time
}

// IsTie returns true if neither side won.
func (w *WinCondition) IsTie() bool {
	return w.WinningRole == nil
}

// ArgumentSubmission is one participant's argument set for one turn.
type ArgumentSubmission struct {
	DebateID      uuid.UUID
	ParticipantID uuid.UUID
	TurnNumber    int
	SubmittedAt   time.Time
	Arguments     []Argument
}

// AttachToArgument returns copies of refs owned by argumentID, each with a fresh id.
func AttachToArgument(refs []Reference, argumentID uuid.UUID, now time.Time) []Reference {
	return attach(refs, &argumentID, nil, now)
}

// AttachToDefinition returns copies of refs owned by definitionID, each with a fresh id.
func AttachToDefinition(refs []Reference, definitionID uuid.UUID, now time.Time) []Reference {
	return attach(refs, nil, &definitionID, now)
}

func attach(refs []Reference, argumentID, definitionID *uuid.UUID, now time.Time) []Reference {
	if len(refs) == 0 {
		return nil
	}
	out := make([]Reference, len(refs))
	for i, ref := range refs {
		ref.ID = uuid.New()
		ref.ArgumentID = argumentID
		ref.DefinitionID = definitionID
		ref.CreatedAt = now
		out[i] = ref
	}
	return out
}
