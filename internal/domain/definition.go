package domain

import (
	"time"

	"github.com/google/uuid"
)

// Definition is one version of a shared meaning for a contested term.
// SupersededByID forms a forward chain from an old version to its replacement.
type Definition struct {
	ID             uuid.UUID
	DebateID       uuid.UUID
	ProposerID     uuid.UUID
	Term           string
	TermNormalized string
	Text           string
	Context        *string
	Status         DefinitionStatus
	SupersededByID *uuid.UUID
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	References []Reference
}

// IsSuperseded returns true if a newer version replaces this one.
func (d *Definition) IsSuperseded() bool {
	return d.SupersededByID != nil
}

// DefinitionEndorsement records that a participant backs a definition.
type DefinitionEndorsement struct {
	DefinitionID uuid.UUID
	UserID       uuid.UUID
	CreatedAt    time.Time
}

// DefinitionSummary is a definition together with its vote and endorsement counts.
type DefinitionSummary struct {
	Definition
	NetVotes     int
	Endorsements int
}
