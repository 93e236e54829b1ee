package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a state change that collaborators may react to.
type EventType string

const (
	EventDebateStarted        EventType = "debate.started"
	EventSideSwitched         EventType = "debate.side_switched"
	EventTurnAdvanced         EventType = "debate.turn_advanced"
	EventDebateCompleted      EventType = "debate.completed"
	EventParticipantForfeited EventType = "debate.participant_forfeited"
	EventDefinitionProposed   EventType = "definition.proposed"
	EventDefinitionAccepted   EventType = "definition.accepted"
	EventDefinitionSuperseded EventType = "definition.superseded"
	EventDefinitionDeprecated EventType = "definition.deprecated"
)

func (t EventType) String() string { return string(t) }

// Event is emitted by a committed transaction. Only the fields relevant to the
// event type are set.
type Event struct {
	Type       EventType
	DebateID   uuid.UUID
	OccurredAt time.Time

	// Turn progression.
	Side        Role
	TurnNumber  int
	WinningRole *Role

	ParticipantID *uuid.UUID

	// Definition lifecycle.
	DefinitionID *uuid.UUID
	Term         string
	ProposerID   *uuid.UUID
}
