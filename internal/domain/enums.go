package domain

// DebateStatus represents the lifecycle stage of a debate.
type DebateStatus string

const (
	DebateStatusDraft      DebateStatus = "DRAFT"
	DebateStatusOpen       DebateStatus = "OPEN"
	DebateStatusInProgress DebateStatus = "IN_PROGRESS"
	DebateStatusCompleted  DebateStatus = "COMPLETED"
	DebateStatusCancelled  DebateStatus = "CANCELLED"
)

func (s DebateStatus) String() string { return string(s) }

func (s DebateStatus) IsValid() bool {
	switch s {
	case DebateStatusDraft, DebateStatusOpen, DebateStatusInProgress,
		DebateStatusCompleted, DebateStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further mutation of the debate is allowed.
func (s DebateStatus) IsTerminal() bool {
	return s == DebateStatusCompleted || s == DebateStatusCancelled
}

// DebateFormat determines how many participants may hold each side.
type DebateFormat string

const (
	DebateFormatOneVsOne   DebateFormat = "ONE_VS_ONE"
	DebateFormatOneVsMany  DebateFormat = "ONE_VS_MANY"
	DebateFormatMultiSided DebateFormat = "MULTI_SIDED"
)

func (f DebateFormat) String() string { return string(f) }

func (f DebateFormat) IsValid() bool {
	switch f {
	case DebateFormatOneVsOne, DebateFormatOneVsMany, DebateFormatMultiSided:
		return true
	}
	return false
}

// Role is the side a participant argues for.
type Role string

const (
	RoleProposer Role = "PROPOSER"
	RoleOpposer  Role = "OPPOSER"
	RoleNeutral  Role = "NEUTRAL"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleProposer, RoleOpposer, RoleNeutral:
		return true
	}
	return false
}

// IsTurnSide reports whether the role takes part in the turn rotation.
func (r Role) IsTurnSide() bool {
	return r == RoleProposer || r == RoleOpposer
}

// ParticipantStatus represents whether a participant still counts toward turns.
type ParticipantStatus string

const (
	ParticipantStatusActive    ParticipantStatus = "ACTIVE"
	ParticipantStatusForfeited ParticipantStatus = "FORFEITED"
	ParticipantStatusWithdrawn ParticipantStatus = "WITHDRAWN"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusActive, ParticipantStatusForfeited, ParticipantStatusWithdrawn:
		return true
	}
	return false
}

// DefinitionStatus represents the lifecycle state of a proposed definition.
type DefinitionStatus string

const (
	DefinitionStatusProposed   DefinitionStatus = "PROPOSED"
	DefinitionStatusAccepted   DefinitionStatus = "ACCEPTED"
	DefinitionStatusContested  DefinitionStatus = "CONTESTED"
	DefinitionStatusDeprecated DefinitionStatus = "DEPRECATED"
)

func (s DefinitionStatus) String() string { return string(s) }

func (s DefinitionStatus) IsValid() bool {
	switch s {
	case DefinitionStatusProposed, DefinitionStatusAccepted,
		DefinitionStatusContested, DefinitionStatusDeprecated:
		return true
	}
	return false
}

// definitionTransitions lists the legal target states for each state.
var definitionTransitions = map[DefinitionStatus][]DefinitionStatus{
	DefinitionStatusProposed:   {DefinitionStatusAccepted, DefinitionStatusContested, DefinitionStatusDeprecated},
	DefinitionStatusAccepted:   {DefinitionStatusDeprecated},
	DefinitionStatusContested:  {DefinitionStatusDeprecated},
	DefinitionStatusDeprecated: nil,
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
func (s DefinitionStatus) CanTransitionTo(next DefinitionStatus) bool {
	for _, allowed := range definitionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RetiredStatus returns the state a definition moves to when it is superseded.
// An accepted definition is deprecated; anything else becomes contested.
func (s DefinitionStatus) RetiredStatus() DefinitionStatus {
	if s == DefinitionStatusAccepted {
		return DefinitionStatusDeprecated
	}
	return DefinitionStatusContested
}

// WinConditionType identifies the rule used to decide a debate.
type WinConditionType string

const (
	WinConditionVoteCount WinConditionType = "VOTE_COUNT"
)

func (t WinConditionType) String() string { return string(t) }

func (t WinConditionType) IsValid() bool {
	return t == WinConditionVoteCount
}

// ReferenceType classifies a supporting source.
type ReferenceType string

const (
	ReferenceTypeBook    ReferenceType = "BOOK"
	ReferenceTypeArticle ReferenceType = "ARTICLE"
	ReferenceTypeWebsite ReferenceType = "WEBSITE"
	ReferenceTypeStudy   ReferenceType = "STUDY"
	ReferenceTypeVideo   ReferenceType = "VIDEO"
	ReferenceTypeOther   ReferenceType = "OTHER"
)

func (t ReferenceType) String() string { return string(t) }

func (t ReferenceType) IsValid() bool {
	switch t {
	case ReferenceTypeBook, ReferenceTypeArticle, ReferenceTypeWebsite,
		ReferenceTypeStudy, ReferenceTypeVideo, ReferenceTypeOther:
		return true
	}
	return false
}
