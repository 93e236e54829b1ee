package definition

import "github.com/heartmarshall/debate-backend/internal/domain"

// AcceptResult is returned by Accept. Deprecated is the predecessor that the
// accepted version retired, if any.
type AcceptResult struct {
	Definition *domain.Definition
	Deprecated *domain.Definition
	Events     []domain.Event
}

// SupersedeResult is returned by Supersede.
type SupersedeResult struct {
	Original  *domain.Definition
	Successor *domain.Definition
	Events    []domain.Event
}

// VoteResult is returned by Vote. Definition is the voted definition, for
// building notification payloads.
type VoteResult struct {
	Definition *domain.Definition
	Vote       domain.Vote
	NetVotes   int
}

// EndorseResult is returned by Endorse. Created is false when the caller had
// already endorsed the definition.
type EndorseResult struct {
	Definition *domain.Definition
	Created    bool
}
