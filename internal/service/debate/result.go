package debate

import (
	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/tally"
)

// Progress reports what a write did to the turn cursor. Completed excludes
// the other two flags.
type Progress struct {
	Debate *domain.Debate

	// SideSwitched: the current side completed and the other side now holds the turn.
	SideSwitched bool
	// TurnAdvanced: the OPPOSER side completed a non-final turn, so the turn
	// number grew as well. Implies SideSwitched.
	TurnAdvanced bool
	// Completed: the final side completed and the verdict was recorded.
	Completed    bool
	WinningRole  *domain.Role
	WinCondition *domain.WinCondition

	Events []domain.Event
}

// DebateStatus returns the status after the write.
func (p Progress) DebateStatus() domain.DebateStatus {
	if p.Debate == nil {
		return ""
	}
	return p.Debate.Status
}

// SubmissionResult is returned by SubmitArguments.
type SubmissionResult struct {
	Arguments []domain.Argument
	Progress
}

// ForfeitResult is returned by ForfeitParticipant.
type ForfeitResult struct {
	Participant *domain.Participant
	Progress
}

// VoteResult is returned by VoteOnArgument.
type VoteResult struct {
	Vote     domain.Vote
	NetVotes int
}

// Standing is a read-only snapshot of a debate and its current score.
type Standing struct {
	Debate       *domain.Debate
	Participants []domain.Participant
	Totals       tally.SideTotals
	// Leader is the side ahead on votes; nil while tied.
	Leader       *domain.Role
	WinCondition *domain.WinCondition
}
