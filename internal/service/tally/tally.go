// Package tally computes vote totals and the verdict of a debate.
package tally

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// SideTotals holds the summed net votes of each arguing side.
type SideTotals struct {
	Proposer int
	Opposer  int
}

// NetVotes returns support votes minus opposing votes.
func NetVotes(votes []domain.Vote) int {
	net := 0
	for _, v := range votes {
		if v.Support {
			net++
		} else {
			net--
		}
	}
	return net
}

// BySide sums the net votes of every argument into its author's side.
// Arguments by NEUTRAL or unknown roles are skipped.
func BySide(args []domain.Argument, votesByArgument map[uuid.UUID][]domain.Vote) SideTotals {
	var totals SideTotals
	for _, a := range args {
		switch a.Role {
		case domain.RoleProposer:
			totals.Proposer += NetVotes(votesByArgument[a.ID])
		case domain.RoleOpposer:
			totals.Opposer += NetVotes(votesByArgument[a.ID])
		}
	}
	return totals
}

// Winner returns the side with the higher net, or nil on a tie.
func Winner(t SideTotals) *domain.Role {
	var r domain.Role
	switch {
	case t.Proposer > t.Opposer:
		r = domain.RoleProposer
	case t.Opposer > t.Proposer:
		r = domain.RoleOpposer
	default:
		return nil
	}
	return &r
}

// GroupByTarget indexes votes by the argument or definition they were cast on.
func GroupByTarget(votes []domain.Vote) map[uuid.UUID][]domain.Vote {
	m := make(map[uuid.UUID][]domain.Vote)
	for _, v := range votes {
		m[v.TargetID] = append(m[v.TargetID], v)
	}
	return m
}
