package domain

import "fmt"

// TurnCursor is a position in the fixed turn sequence:
// (PROPOSER,1), (OPPOSER,1), (PROPOSER,2), ... , (OPPOSER,turnsPerSide).
type TurnCursor struct {
	Side   Role
	Number int
}

// FirstCursor is where every debate starts.
func FirstCursor() TurnCursor {
	return TurnCursor{Side: RoleProposer, Number: 1}
}

func (c TurnCursor) String() string {
	return fmt.Sprintf("%s#%d", c.Side, c.Number)
}

// IsFinal reports whether completing this side ends the debate.
func (c TurnCursor) IsFinal(turnsPerSide int) bool {
	return c.Side == RoleOpposer && c.Number >= turnsPerSide
}

// Advancement describes what happened when a side completed.
type Advancement int

const (
	// AdvanceSideSwitched: PROPOSER finished, OPPOSER now holds the same turn number.
	AdvanceSideSwitched Advancement = iota + 1
	// AdvanceTurnStarted: OPPOSER finished a non-final turn, next turn begins with PROPOSER.
	AdvanceTurnStarted
	// AdvanceCompleted: OPPOSER finished the final turn.
	AdvanceCompleted
)

func (a Advancement) String() string {
	switch a {
	case AdvanceSideSwitched:
		return "side_switched"
	case AdvanceTurnStarted:
		return "turn_started"
	case AdvanceCompleted:
		return "completed"
	}
	return "unknown"
}

// NextCursor returns the cursor that follows c once its side completes.
// For AdvanceCompleted the returned cursor equals c: the debate stops there.
func NextCursor(c TurnCursor, turnsPerSide int) (TurnCursor, Advancement) {
	if c.Side == RoleProposer {
		return TurnCursor{Side: RoleOpposer, Number: c.Number}, AdvanceSideSwitched
	}
	if c.IsFinal(turnsPerSide) {
		return c, AdvanceCompleted
	}
	return TurnCursor{Side: RoleProposer, Number: c.Number + 1}, AdvanceTurnStarted
}

// sideRoles maps a format to the participant roles that must submit for a side
// to complete. Every format currently requires exactly the side's own role;
// NEUTRAL participants in multi-sided debates never hold a turn.
var sideRoles = map[DebateFormat]func(side Role) []Role{
	DebateFormatOneVsOne:   func(side Role) []Role { return []Role{side} },
	DebateFormatOneVsMany:  func(side Role) []Role { return []Role{side} },
	DebateFormatMultiSided: func(side Role) []Role { return []Role{side} },
}

// ActiveRolesForSide returns the roles whose ACTIVE participants must each
// submit before side completes.
func ActiveRolesForSide(format DebateFormat, side Role) []Role {
	if f, ok := sideRoles[format]; ok {
		return f(side)
	}
	return []Role{side}
}

// MaxPerSide returns how many ACTIVE participants a format allows on one side;
// 0 means unlimited.
func MaxPerSide(format DebateFormat, role Role) int {
	switch format {
	case DebateFormatOneVsOne:
		return 1
	case DebateFormatOneVsMany:
		if role == RoleProposer {
			return 1
		}
	}
	return 0
}
