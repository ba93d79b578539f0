package lr

import (
	"fmt"
	"strings"

	"github.com/parsim/parsim"
)

// StateID names a state of the LR automaton, e.g. "State_3". The reserved
// prefix distinguishes shift targets from other action spellings in source
// tables; display code drops it via Normalize.
type StateID string

// StatePrefix is the reserved prefix of state names in source tables.
const StatePrefix = "State_"

// Normalize returns the bare state name without the reserved prefix.
func (s StateID) Normalize() string {
	return strings.TrimPrefix(string(s), StatePrefix)
}

// Kind classifies a table action.
type Kind int

// The action kinds. None is the zero value and stands for an absent table
// entry; Invalid marks an entry whose spelling matches no known action.
const (
	None Kind = iota
	Shift
	Reduce
	Accept
	Invalid
)

// Action is one LR(1) table entry, classified once at table-load time.
// Source tables store actions as bare strings disambiguated by spelling;
// classifying them up front keeps the simulator free of repeated string
// sniffing and makes illegal entries explicit.
type Action struct {
	Kind   Kind
	Target StateID           // Shift: the state to settle into
	LHS    parsim.Symbol     // Reduce: left-hand symbol
	RHS    parsim.Production // Reduce: handle to match on the stack
	Raw    string            // the original table cell
}

// Classify maps a raw table cell to its action. The fixed markers are: a
// case-insensitive "accept" literal, the state-name prefix for shifts, and
// an arrow separator for reductions. Anything else is Invalid; the empty
// string is None.
func Classify(raw string) Action {
	switch {
	case raw == "":
		return Action{Kind: None}
	case strings.EqualFold(raw, "accept"):
		return Action{Kind: Accept, Raw: raw}
	case strings.HasPrefix(raw, StatePrefix):
		return Action{Kind: Shift, Target: StateID(raw), Raw: raw}
	case strings.Contains(raw, "->"):
		lhs, rhs, _ := cutRule(raw)
		return Action{
			Kind: Reduce,
			LHS:  parsim.Symbol(lhs),
			RHS:  parsim.TokenizeRHS(rhs),
			Raw:  raw,
		}
	}
	return Action{Kind: Invalid, Raw: raw}
}

// Rule renders a reduce action as its source rule, "L->rhs".
func (a Action) Rule() string {
	return fmt.Sprintf("%s->%s", a.LHS, a.RHS)
}

func (a Action) String() string {
	switch a.Kind {
	case None:
		return "<none>"
	case Accept:
		return "<accept>"
	case Shift:
		return fmt.Sprintf("<shift %s>", a.Target.Normalize())
	case Reduce:
		return fmt.Sprintf("<reduce %s>", a.Rule())
	}
	return fmt.Sprintf("<invalid %q>", a.Raw)
}

// cutRule splits "L->rhs" at the first arrow.
func cutRule(raw string) (string, string, bool) {
	i := strings.Index(raw, "->")
	if i < 0 {
		return raw, "", false
	}
	return raw[:i], raw[i+2:], true
}
