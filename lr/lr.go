/*
Package lr provides a simulator for LR(1) parsing tables.

The simulator drives a shift-reduce parse against a precomputed LR(1) table
and records every step. Like its LL sibling it performs no grammar analysis:
the table already encodes all parsing decisions, including acceptance, so no
end marker is appended to the input.

The run state is a single ordered sequence of compounds: a prefix of settled
compounds (the parse stack, states interleaved with already-shifted symbols)
followed by a suffix of pending compounds (the remaining input). A reduction
replaces the matched handle with one new pending compound carrying the
rule's left-hand symbol; the subsequent shift of that compound is the goto
step, not a separate action.

Termination is a property of the supplied table: a table containing a cycle
of reductions that never shifts or accepts will loop. The simulator assumes
well-formed tables and does not guard against this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/parsim/parsim"
)

// tracer traces with key 'parsim.lr'.
func tracer() tracing.Trace {
	return tracing.Select("parsim.lr")
}

// Table is an LR(1) parsing table. Rows maps every state to its table row,
// which in turn maps a symbol (terminal or non-terminal) to the classified
// action. Start is the state the parse begins in, the first state
// encountered while loading the table.
//
// Tables are immutable after load.
type Table struct {
	Start StateID
	Rows  map[StateID]map[parsim.Symbol]Action
}

// compound is one slot of the unified run sequence. A settled compound
// carries the state entered and the symbol that caused the transition; a
// pending compound carries only a symbol awaiting classification.
type compound struct {
	state StateID // empty while pending
	sym   parsim.Symbol
}

func (c compound) settled() bool {
	return c.state != ""
}

// Simulate runs input against an LR(1) table and returns the shift-reduce
// trace. Every step records the settled-state sequence and the full
// remaining symbol sequence as they were before the step's mutation, plus
// the symbol just read. The final record's action is either ACCEPTED or a
// REJECTED (…) cause.
func Simulate(tab *Table, input []parsim.Symbol) *parsim.Trace {
	tracer().Debugf("LR simulation of input %q", parsim.Join(input))
	trace := &parsim.Trace{Method: parsim.MethodLR}
	comps := make([]compound, 0, len(input)+1)
	comps = append(comps, compound{state: tab.Start})
	for _, sym := range input {
		comps = append(comps, compound{sym: sym})
	}
	for step, done := 1, false; !done; step++ {
		rec := parsim.StepRecord{Index: step}
		rec.Stack, rec.Input = views(comps)
		comps, rec.Action, rec.Read, done = advance(tab, comps)
		tracer().Debugf("step %d: %s", step, rec.Action)
		trace.Append(rec)
	}
	return trace
}

// advance performs one simulation step on the compound sequence. It returns
// the resulting sequence, the action description, the symbol read, and
// whether the run is finished.
func advance(tab *Table, comps []compound) ([]compound, string, parsim.Symbol, bool) {
	i := firstPending(comps)
	if i < 0 {
		// Unreachable with a correct table: acceptance fires before the
		// sequence runs dry.
		return comps, parsim.Rejected("No pending symbol found in compounds"), "", true
	}
	t := comps[i].sym
	if i == 0 || !comps[i-1].settled() {
		return comps, parsim.Rejected("Previous state not found in compounds"), t, true
	}
	prev := comps[i-1].state
	row, ok := tab.Rows[prev]
	if !ok {
		return comps, parsim.Rejected("Previous state actions/steps not found in LR(1) table"), t, true
	}
	action := row[t] // zero value is Kind None
	switch action.Kind {
	case None:
		return comps, parsim.Rejected("%q does not have an action/step for %q", prev, t), t, true
	case Accept:
		return comps, parsim.AcceptedAction, t, true
	case Shift:
		comps[i].state = action.Target
		return comps, fmt.Sprintf("Shift to %q", string(action.Target)), t, false
	case Reduce:
		next, cause := reduce(comps, i, action)
		if cause != "" {
			return comps, parsim.Rejected("%s", cause), t, true
		}
		return next, fmt.Sprintf("Reverse %q", action.Rule()), t, false
	}
	return comps, parsim.Rejected("Incorrect action/step for %q in %q", t, prev), t, true
}

// reduce verifies the handle of a reduce action against the settled
// compounds preceding position i and, on success, replaces them with one
// pending compound carrying the rule's left-hand symbol. The new compound
// sits immediately after the truncated stack, before all remaining pending
// compounds. On failure it returns the rejection cause and leaves the
// sequence untouched; no recovery is attempted.
func reduce(comps []compound, i int, action Action) ([]compound, string) {
	k := len(action.RHS)
	for j := 1; j <= k; j++ {
		pos := i - j
		if pos <= 0 {
			// Ran into the start compound: the stack is too short for
			// this handle.
			return nil, "Previous symbol not found in compounds"
		}
		if !comps[pos].settled() || comps[pos].sym != action.RHS[k-j] {
			return nil, fmt.Sprintf("Reduction symbols do not match stack for %q", action.Rule())
		}
	}
	// An epsilon reduction (k == 0) inserts without removing anything.
	next := make([]compound, 0, len(comps)-k+1)
	next = append(next, comps[:i-k]...)
	next = append(next, compound{sym: action.LHS})
	next = append(next, comps[i:]...)
	return next, ""
}

// firstPending returns the index of the leftmost pending compound, or -1.
func firstPending(comps []compound) int {
	for i, c := range comps {
		if !c.settled() {
			return i
		}
	}
	return -1
}

// views serializes the settled-state sequence (normalized, space-joined)
// and the full symbol sequence of the compounds.
func views(comps []compound) (string, string) {
	states := make([]string, 0, len(comps))
	var syms strings.Builder
	for _, c := range comps {
		if c.settled() {
			states = append(states, c.state.Normalize())
		}
		syms.WriteString(string(c.sym))
	}
	return strings.Join(states, " "), syms.String()
}
