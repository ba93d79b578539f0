/*
Package ll provides a simulator for LL(1) parsing tables.

The simulator drives a symbol stack against a precomputed LL(1) table and
records a step-by-step leftmost derivation of the input. It performs no
grammar analysis of its own: the table is expected to encode all parsing
decisions already, and the simulator merely replays them.

Usage

Clients obtain a table, usually through package tables, and feed it input
symbol sequences:

	trace := ll.Simulate(tab, symbols)
	if trace.Accepted() {
		// input derivable from the grammar
	} else {
		cause := trace.Final().Action // REJECTED (…)
	}

A run always terminates and always returns a complete trace; rejection is an
outcome recorded in the final step, never an error or a panic. Tables are
read-only during simulation, so independent runs may share one table, each
owning its private stack and trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/parsim/parsim"
)

// tracer traces with key 'parsim.ll'.
func tracer() tracing.Trace {
	return tracing.Select("parsim.ll")
}

// Table is an LL(1) parsing table. Rows maps every non-terminal to its
// table row, which in turn maps a lookahead terminal to the production to
// apply. Start and StartRule designate the grammar's start production, the
// first production encountered while loading the table.
//
// Tables are immutable after load.
type Table struct {
	Start     parsim.Symbol
	StartRule parsim.Production
	Rows      map[parsim.Symbol]map[parsim.Symbol]parsim.Production
}

// Simulate runs input against an LL(1) table and returns the derivation
// trace. The input sequence is expected without a trailing end marker; the
// simulator appends one itself (a present trailing marker is kept as is).
//
// Every step records stack and remaining input as they were before the
// step's mutation, so the action column always describes the transformation
// into the next row. The final record's action is either ACCEPTED or a
// REJECTED (…) cause.
func Simulate(tab *Table, input []parsim.Symbol) *parsim.Trace {
	tracer().Debugf("LL simulation of input %q", parsim.Join(input))
	trace := &parsim.Trace{Method: parsim.MethodLL}
	queue := append([]parsim.Symbol{}, input...)
	if n := len(queue); n == 0 || queue[n-1] != parsim.EndMarker {
		queue = append(queue, parsim.EndMarker)
	}
	stack := arraystack.New()
	stack.Push(parsim.EndMarker)
	for step, done := 1, false; !done; step++ {
		rec := parsim.StepRecord{
			Index: step,
			Stack: stackView(stack),
			Input: parsim.Join(queue),
		}
		if step == 1 {
			// Unconditional start expansion; the lookahead is not consulted.
			rec.Action = fmt.Sprintf("%s->%s", tab.Start, tab.StartRule)
			pushReversed(stack, tab.StartRule)
		} else {
			top, _ := stack.Pop()
			s := top.(parsim.Symbol)
			t := queue[0]
			switch {
			case s == parsim.EndMarker && t == parsim.EndMarker:
				rec.Action = parsim.AcceptedAction
				done = true
			case s == t:
				queue = queue[1:] // the only step that advances the input
				rec.Action = fmt.Sprintf("Match and remove %q", t)
			default:
				rec.Action, done = expand(tab, stack, s, t)
			}
		}
		tracer().Debugf("step %d: %s", step, rec.Action)
		trace.Append(rec)
	}
	return trace
}

// expand applies the table entry for non-terminal s under lookahead t, or
// classifies the failure. It reports the action description and whether the
// run is finished.
func expand(tab *Table, stack *arraystack.Stack, s, t parsim.Symbol) (string, bool) {
	row, ok := tab.Rows[s]
	if !ok {
		return parsim.Rejected("%q not found in LL(1) parsing table", s), true
	}
	p, ok := row[t]
	if !ok {
		return parsim.Rejected("%q doesn't have an action/step for %q", s, t), true
	}
	if !p.IsEpsilon() {
		pushReversed(stack, p)
	}
	return fmt.Sprintf("%q", fmt.Sprintf("%s->%s", s, p)), false
}

// pushReversed pushes a production's symbols in reverse order, so that the
// leftmost symbol ends up on top of the stack.
func pushReversed(stack *arraystack.Stack, p parsim.Production) {
	for i := len(p) - 1; i >= 0; i-- {
		stack.Push(p[i])
	}
}

// stackView serializes the stack top-to-bottom.
func stackView(stack *arraystack.Stack) string {
	var b strings.Builder
	for _, v := range stack.Values() { // Values() iterates in LIFO order
		b.WriteString(string(v.(parsim.Symbol)))
	}
	return b.String()
}
