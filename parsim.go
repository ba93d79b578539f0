package parsim

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// --- Symbols and productions ------------------------------------------------

// Symbol is an atomic grammar token, terminal or non-terminal. Symbols are
// plain strings; most are a single rune, but nothing relies on that.
type Symbol string

// Reserved symbols. Source grammars write the identifier terminal as "id";
// loaders and scanners collapse it to IDSymbol so that table lookups keyed
// by literal terminal text cannot collide with it.
const (
	IDSymbol  Symbol = "#" // normalized identifier terminal
	EndMarker Symbol = "$" // bottom-of-stack and end-of-input marker
)

// EpsilonLiteral is how source tables spell the empty production.
const EpsilonLiteral = "ϵ"

// Production is the right-hand side of a grammar rule. The empty slice
// denotes the epsilon production. Productions are never mutated after a
// table has been loaded.
type Production []Symbol

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return EpsilonLiteral
	}
	var b strings.Builder
	for _, sym := range p {
		b.WriteString(string(sym))
	}
	return b.String()
}

// TokenizeRHS splits the textual right-hand side of a rule into symbols,
// one symbol per rune. The epsilon literal yields the empty production.
func TokenizeRHS(rhs string) Production {
	if rhs == "" || rhs == EpsilonLiteral {
		return Production{}
	}
	p := make(Production, 0, len(rhs))
	for _, r := range rhs {
		p = append(p, Symbol(r))
	}
	return p
}

// Join concatenates a symbol sequence into its textual form.
func Join(syms []Symbol) string {
	var b strings.Builder
	for _, sym := range syms {
		b.WriteString(string(sym))
	}
	return b.String()
}

// --- Methods ----------------------------------------------------------------

// Method denotes which simulation engine a trace or request belongs to.
type Method string

// The two supported simulation methods.
const (
	MethodLL Method = "LL"
	MethodLR Method = "LR"
)

// --- Traces -----------------------------------------------------------------

// AcceptedAction is the action description of a successful final step.
const AcceptedAction = "ACCEPTED"

// rejectedPrefix starts the action description of every failed final step.
const rejectedPrefix = "REJECTED ("

// Rejected formats a rejection cause as an action description.
func Rejected(format string, args ...interface{}) string {
	return rejectedPrefix + fmt.Sprintf(format, args...) + ")"
}

// StepRecord captures one simulation step. Stack holds the serialized
// derivation stack (LL) or state stack (LR), Input the serialized remaining
// input, both reflecting the state *before* the step's mutation was applied:
// the action column describes what transforms this row into the next one.
// Read is populated on every LR step with the symbol just classified.
// Records are immutable once appended to a trace.
type StepRecord struct {
	Index  int    // 1-based step number
	Stack  string // stack resp. state-stack view
	Input  string // remaining-input view
	Read   Symbol // LR only: the symbol driving this step
	Action string // what this step does, or ACCEPTED / REJECTED (cause)
}

// Trace is the append-only record of a single simulation run. Each run
// creates its own trace and hands it off whole to the caller; no state is
// shared across runs or across the two engines.
type Trace struct {
	Method Method
	Steps  []StepRecord
}

// Append adds a step record to the trace.
func (t *Trace) Append(rec StepRecord) {
	t.Steps = append(t.Steps, rec)
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	return len(t.Steps)
}

// Final returns the last recorded step, which carries the run's outcome.
// For an empty trace it returns a zero record.
func (t *Trace) Final() StepRecord {
	if len(t.Steps) == 0 {
		return StepRecord{}
	}
	return t.Steps[len(t.Steps)-1]
}

// Accepted reports whether the run ended in an accepting step.
func (t *Trace) Accepted() bool {
	return t.Final().Action == AcceptedAction
}

// Rejected reports whether the run ended in a rejecting step.
func (t *Trace) Rejected() bool {
	return strings.HasPrefix(t.Final().Action, rejectedPrefix)
}

// Fingerprint returns a stable hash over the complete trace. Re-running the
// same table against the same input yields an identical fingerprint.
func (t *Trace) Fingerprint() string {
	h, err := structhash.Hash(t, 1)
	if err != nil {
		return ""
	}
	return h
}
