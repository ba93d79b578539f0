package parsim

import (
	"testing"
)

func TestProductionString(t *testing.T) {
	p := Production{"T", "Q"}
	if p.String() != "TQ" {
		t.Errorf("expected TQ, got %q", p.String())
	}
	if (Production{}).String() != EpsilonLiteral {
		t.Errorf("empty production should render as %s", EpsilonLiteral)
	}
}

func TestTokenizeRHS(t *testing.T) {
	p := TokenizeRHS("(E)")
	if len(p) != 3 || p[0] != "(" || p[1] != "E" || p[2] != ")" {
		t.Errorf("unexpected tokenization: %v", p)
	}
	if !TokenizeRHS(EpsilonLiteral).IsEpsilon() {
		t.Errorf("epsilon literal should tokenize to the empty production")
	}
	if !TokenizeRHS("").IsEpsilon() {
		t.Errorf("empty string should tokenize to the empty production")
	}
}

func TestTraceOutcome(t *testing.T) {
	trace := &Trace{Method: MethodLL}
	if trace.Accepted() || trace.Rejected() {
		t.Errorf("empty trace must have no outcome")
	}
	trace.Append(StepRecord{Index: 1, Action: "S->TQ"})
	trace.Append(StepRecord{Index: 2, Action: AcceptedAction})
	if !trace.Accepted() {
		t.Errorf("trace ending in %s not reported as accepted", AcceptedAction)
	}
	if trace.Rejected() {
		t.Errorf("accepted trace reported as rejected")
	}
	if trace.Final().Index != 2 {
		t.Errorf("Final() should return the last record")
	}
}

func TestTraceRejected(t *testing.T) {
	trace := &Trace{Method: MethodLL}
	trace.Append(StepRecord{Index: 1, Action: Rejected("%q not found in LL(1) parsing table", Symbol("X"))})
	if !trace.Rejected() {
		t.Errorf("trace ending in a rejection not reported as rejected")
	}
	want := `REJECTED ("X" not found in LL(1) parsing table)`
	if got := trace.Final().Action; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTraceFingerprint(t *testing.T) {
	mk := func(action string) *Trace {
		trace := &Trace{Method: MethodLR}
		trace.Append(StepRecord{Index: 1, Stack: "0", Input: "a", Read: "a", Action: action})
		return trace
	}
	a, b := mk(`Shift to "State_1"`), mk(`Shift to "State_1"`)
	if a.Fingerprint() == "" {
		t.Fatalf("fingerprint should not be empty")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("identical traces must have identical fingerprints")
	}
	if a.Fingerprint() == mk(AcceptedAction).Fingerprint() {
		t.Errorf("differing traces must have differing fingerprints")
	}
}
