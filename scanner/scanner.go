/*
Package scanner tokenizes raw input strings into grammar symbols.

Two tokenizers are provided: (1) a rune splitter, which collapses the
identifier terminal and then treats every rune as one symbol, and (2) an
adapter for lexmachine, compiled from a table's symbol alphabet, living in
file lexmachine.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package scanner

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/parsim/parsim"
)

// tracer traces with key 'parsim.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("parsim.scanner")
}

// Tokenizer turns a raw input string into a symbol sequence. A trailing end
// marker is dropped; marker handling belongs to the simulators.
type Tokenizer interface {
	Symbols(input string) ([]parsim.Symbol, error)
}

// RuneSplitter is the default tokenizer. It needs no alphabet: "id" is
// collapsed to the reserved identifier symbol and every remaining rune
// becomes one symbol. It cannot reject input; unknown runes surface later
// as simulation rejects.
type RuneSplitter struct{}

var _ Tokenizer = RuneSplitter{}

// Symbols is part of the Tokenizer interface.
func (RuneSplitter) Symbols(input string) ([]parsim.Symbol, error) {
	input = strings.ReplaceAll(input, "id", string(parsim.IDSymbol))
	syms := make([]parsim.Symbol, 0, len(input))
	for _, r := range input {
		syms = append(syms, parsim.Symbol(r))
	}
	return dropEndMarker(syms), nil
}

func dropEndMarker(syms []parsim.Symbol) []parsim.Symbol {
	if n := len(syms); n > 0 && syms[n-1] == parsim.EndMarker {
		return syms[:n-1]
	}
	return syms
}
