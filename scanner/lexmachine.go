package scanner

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/parsim/parsim"
)

// lexmachine adapter

// LMTokenizer tokenizes input strings with a lexmachine DFA compiled from a
// table's symbol alphabet. Unlike the rune splitter it rejects input that
// the alphabet cannot scan, before any simulation starts.
type LMTokenizer struct {
	lexer *lexmachine.Lexer
	syms  []parsim.Symbol // token id → symbol
}

var _ Tokenizer = (*LMTokenizer)(nil)

// NewLMTokenizer compiles a tokenizer for an alphabet. Single-rune symbols
// are registered as escaped literals, multi-rune symbols as keywords. The
// reserved identifier symbol is recognized by its source spelling "id", and
// the end marker is always scannable, whether or not the alphabet lists it.
//
// NewLMTokenizer returns an error if compiling the DFA failed.
func NewLMTokenizer(alphabet []parsim.Symbol) (*LMTokenizer, error) {
	tok := &LMTokenizer{lexer: lexmachine.NewLexer()}
	seen := make(map[parsim.Symbol]bool)
	add := func(pattern string, sym parsim.Symbol) {
		id := len(tok.syms)
		tok.syms = append(tok.syms, sym)
		tok.lexer.Add([]byte(pattern), makeToken(id))
		seen[sym] = true
	}
	for _, sym := range alphabet {
		if seen[sym] {
			continue
		}
		switch {
		case sym == parsim.IDSymbol:
			add("id", sym)
		case len([]rune(string(sym))) > 1:
			add(strings.ToLower(string(sym)), sym)
		default:
			add(escape(string(sym)), sym)
		}
	}
	if !seen[parsim.IDSymbol] {
		add("id", parsim.IDSymbol)
	}
	if !seen[parsim.EndMarker] {
		add(escape(string(parsim.EndMarker)), parsim.EndMarker)
	}
	if err := tok.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return tok, nil
}

// Symbols is part of the Tokenizer interface.
func (tok *LMTokenizer) Symbols(input string) ([]parsim.Symbol, error) {
	scan, err := tok.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var syms []parsim.Symbol
	for t, err, eof := scan.Next(); !eof; t, err, eof = scan.Next() {
		if err != nil {
			tracer().Errorf("scanner error: %v", err)
			return nil, err
		}
		token := t.(*lexmachine.Token)
		syms = append(syms, tok.syms[token.Type])
	}
	return dropEndMarker(syms), nil
}

// escape backslash-escapes every rune of a literal, as lexmachine patterns
// are regular expressions.
func escape(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
