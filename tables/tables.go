/*
Package tables loads parsing tables and simulation requests from flat
delimited text files.

The file format is semicolon-separated cells, one table row per line. Files
may contain stray spaces and invisible control characters (a frequent
artifact of spreadsheet exports); both are stripped before parsing. The
identifier terminal "id" is collapsed to the reserved identifier symbol in
tables and condition rows, so that every symbol occupies exactly one cell
position and table lookups stay unambiguous.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package tables

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/parsim/parsim"
	"github.com/parsim/parsim/ll"
	"github.com/parsim/parsim/lr"
)

// tracer traces with key 'parsim.tables'.
func tracer() tracing.Trace {
	return tracing.Select("parsim.tables")
}

// ReadLines reads a file and returns its lines, stripped of spaces and of
// all Unicode category-C runes. A missing or unreadable file is a fatal,
// process-level condition; the error is returned for the caller to report.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		lines = append(lines, clean(scan.Text()))
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d lines from %q", len(lines), path)
	return lines, nil
}

func clean(line string) string {
	var b strings.Builder
	for _, r := range line {
		if r == ' ' || unicode.In(r, unicode.C) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeID collapses the identifier terminal to its reserved symbol.
func normalizeID(line string) string {
	return strings.ReplaceAll(line, "id", string(parsim.IDSymbol))
}

// LoadLL parses the lines of an LL(1) table file. The first line is the
// header: a leading empty cell followed by the terminal alphabet. Every
// further line is a non-terminal followed by one cell per terminal; a
// non-empty cell holds the production to apply, with an optional "N->"
// prefix repeating the row's non-terminal. The first production encountered
// becomes the grammar's start production.
//
// The second return value is the table's terminal alphabet, ordered and
// deduplicated, for clients that build a scanner from it.
func LoadLL(lines []string) (*ll.Table, []parsim.Symbol, error) {
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("LL(1) table needs a header line and at least one row")
	}
	terminals := strings.Split(normalizeID(lines[0]), ";")[1:]
	tab := &ll.Table{
		Rows: make(map[parsim.Symbol]map[parsim.Symbol]parsim.Production),
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		cells := strings.Split(normalizeID(line), ";")
		nt := parsim.Symbol(cells[0])
		row := make(map[parsim.Symbol]parsim.Production)
		for i, cell := range cells[1:] {
			if cell == "" || i >= len(terminals) {
				continue
			}
			p := parsim.TokenizeRHS(strings.TrimPrefix(cell, string(nt)+"->"))
			row[parsim.Symbol(terminals[i])] = p
			if tab.Start == "" {
				tab.Start, tab.StartRule = nt, p
				tracer().Debugf("start production %s->%s", nt, p)
			}
		}
		tab.Rows[nt] = row
	}
	if tab.Start == "" {
		return nil, nil, fmt.Errorf("LL(1) table contains no production")
	}
	return tab, alphabet(terminals), nil
}

// LoadLR parses the lines of an LR(1) table file. The first line is a title
// row and is skipped; the second line holds the condition symbols; every
// further line is a state followed by one cell per condition symbol. Cells
// are classified into actions at load time. The first state encountered
// becomes the start state.
//
// The second return value is the ordered, deduplicated condition alphabet.
func LoadLR(lines []string) (*lr.Table, []parsim.Symbol, error) {
	if len(lines) < 3 {
		return nil, nil, fmt.Errorf("LR(1) table needs a title, a header line and at least one row")
	}
	conditions := strings.Split(normalizeID(lines[1]), ";")[1:]
	tab := &lr.Table{
		Rows: make(map[lr.StateID]map[parsim.Symbol]lr.Action),
	}
	for _, line := range lines[2:] {
		if line == "" {
			continue
		}
		cells := strings.Split(normalizeID(line), ";")
		state := lr.StateID(cells[0])
		if tab.Start == "" {
			tab.Start = state
			tracer().Debugf("start state %s", state)
		}
		row := make(map[parsim.Symbol]lr.Action)
		for i, cell := range cells[1:] {
			if cell == "" || i >= len(conditions) {
				continue
			}
			row[parsim.Symbol(conditions[i])] = lr.Classify(cell)
		}
		tab.Rows[state] = row
	}
	if tab.Start == "" {
		return nil, nil, fmt.Errorf("LR(1) table contains no state")
	}
	return tab, alphabet(conditions), nil
}

// Request is one simulation request: which engine to run and the raw input
// string to tokenize and simulate.
type Request struct {
	Method parsim.Method
	Raw    string
}

// LoadRequests parses the lines of an input file. The first line is a
// header and is skipped; every further line is "METHOD;STRING". Requests
// with an unsupported method are logged and dropped.
func LoadRequests(lines []string) []Request {
	var reqs []Request
	if len(lines) == 0 {
		return reqs
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		cells := strings.SplitN(line, ";", 2)
		if len(cells) < 2 {
			tracer().Infof("malformed request line %q ignored", line)
			continue
		}
		switch method := parsim.Method(cells[0]); method {
		case parsim.MethodLL, parsim.MethodLR:
			reqs = append(reqs, Request{Method: method, Raw: cells[1]})
		default:
			tracer().Infof("unsupported parsing method %q ignored", cells[0])
		}
	}
	return reqs
}

// alphabet orders and deduplicates a header row's symbols.
func alphabet(cols []string) []parsim.Symbol {
	set := treeset.NewWith(utils.StringComparator)
	for _, c := range cols {
		if c != "" {
			set.Add(c)
		}
	}
	syms := make([]parsim.Symbol, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, parsim.Symbol(v.(string)))
	}
	return syms
}
