/*
Package report renders simulation traces as console tables.

An LL trace renders with the classic NO | STACK | INPUT | ACTION columns,
an LR trace with NO | STATE STACK | READ | INPUT | ACTION. The reserved
identifier symbol is mapped back to its source spelling "id" in every
column, so the reader sees the grammar as it was written.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package report

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/parsim/parsim"
)

// Humanize maps the reserved identifier symbol back to its source spelling.
func Humanize(s string) string {
	return strings.ReplaceAll(s, string(parsim.IDSymbol), "id")
}

// Render prints a trace as a table to the terminal.
func Render(trace *parsim.Trace) error {
	return printer(trace).Render()
}

// Srender returns the rendered table as a string.
func Srender(trace *parsim.Trace) (string, error) {
	return printer(trace).Srender()
}

func printer(trace *parsim.Trace) *pterm.TablePrinter {
	data := pterm.TableData{header(trace.Method)}
	for _, rec := range trace.Steps {
		data = append(data, row(trace.Method, rec))
	}
	return pterm.DefaultTable.WithHasHeader().WithSeparator(" | ").WithData(data)
}

func header(method parsim.Method) []string {
	if method == parsim.MethodLR {
		return []string{"NO", "STATE STACK", "READ", "INPUT", "ACTION"}
	}
	return []string{"NO", "STACK", "INPUT", "ACTION"}
}

func row(method parsim.Method, rec parsim.StepRecord) []string {
	no := strconv.Itoa(rec.Index)
	if method == parsim.MethodLR {
		return []string{
			no,
			rec.Stack,
			Humanize(string(rec.Read)),
			Humanize(rec.Input),
			Humanize(rec.Action),
		}
	}
	return []string{
		no,
		Humanize(rec.Stack),
		Humanize(rec.Input),
		Humanize(rec.Action),
	}
}
