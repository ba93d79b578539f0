package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/parsim/parsim"
	"github.com/parsim/parsim/ll"
	"github.com/parsim/parsim/lr"
)

var llFixture = []string{
	";id;+;*;(;);$",
	"E;E->TQ;;;E->TQ;;",
	"Q;;Q->+TQ;;;Q->ϵ;Q->ϵ",
	"T;T->FR;;;T->FR;;",
	"R;;R->ϵ;R->*FR;;R->ϵ;R->ϵ",
	"F;F->id;;;F->(E);;",
}

var lrFixture = []string{
	"LR(1)PARSINGTABLE;;;",
	";a;b;A",
	"State_0;State_1;;State_2",
	"State_1;;A->a;",
	"State_2;;accept;",
}

func TestReadLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "ll.txt")
	content := "; id ; + ; $​\nE ;­E->TQ;;\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != ";id;+;$" {
		t.Errorf("spaces and format characters not stripped: %q", lines[0])
	}
	if lines[1] != "E;E->TQ;;" {
		t.Errorf("soft hyphen not stripped: %q", lines[1])
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	if _, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadLL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	tab, terminals, err := LoadLL(llFixture)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Start != "E" || tab.StartRule.String() != "TQ" {
		t.Errorf("unexpected start production %s->%s", tab.Start, tab.StartRule)
	}
	if p := tab.Rows["F"][parsim.IDSymbol]; p.String() != "#" {
		t.Errorf(`"id" cell not collapsed to the reserved symbol: %q`, p.String())
	}
	if p := tab.Rows["Q"]["$"]; !p.IsEpsilon() {
		t.Errorf("epsilon cell not loaded as the empty production: %q", p.String())
	}
	if len(tab.Rows) != 5 {
		t.Errorf("expected 5 non-terminal rows, got %d", len(tab.Rows))
	}
	if len(terminals) != 6 {
		t.Errorf("expected 6 distinct terminals, got %v", terminals)
	}
	for _, sym := range terminals {
		if sym == "id" {
			t.Errorf("alphabet should carry the reserved symbol, not %q", sym)
		}
	}
}

func TestLoadLLSimulates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	tab, _, err := LoadLL(llFixture)
	if err != nil {
		t.Fatal(err)
	}
	input := []parsim.Symbol{"#", "+", "#", "*", "#"}
	if trace := ll.Simulate(tab, input); !trace.Accepted() {
		t.Errorf("loaded table rejects a valid input: %s", trace.Final().Action)
	}
}

func TestLoadLR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	tab, conditions, err := LoadLR(lrFixture)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Start != "State_0" {
		t.Errorf("unexpected start state %q", tab.Start)
	}
	if a := tab.Rows["State_0"]["a"]; a.Kind != lr.Shift || a.Target != "State_1" {
		t.Errorf("unexpected action %v", a)
	}
	if a := tab.Rows["State_1"]["b"]; a.Kind != lr.Reduce || a.Rule() != "A->a" {
		t.Errorf("unexpected action %v", a)
	}
	if a := tab.Rows["State_2"]["b"]; a.Kind != lr.Accept {
		t.Errorf("unexpected action %v", a)
	}
	if len(conditions) != 3 {
		t.Errorf("expected 3 condition symbols, got %v", conditions)
	}
}

func TestLoadLRSimulates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	tab, _, err := LoadLR(lrFixture)
	if err != nil {
		t.Fatal(err)
	}
	if trace := lr.Simulate(tab, []parsim.Symbol{"a", "b"}); !trace.Accepted() {
		t.Errorf("loaded table rejects a valid input: %s", trace.Final().Action)
	}
}

func TestLoadRequests(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	lines := []string{
		"METHOD;STRING",
		"LL;id+id",
		"LR;ab",
		"GLR;ab",
		"broken-line",
		"",
	}
	reqs := LoadRequests(lines)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Method != parsim.MethodLL || reqs[0].Raw != "id+id" {
		t.Errorf("unexpected request %+v", reqs[0])
	}
	if reqs[1].Method != parsim.MethodLR || reqs[1].Raw != "ab" {
		t.Errorf("unexpected request %+v", reqs[1])
	}
}

func TestLoadLLEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsim.tables")
	defer teardown()
	//
	if _, _, err := LoadLL([]string{";id;$", "E;;"}); err == nil {
		t.Errorf("a table without productions should not load")
	}
	if _, _, err := LoadLL(nil); err == nil {
		t.Errorf("an empty table file should not load")
	}
}
