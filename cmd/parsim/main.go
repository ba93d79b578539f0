package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/parsim/parsim"
	"github.com/parsim/parsim/ll"
	"github.com/parsim/parsim/lr"
	"github.com/parsim/parsim/report"
	"github.com/parsim/parsim/scanner"
	"github.com/parsim/parsim/tables"
)

// traceKeys are the tracing keys of all parsim packages.
var traceKeys = []string{
	"parsim.cli", "parsim.ll", "parsim.lr",
	"parsim.tables", "parsim.scanner",
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	llFile := flag.String("ll", "ll.txt", "LL(1) parsing table file")
	lrFile := flag.String("lr", "lr.txt", "LR(1) parsing table file")
	inputFile := flag.String("input", "input.txt", "simulation requests file")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("interactive", false, "read LL;…/LR;… requests from a prompt")
	flag.Parse()
	setTraceLevels(*tlevel)
	//
	s := &session{seen: make(map[string]string)}
	s.ll, s.llToken = loadLL(*llFile)
	s.lr, s.lrToken = loadLR(*lrFile)
	if *interactive {
		s.repl()
		return
	}
	lines, err := tables.ReadLines(*inputFile)
	if err != nil {
		pterm.Error.Printf("%q does not exist in the current directory.\n", *inputFile)
		os.Exit(1)
	}
	reqs := tables.LoadRequests(lines)
	pterm.Info.Printf("Read %d request(s) from %q.\n", len(reqs), *inputFile)
	for _, req := range reqs {
		s.run(req)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " FAIL",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevels(name string) {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch strings.ToLower(name) {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
}

// session bundles the loaded tables with the tokenizers built from their
// alphabets. Tables are loaded once and read-only afterwards; every request
// gets its own simulation run and trace.
type session struct {
	ll      *ll.Table
	lr      *lr.Table
	llToken scanner.Tokenizer
	lrToken scanner.Tokenizer
	seen    map[string]string // request → trace fingerprint of the last run
}

func loadLL(path string) (*ll.Table, scanner.Tokenizer) {
	lines, err := tables.ReadLines(path)
	if err != nil {
		pterm.Error.Printf("%q does not exist in the current directory.\n", path)
		os.Exit(1)
	}
	tab, alphabet, err := tables.LoadLL(lines)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	pterm.Info.Printf("Read LL(1) parsing table from %q.\n", path)
	return tab, newTokenizer(alphabet)
}

func loadLR(path string) (*lr.Table, scanner.Tokenizer) {
	lines, err := tables.ReadLines(path)
	if err != nil {
		pterm.Error.Printf("%q does not exist in the current directory.\n", path)
		os.Exit(1)
	}
	tab, alphabet, err := tables.LoadLR(lines)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	pterm.Info.Printf("Read LR(1) parsing table from %q.\n", path)
	return tab, newTokenizer(alphabet)
}

// newTokenizer compiles a lexmachine tokenizer from a table's alphabet and
// falls back to plain rune splitting if the DFA cannot be compiled.
func newTokenizer(alphabet []parsim.Symbol) scanner.Tokenizer {
	tok, err := scanner.NewLMTokenizer(alphabet)
	if err != nil {
		tracer().Errorf("falling back to rune splitting: %v", err)
		return scanner.RuneSplitter{}
	}
	return tok
}

// tokenizerFor returns the lexmachine tokenizer compiled from the matching
// table's alphabet, or the rune splitter if compilation failed.
func (s *session) tokenizerFor(method parsim.Method) scanner.Tokenizer {
	switch method {
	case parsim.MethodLL:
		return s.llToken
	case parsim.MethodLR:
		return s.lrToken
	}
	return scanner.RuneSplitter{}
}

// run tokenizes one request, simulates it and renders the trace. A
// simulation reject never aborts the process; requests are independent.
func (s *session) run(req tables.Request) *parsim.Trace {
	syms, err := s.tokenizerFor(req.Method).Symbols(req.Raw)
	if err != nil {
		pterm.Error.Printf("Cannot tokenize %q: %v\n", req.Raw, err)
		return nil
	}
	var trace *parsim.Trace
	switch req.Method {
	case parsim.MethodLL:
		pterm.Info.Printf("Processing input string %q for LL(1) parsing table.\n", req.Raw)
		trace = ll.Simulate(s.ll, syms)
	case parsim.MethodLR:
		pterm.Info.Printf("Processing input string %q for LR(1) parsing table.\n", req.Raw)
		trace = lr.Simulate(s.lr, syms)
	default:
		// the core ignores methods it does not recognize
		return nil
	}
	if err := report.Render(trace); err != nil {
		tracer().Errorf("rendering trace: %v", err)
	}
	if trace.Accepted() {
		pterm.Success.Println("Input accepted.")
	} else {
		pterm.Error.Println(report.Humanize(trace.Final().Action))
	}
	return trace
}

// repl reads "LL;…" / "LR;…" requests interactively. Identical re-runs are
// detected via the trace fingerprint; simulation is deterministic, so a
// repeated request yields a repeated trace.
func (s *session) repl() {
	rl, err := readline.New("parsim> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	pterm.Info.Println("Enter LL;<input> or LR;<input>, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cells := strings.SplitN(line, ";", 2)
		if len(cells) < 2 {
			pterm.Error.Println("expected LL;<input> or LR;<input>")
			continue
		}
		req := tables.Request{
			Method: parsim.Method(strings.ToUpper(cells[0])),
			Raw:    cells[1],
		}
		if req.Method != parsim.MethodLL && req.Method != parsim.MethodLR {
			pterm.Error.Printf("Unsupported parsing method %q.\n", cells[0])
			continue
		}
		trace := s.run(req)
		if trace == nil {
			continue
		}
		key := string(req.Method) + ";" + req.Raw
		if fp := trace.Fingerprint(); fp != "" {
			if prev, ok := s.seen[key]; ok && prev == fp {
				pterm.Info.Println("Trace identical to the previous run of this request.")
			}
			s.seen[key] = fp
		}
	}
	println("Good bye!")
}
