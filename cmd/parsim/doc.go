/*
Package parsim/main provides the parsim command line tool. It loads an
LL(1) table, an LR(1) table and a list of simulation requests from flat
text files, replays every request through the matching simulator and prints
the resulting derivation or reduction trace. An interactive mode accepts
"LL;…" / "LR;…" lines from a prompt instead of a request file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsim.cli'
func tracer() tracing.Trace {
	return tracing.Select("parsim.cli")
}
