/*
Package parsim is a parsing-table simulator.

ParSim replays precomputed LL(1) and LR(1) parsing tables against candidate
input strings and records every derivation or reduction step along the way.
It is a pedagogical parser tracer, not a parser generator: tables arrive
fully built, and ParSim's job is to show, step by step, how a predictive
or a shift-reduce parser would walk them. Package structure is as follows:

■ ll: Package ll drives a symbol stack against an LL(1) table, producing a
leftmost-derivation trace.

■ lr: Package lr drives a state/symbol sequence against an LR(1) table,
producing a shift-reduce trace.

■ tables: Package tables loads LL/LR tables and simulation requests from
flat delimited text files.

■ scanner: Package scanner tokenizes raw input strings into grammar symbols.

■ report: Package report renders traces as console tables.

The base package contains the data types which are shared by all the other
packages: grammar symbols, productions, and the step-record trace model.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The ParSim Authors

*/
package parsim
