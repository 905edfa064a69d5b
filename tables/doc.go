/*
Package tables loads the three tables which drive a DFA scanner.

Tables are plain delimited text, one record per line:

■ Transition table: a header row lists the character codes (decimal ordinals) of
all distinguished input characters. Every following row belongs to an automaton
state, starting with state 1 (the start state). A cell holds the destination
state number or a non-numeric sentinel (usually '-') for "no transition".

■ Token table: one row per state, index-aligned with the transition table (row 0
belongs to the unused state 0). The first field is either a token kind or, if
prefixed with '-', an error message for an error-accepting state.

■ Keyword table: one reserved word per row.

Every loader parses and validates its input completely before returning a table,
so clients may keep their previous tables whenever loading fails.

	tt, err := tables.LoadTransitionTable("scan.csv")
	if err != nil {
		// tables previously in use are still valid
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dfalex.tables'.
func tracer() tracing.Trace {
	return tracing.Select("dfalex.tables")
}
