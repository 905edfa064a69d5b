/*
Package scanner implements a table-driven scanning engine and its session state.

A Scanner runs a deterministic finite automaton over an in-memory source buffer.
The automaton is not compiled into the program, but loaded at runtime from three
tables (see package tables). Clients load the tables and a source, in any order,
then repeatedly call NextToken until EOF() reports end of input:

	sc := scanner.New()
	if err := sc.LoadTransitionTable("scan.csv"); err != nil {
		// previous transition table, if any, is still in place
	}
	… load token table, keyword table and source
	for !sc.EOF() {
		if err := sc.NextToken(); err != nil {
			// tables are missing or inconsistent
		}
		r := sc.Result()
		if r.Err {
			// lexical error, message in r.Message
		}
	}

Tokens are scanned by maximal munch: the automaton follows transitions as long as
there are any. Discovering the end of a token requires reading one character past
it; this character is pushed back and becomes the first character of the next
token. Lexemes equal to a reserved word are reported with the word as their kind.

Lexical errors are not Go errors. They are reported in the scan result, and
scanning may continue with the next call to NextToken, right after the characters
consumed by the failed attempt. Filtering of tokens (whitespace, comments) and
looping to the end of input are policies of clients; see package tokenizer.

A Scanner holds a single scanning session and is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dfalex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("dfalex.scanner")
}
