/*
Package lexmach provides a reference lexer, generated by lexmachine, to cross-check
scanner tables.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Hand-edited transition tables are hard to review. Package lexmach defines the
same language as a set of regular expressions, lets lexmachine compile them to a
DFA and compares the tokens of both scanners for a given input. The first token
where the two disagree is reported as a Mismatch.

Lexmachine has to be initialized by providing literals (operators, punctuation),
reserved words and regular expressions:

	literals := []lexmach.Literal{{"+", "plus"}, {"++", "increment"}, …}
	init := func(lm *lexmach.LMAdapter) {
		lm.Add("identifier", `[a-zA-Z_][a-zA-Z0-9_]*`)
		…
	}
	LM, err := lexmach.NewLMAdapter(init, literals, keywords)
	if err != nil {
		// compiling the DFA failed
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the tokenizer.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")

DefaultLanguage returns an adapter for the language of package deflang.
Compare runs a table-driven scanner and a reference scanner side by side:

	mismatch, err := lexmach.Compare(sc, LM, input)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dfalex.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("dfalex.lexmach")
}
