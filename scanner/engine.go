package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/tables"
	"github.com/npillmayer/schuko/gconf"
)

// NextToken scans the next token from the source and stores it as the current
// result. At end of input NextToken does nothing.
//
// The automaton starts in the start state and follows transitions for as long
// as there are any, collecting the characters read into the lexeme. If it gets
// stuck in an accepting state, the character just read is pushed back and the
// token is finalized. If it gets stuck in an error-accepting state, a lexical
// error is reported, including the rejecting character, which stays consumed.
// At end of input the current state decides the same way, without a rejecting
// character.
//
// NextToken returns an error only if tables or source are missing or if the
// tables do not fit together. Lexical errors are reported in the result. Table
// consistency is not checked at end of input.
func (sc *Scanner) NextToken() error {
	if err := sc.Ready(); err != nil {
		return err
	}
	if sc.EOF() {
		tracer().Debugf("scanner at end of input")
		return nil
	}
	if err := sc.consistent(); err != nil {
		return err
	}
	start := sc.cursor
	state := tables.StartState
	var lexeme strings.Builder
	for {
		if sc.EOF() {
			entry := sc.entry(state)
			if entry.IsError() {
				sc.diagnose(entry, start, lexeme.String(), "")
			} else {
				sc.accept(entry, start, lexeme.String())
			}
			return nil
		}
		r := sc.source[sc.cursor]
		sc.cursor++
		if dest, ok := sc.trans.Next(state, r); ok {
			tracer().Debugf("%d --%#U--> %d", state, r, dest)
			state = dest
			lexeme.WriteRune(r)
			continue
		}
		entry := sc.entry(state)
		if entry.IsError() {
			sc.diagnose(entry, start, lexeme.String(), string(r))
			return nil
		}
		sc.cursor-- // r is the first character of the next token
		sc.accept(entry, start, lexeme.String())
		return nil
	}
}

// entry returns the token table entry for a state. Consistency of the tables
// guarantees an entry for every state reachable by transitions.
func (sc *Scanner) entry(state int) tables.Entry {
	e, _ := sc.tokens.Entry(state)
	return e
}

func (sc *Scanner) accept(entry tables.Entry, start int, lexeme string) {
	kind := dfalex.Kind(entry.Kind())
	if sc.keywords.Contains(lexeme) {
		kind = dfalex.Kind(lexeme)
	}
	sc.result = Result{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   dfalex.Span{uint64(start), uint64(sc.cursor)},
	}
	tracer().Debugf("token %s", sc.result)
}

// diagnose reports a lexical error for an error-accepting state. The offending
// text (lexeme plus rejecting character) is trimmed, so a malformed token ending
// in a line break reports cleanly.
func (sc *Scanner) diagnose(entry tables.Entry, start int, lexeme, rejected string) {
	sc.result = Result{
		Err:     true,
		Message: Diagnostic(entry.Message(), lexeme+rejected),
		Span:    dfalex.Span{uint64(start), uint64(sc.cursor)},
	}
	tracer().Infof("lexical error %s", sc.result)
}

// Diagnostic formats the message of a lexical error from the message text of
// a token table entry and the offending input.
func Diagnostic(message, offending string) string {
	return message + ": " + strings.TrimSpace(offending)
}

// consistent checks that the token table has exactly one entry per state of the
// transition table, plus the entry for state 0, and that the start state is not
// accepting. An accepting start state would let the scanner finalize empty
// tokens without ever advancing.
func (sc *Scanner) consistent() error {
	var err error
	if sc.tokens.Len() != sc.trans.States()+1 {
		err = fmt.Errorf("%w: %d states, but %d token table entries (expected %d)",
			ErrInconsistentTables, sc.trans.States(), sc.tokens.Len(), sc.trans.States()+1)
	} else if !sc.entry(tables.StartState).IsError() {
		err = fmt.Errorf("%w: start state must not be accepting", ErrInconsistentTables)
	}
	if err == nil {
		return nil
	}
	tracer().Errorf("%v", err)
	if sc.panicky || gconf.GetBool("panic-on-inconsistent-tables") {
		panic(`Scanner tables are inconsistent.

Configuration flag panic-on-inconsistent-tables is set to true. It is aimed at
helping to debug hand-edited tables. If you did not expect this to panic, please
unset panic-on-inconsistent-tables to its default (false).

` + err.Error())
	}
	return err
}
