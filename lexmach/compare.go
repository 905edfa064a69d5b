package lexmach

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/npillmayer/dfalex/tokenizer"
)

// ErrLexicalInput is returned by Compare if the table-driven scanner reports
// lexical errors for the input. Such inputs are not compared, as the reference
// lexer has no notion of diagnostics.
var ErrLexicalInput = errors.New("input contains lexical errors")

// Mismatch describes the first token where the table-driven scanner and the
// reference lexer disagree. Either token may be an EOF token if one of the
// scanners ended early.
type Mismatch struct {
	Index     int          // index of the token in the token sequence
	Line      int          // line and column of the table-driven scanner's token
	Column    int
	Table     dfalex.Token // token of the table-driven scanner
	Reference dfalex.Token // token of the reference lexer
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("token #%d at %d:%d: tables say %s %q, reference says %s %q",
		m.Index, m.Line, m.Column, m.Table.Kind(), m.Table.Lexeme(),
		m.Reference.Kind(), m.Reference.Lexeme())
}

// Compare scans input with a table-driven scanner and with a reference lexer and
// returns the first token where they differ in kind or lexeme, or nil if they
// agree. The input is installed as the scanner's source; it is trimmed for the
// reference lexer in the same way.
//
// Compare returns ErrLexicalInput (wrapped) if the scanner finds lexical errors,
// and the scanner's error if it is not ready to scan.
func Compare(sc *scanner.Scanner, lm *LMAdapter, input string) (*Mismatch, error) {
	sc.SetSourceText(input)
	var scanErr error
	stream := tokenizer.New(sc)
	stream.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	table := tokenizer.Collect(stream)
	var lexErr *tokenizer.LexicalError
	if errors.As(scanErr, &lexErr) {
		return nil, fmt.Errorf("%w: %v", ErrLexicalInput, lexErr)
	} else if scanErr != nil {
		return nil, scanErr
	}
	ref, err := lm.Scanner(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}
	ref.SetErrorHandler(func(e error) {
		tracer().Infof("reference lexer: %v", e)
	})
	eof := tokenizer.MakeToken(dfalex.EOFKind, "", dfalex.Span{})
	for i := 0; ; i++ {
		r := ref.NextToken()
		t := dfalex.Token(eof)
		if i < len(table) {
			t = table[i]
		}
		if t.Kind() == dfalex.EOFKind && r.Kind() == dfalex.EOFKind {
			return nil, nil
		}
		if t.Kind() != r.Kind() || t.Lexeme() != r.Lexeme() {
			m := &Mismatch{Index: i, Table: t, Reference: r}
			m.Line, m.Column = sc.Position(int(t.Span().From()))
			if t.Kind() == dfalex.EOFKind {
				m.Line, m.Column = sc.Position(sc.Len())
			}
			tracer().Infof("mismatch: %s", m)
			return m, nil
		}
	}
}
