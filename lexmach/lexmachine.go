package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/tables"
	"github.com/npillmayer/dfalex/tokenizer"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// Literal is a fixed input string, like an operator, and the token kind it is
// reported with.
type Literal struct {
	Text string
	Kind dfalex.Kind
}

// LMAdapter is a lexmachine adapter to use lexmachine as a reference scanner.
type LMAdapter struct {
	Lexer    *lexmachine.Lexer
	kinds    []dfalex.Kind       // token type -> kind
	ids      map[dfalex.Kind]int // kind -> token type
	keywords *tables.KeywordSet
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer,
// which adds regular expressions with Add, a list of literals and a set of
// reserved words. Lexemes matching a reserved word are reported with the word
// as their kind, regardless of the pattern they were matched by.
//
// Patterns added by init take precedence over literals for matches of equal
// length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*LMAdapter), literals []Literal, keywords *tables.KeywordSet) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer:    lexmachine.NewLexer(),
		ids:      make(map[dfalex.Kind]int),
		keywords: keywords,
	}
	for _, w := range keywords.Words() {
		adapter.id(dfalex.Kind(w))
	}
	init(adapter)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit.Text, ""), "\\")
		adapter.Add(lit.Kind, r)
	}
	if err := compile(adapter.Lexer); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled reference lexer for %d token kinds", len(adapter.kinds))
	return adapter, nil
}

// compile compiles the DFA of a lexer. Some malformed patterns, such as
// unbalanced parentheses, pass lexmachine's parser and make Compile panic.
// Such a panic is returned as an error.
func compile(lexer *lexmachine.Lexer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot compile DFA: %v", r)
		}
	}()
	return lexer.Compile()
}

// Add adds a regular expression for a token kind.
func (lm *LMAdapter) Add(kind dfalex.Kind, pattern string) {
	lm.Lexer.Add([]byte(pattern), lm.MakeToken(kind))
}

func (lm *LMAdapter) id(kind dfalex.Kind) int {
	if id, ok := lm.ids[kind]; ok {
		return id
	}
	id := len(lm.kinds)
	lm.kinds = append(lm.kinds, kind)
	lm.ids[kind] = id
	return id
}

// Kind returns the token kind for a lexmachine token type.
func (lm *LMAdapter) Kind(id int) dfalex.Kind {
	if id < 0 || id >= len(lm.kinds) {
		return dfalex.ErrorKind
	}
	return lm.kinds[id]
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, lm, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	adapter *LMAdapter
	Error   func(error)
}

var _ tokenizer.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. Spans of tokens are byte
// offsets into the input. Input lexmachine cannot match is reported to the
// error handler and skipped.
func (lms *LMScanner) NextToken() dfalex.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return tokenizer.MakeToken(dfalex.EOFKind, "", dfalex.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return tokenizer.MakeToken(
		lms.adapter.Kind(token.Type),
		string(token.Lexeme),
		dfalex.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is an action which wraps a scanned match into a token of the given
// kind, or of the keyword's kind if the match is a reserved word.
func (lm *LMAdapter) MakeToken(kind dfalex.Kind) lexmachine.Action {
	id := lm.id(kind)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		if lm.keywords.Contains(lexeme) {
			return s.Token(lm.id(dfalex.Kind(lexeme)), lexeme, m), nil
		}
		return s.Token(id, lexeme, m), nil
	}
}
