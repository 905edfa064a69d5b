/*
Package tokenizer wraps a table-driven scanner into a stream of tokens.

A scanner produces one result per call and leaves all policies to its clients.
A Stream is such a client: it loops over scan steps, drops tokens of kinds the
client is not interested in (typically whitespace and comments), routes lexical
errors to an error handler and reports end of input as a token of kind
dfalex.EOFKind.

	sc := scanner.New()
	deflang.Install(sc)
	sc.SetSourceText(input)
	stream := tokenizer.New(sc, tokenizer.SkipKinds("whiteSpace", "comment"))
	for tok := stream.NextToken(); tok.Kind() != dfalex.EOFKind; tok = stream.NextToken() {
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenizer

import (
	"fmt"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dfalex.tokenizer'.
func tracer() tracing.Trace {
	return tracing.Select("dfalex.tokenizer")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() dfalex.Token
	SetErrorHandler(func(error))
}

// LexicalError is handed to error handlers for every lexical error. Line and
// column refer to the start of the offending input.
type LexicalError struct {
	Message string
	Span    dfalex.Span
	Line    int
	Column  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Stream is a Tokenizer backed by a table-driven scanner. Create one with New.
type Stream struct {
	sc          *scanner.Scanner
	skip        map[dfalex.Kind]bool
	skipErrors  bool
	stopOnError bool
	done        bool
	Error       func(error) // error handler
}

var _ Tokenizer = (*Stream)(nil)

// Default error reporting function for token streams
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// New creates a token stream for a scanner. The scanner should have its tables
// and source installed; scanning continues at the scanner's cursor.
func New(sc *scanner.Scanner, opts ...Option) *Stream {
	s := &Stream{
		sc:    sc,
		skip:  make(map[dfalex.Kind]bool),
		Error: logError,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetErrorHandler sets an error handler for the stream.
func (s *Stream) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Lexical errors are passed to the error handler as *LexicalError. Unless errors
// are skipped, they are returned as tokens of kind dfalex.ErrorKind, with the
// diagnostic as lexeme. If the scanner is not ready or its tables are
// inconsistent, the error is passed to the error handler and the stream ends.
func (s *Stream) NextToken() dfalex.Token {
	for !s.done && !s.sc.EOF() {
		if err := s.sc.NextToken(); err != nil {
			s.Error(err)
			s.done = true
			return MakeToken(dfalex.ErrorKind, err.Error(), dfalex.Span{})
		}
		r := s.sc.Result()
		if r.Err {
			line, col := s.sc.Position(int(r.Span.From()))
			s.Error(&LexicalError{Message: r.Message, Span: r.Span, Line: line, Column: col})
			if s.stopOnError {
				s.done = true
			}
			if s.skipErrors {
				continue
			}
			return MakeToken(dfalex.ErrorKind, r.Message, r.Span)
		}
		if s.skip[r.Kind] {
			continue
		}
		return MakeToken(r.Kind, r.Lexeme, r.Span)
	}
	tracer().Debugf("token stream reached end of input")
	end := uint64(s.sc.Cursor())
	return MakeToken(dfalex.EOFKind, "", dfalex.Span{end, end})
}

// Position returns line and column of the start of a token's span.
func (s *Stream) Position(tok dfalex.Token) (line, col int) {
	return s.sc.Position(int(tok.Span().From()))
}

// Collect drains a tokenizer and returns all tokens up to, but not including,
// the end of input.
func Collect(t Tokenizer) []dfalex.Token {
	var tokens []dfalex.Token
	for tok := t.NextToken(); tok.Kind() != dfalex.EOFKind; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, produced by token streams
// as well as by the lexmachine reference lexer.
type DefaultToken struct {
	kind   dfalex.Kind
	lexeme string
	span   dfalex.Span
}

// MakeToken creates a token.
func MakeToken(kind dfalex.Kind, lexeme string, span dfalex.Span) DefaultToken {
	return DefaultToken{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) Kind() dfalex.Kind {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() dfalex.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s %q %s", t.kind, t.lexeme, t.span)
}

// --- Stream options --------------------------------------------------------

// Option configures a token stream.
type Option func(s *Stream)

// SkipKinds sets token kinds which will not be passed to clients.
func SkipKinds(kinds ...dfalex.Kind) Option {
	return func(s *Stream) {
		for _, k := range kinds {
			s.skip[k] = true
		}
	}
}

// SkipErrors sets or clears option SkipErrors: lexical errors are reported to
// the error handler only, not returned as tokens.
func SkipErrors(b bool) Option {
	return func(s *Stream) {
		s.skipErrors = b
	}
}

// StopOnError sets or clears option StopOnError: the stream ends after the
// first lexical error.
func StopOnError(b bool) Option {
	return func(s *Stream) {
		s.stopOnError = b
	}
}
