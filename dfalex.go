package dfalex

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// Kind is a token category. Kinds are not pre-defined, as they are read from the
// token table of a scanner. Keywords are reported with their own spelling as kind.
type Kind string

// Pseudo-kinds used by token streams for end of input and for lexical errors.
const (
	EOFKind   Kind = "#eof"
	ErrorKind Kind = "#error"
)

// Tokens represent input tokens. They are usually produced by a scanner.
//
// An example would be a token for a floating point numer:
//
//    Kind    = "floatLiteral"  // category of this token, from the token table
//    Lexeme  = "3.1416"        // lexeme how it appreared in the input
//    Span    = 67…73           // occured from position 67 in the input
//
type Token interface {
	Kind() Kind
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. A span denotes
// a start position and the position just behind the end. Positions are character
// (rune) offsets into the trimmed source.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
