package scanner

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/tables"
	"golang.org/x/exp/slices"
)

// ErrNotReady is returned when scanning is requested before all tables and the
// source are present.
var ErrNotReady = errors.New("scanner is not ready")

// ErrInconsistentTables is returned when the token table does not match the
// states of the transition table.
var ErrInconsistentTables = errors.New("scanner tables are inconsistent")

// ErrMalformedSource is returned for sources which are not valid UTF-8.
var ErrMalformedSource = errors.New("source is not valid UTF-8")

// Result is the outcome of the most recent scan step. Either Kind and Lexeme
// are set, or Err and Message; the other side is cleared.
type Result struct {
	Kind    dfalex.Kind // token kind, or the keyword itself
	Lexeme  string
	Err     bool   // a lexical error occurred
	Message string // diagnostic for a lexical error
	Span    dfalex.Span
}

func (r Result) String() string {
	if r.Err {
		return fmt.Sprintf("error %s: %s", r.Span, r.Message)
	}
	return fmt.Sprintf("%s %q %s", r.Kind, r.Lexeme, r.Span)
}

// Scanner is a table-driven scanner holding a single scanning session: the
// tables, the source buffer, a cursor into the buffer and the most recent scan
// result.
type Scanner struct {
	trans    *tables.TransitionTable
	tokens   *tables.TokenTable
	keywords *tables.KeywordSet
	source   []rune // trimmed source text
	lines    []int  // offsets of line starts in source
	cursor   int    // 0 ≤ cursor ≤ len(source)
	hasSrc   bool
	result   Result
	tableOpt []tables.Option
	panicky  bool
}

// Option configures a scanner.
type Option func(*Scanner)

// TableOptions sets options used for loading tables from files.
func TableOptions(opts ...tables.Option) Option {
	return func(sc *Scanner) {
		sc.tableOpt = append(sc.tableOpt, opts...)
	}
}

// PanicOnInconsistentTables makes NextToken panic instead of returning
// ErrInconsistentTables. The same effect is achieved by setting the global
// configuration flag 'panic-on-inconsistent-tables'.
func PanicOnInconsistentTables(b bool) Option {
	return func(sc *Scanner) {
		sc.panicky = b
	}
}

// New creates a scanner without tables and source.
func New(opts ...Option) *Scanner {
	sc := &Scanner{}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// --- Loading ---------------------------------------------------------------

// LoadTransitionTable loads the transition table from a file. If loading fails,
// the previous transition table remains in place. On success scanning restarts
// at the beginning of the source.
func (sc *Scanner) LoadTransitionTable(path string) error {
	tt, err := tables.LoadTransitionTable(path, sc.tableOpt...)
	if err != nil {
		return err
	}
	sc.SetTransitionTable(tt)
	return nil
}

// LoadTokenTable loads the token table from a file. If loading fails,
// the previous token table remains in place. On success scanning restarts
// at the beginning of the source.
func (sc *Scanner) LoadTokenTable(path string) error {
	tok, err := tables.LoadTokenTable(path, sc.tableOpt...)
	if err != nil {
		return err
	}
	sc.SetTokenTable(tok)
	return nil
}

// LoadKeywordTable loads the keyword set from a file. If loading fails,
// the previous keyword set remains in place. On success scanning restarts
// at the beginning of the source.
func (sc *Scanner) LoadKeywordTable(path string) error {
	kw, err := tables.LoadKeywordSet(path, sc.tableOpt...)
	if err != nil {
		return err
	}
	sc.SetKeywordSet(kw)
	return nil
}

// LoadSource reads a source file. Leading and trailing whitespace is removed.
// If loading fails, the previous source remains in place. On success scanning
// restarts at the beginning of the new source.
func (sc *Scanner) LoadSource(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		tracer().Errorf("cannot read source %q: %v", path, err)
		return fmt.Errorf("cannot read source: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", path, ErrMalformedSource)
	}
	sc.SetSourceText(string(data))
	tracer().Infof("loaded source %q, %d characters", path, len(sc.source))
	return nil
}

// SetTransitionTable installs a transition table. A nil table is ignored.
func (sc *Scanner) SetTransitionTable(tt *tables.TransitionTable) {
	if tt == nil {
		return
	}
	sc.trans = tt
	sc.Restart()
}

// SetTokenTable installs a token table. A nil table is ignored.
func (sc *Scanner) SetTokenTable(tok *tables.TokenTable) {
	if tok == nil {
		return
	}
	sc.tokens = tok
	sc.Restart()
}

// SetKeywordSet installs a set of reserved words. A nil set is ignored.
func (sc *Scanner) SetKeywordSet(kw *tables.KeywordSet) {
	if kw == nil {
		return
	}
	sc.keywords = kw
	sc.Restart()
}

// SetSourceText installs a source text. Leading and trailing whitespace is
// removed.
func (sc *Scanner) SetSourceText(text string) {
	sc.source = []rune(strings.TrimSpace(text))
	sc.lines = sc.lines[:0]
	sc.lines = append(sc.lines, 0)
	for i, r := range sc.source {
		if r == '\n' {
			sc.lines = append(sc.lines, i+1)
		}
	}
	sc.hasSrc = true
	sc.Restart()
}

// Tables returns the tables currently in use. Any of them may be nil.
func (sc *Scanner) Tables() (*tables.TransitionTable, *tables.TokenTable, *tables.KeywordSet) {
	return sc.trans, sc.tokens, sc.keywords
}

// Fingerprint returns a content hash of the tables currently in use.
func (sc *Scanner) Fingerprint() string {
	return tables.Fingerprint(sc.trans, sc.tokens, sc.keywords)
}

// Ready returns ErrNotReady (wrapped) if any of the tables or the source is
// missing.
func (sc *Scanner) Ready() error {
	var missing []string
	if sc.trans == nil {
		missing = append(missing, "transition table")
	}
	if sc.tokens == nil {
		missing = append(missing, "token table")
	}
	if sc.keywords == nil {
		missing = append(missing, "keyword table")
	}
	if !sc.hasSrc {
		missing = append(missing, "source")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotReady, strings.Join(missing, ", "))
	}
	return nil
}

// --- Session ---------------------------------------------------------------

// EOF is true if the cursor is at the end of the source.
func (sc *Scanner) EOF() bool {
	return sc.cursor >= len(sc.source)
}

// Restart moves the cursor back to the start of the source. Tables and source
// are not reloaded.
func (sc *Scanner) Restart() {
	sc.cursor = 0
}

// Cursor returns the position of the next character to read, as a character
// offset into the trimmed source.
func (sc *Scanner) Cursor() int {
	return sc.cursor
}

// Len returns the length of the trimmed source in characters.
func (sc *Scanner) Len() int {
	return len(sc.source)
}

// Position returns line and column (both starting at 1) for a character offset
// into the trimmed source. Offsets out of range are clipped.
func (sc *Scanner) Position(offset int) (line, col int) {
	if len(sc.lines) == 0 {
		return 1, offset + 1
	}
	offset = max(0, min(offset, len(sc.source)))
	i, found := slices.BinarySearch(sc.lines, offset)
	if !found {
		i--
	}
	return i + 1, offset - sc.lines[i] + 1
}

// Result returns the outcome of the most recent scan step.
func (sc *Scanner) Result() Result {
	return sc.result
}

// Token returns the token kind of the most recent scan step, or "" after a
// lexical error.
func (sc *Scanner) Token() dfalex.Kind {
	return sc.result.Kind
}

// Lexeme returns the lexeme of the most recent scan step, or "" after a
// lexical error.
func (sc *Scanner) Lexeme() string {
	return sc.result.Lexeme
}

// Failed is true if the most recent scan step produced a lexical error.
func (sc *Scanner) Failed() bool {
	return sc.result.Err
}

// ErrorMessage returns the diagnostic of the most recent scan step, or "".
func (sc *Scanner) ErrorMessage() string {
	return sc.result.Message
}
