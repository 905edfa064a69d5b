package tables

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ErrorSentinel marks token table entries of error-accepting states.
const ErrorSentinel = '-'

// Entry is a token table entry. It is either a token kind (accepting state) or
// an error message (error-accepting state).
type Entry struct {
	text string
	err  bool
}

// IsError is true for entries of error-accepting states.
func (e Entry) IsError() bool {
	return e.err
}

// Kind returns the token kind of an accepting state, or "" for error entries.
func (e Entry) Kind() string {
	if e.err {
		return ""
	}
	return e.text
}

// Message returns the error message (without sentinel) of an error entry,
// or "" for accepting states.
func (e Entry) Message() string {
	if !e.err {
		return ""
	}
	return e.text
}

func (e Entry) String() string {
	if e.err {
		return string(ErrorSentinel) + e.text
	}
	return e.text
}

func parseEntry(s string) Entry {
	if strings.HasPrefix(s, string(ErrorSentinel)) {
		return Entry{text: s[1:], err: true}
	}
	return Entry{text: s}
}

// TokenTable holds one entry per automaton state, indexed by state number.
// Entry 0 belongs to the unused state 0.
type TokenTable struct {
	entries []Entry
}

// NewTokenTable creates a token table from its textual entries, using the same
// sentinel convention as token table files.
func NewTokenTable(entries ...string) (*TokenTable, error) {
	tt := &TokenTable{entries: make([]Entry, len(entries))}
	for i, s := range entries {
		if s == "" {
			return nil, malformed("row %d: empty token entry", i+1)
		}
		tt.entries[i] = parseEntry(s)
	}
	return tt, nil
}

// Len returns the number of entries, including entry 0.
func (tt *TokenTable) Len() int {
	return len(tt.entries)
}

// Entry returns the entry for a state.
func (tt *TokenTable) Entry(state int) (Entry, bool) {
	if state < 0 || state >= len(tt.entries) {
		return Entry{}, false
	}
	return tt.entries[state], true
}

// Kinds returns the distinct token kinds of accepting states, in order of
// first appearance.
func (tt *TokenTable) Kinds() []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, e := range tt.entries[min(1, len(tt.entries)):] {
		if !e.err && !seen[e.text] {
			seen[e.text] = true
			kinds = append(kinds, e.text)
		}
	}
	return kinds
}

func (tt *TokenTable) String() string {
	return fmt.Sprintf("<token table %d entries>", len(tt.entries))
}

// ParseTokenTable reads a token table from delimited text. Only the first field
// of every row is used.
func ParseTokenTable(r io.Reader, opts ...Option) (*TokenTable, error) {
	o := collect(opts)
	records, err := readRecords(r, o.delim)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, malformed("token table is empty")
	}
	entries := make([]string, len(records))
	for i, rec := range records {
		entries[i] = rec[0]
	}
	return NewTokenTable(entries...)
}

// LoadTokenTable reads a token table from a file.
func LoadTokenTable(path string, opts ...Option) (*TokenTable, error) {
	return loadFile(nil, path, ParseTokenTable, opts)
}

// LoadTokenTableFS reads a token table from a file in fsys.
func LoadTokenTableFS(fsys fs.FS, path string, opts ...Option) (*TokenTable, error) {
	return loadFile(fsys, path, ParseTokenTable, opts)
}

// WriteTokenTable writes tt with one entry per line.
func WriteTokenTable(w io.Writer, tt *TokenTable, opts ...Option) error {
	o := collect(opts)
	records := make([][]string, len(tt.entries))
	for i, e := range tt.entries {
		records[i] = []string{e.String()}
	}
	return writeRecords(w, records, o.delim)
}
