package tables

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/dfalex/tables/sparse"
)

// StartState is the state every scan starts in. State 0 is invalid.
const StartState = 1

// NoTransition is written to cells without a destination state.
const NoTransition = "-"

// TransitionTable is the transition function of a DFA: it maps a state and an
// input character to a destination state.
type TransitionTable struct {
	codes   []rune            // character codes in column order
	columns map[rune]int      // character code -> column
	states  int               // number of states; rows are 1…states
	matrix  *sparse.IntMatrix // row = state, col = column; null value 0
}

// Next returns the destination for (state, r), and false if there is no
// transition. Characters missing from the header never have a transition.
func (tt *TransitionTable) Next(state int, r rune) (int, bool) {
	col, ok := tt.columns[r]
	if !ok || state < StartState || state > tt.states {
		return 0, false
	}
	dest := tt.matrix.Value(state, col)
	return int(dest), dest != 0
}

// States returns the number of automaton states (not counting state 0).
func (tt *TransitionTable) States() int {
	return tt.states
}

// Codes returns the character codes of the table header, in column order.
func (tt *TransitionTable) Codes() []rune {
	codes := make([]rune, len(tt.codes))
	copy(codes, tt.codes)
	return codes
}

// TransitionCount returns the number of (state, character) cells holding a
// destination.
func (tt *TransitionTable) TransitionCount() int {
	return tt.matrix.ValueCount()
}

// OutDegree returns the number of characters with a transition out of state.
func (tt *TransitionTable) OutDegree(state int) int {
	if state < StartState || state > tt.states {
		return 0
	}
	return tt.matrix.RowCount(state)
}

func (tt *TransitionTable) String() string {
	return fmt.Sprintf("<transitions %d states × %d chars, %d entries>",
		tt.states, len(tt.codes), tt.matrix.ValueCount())
}

// ParseTransitionTable reads a transition table from delimited text.
//
// The header row must hold distinct, non-negative character codes. Every state
// row must have exactly one cell per header column. Numeric cells must denote
// an existing state; any other cell content means "no transition".
func ParseTransitionTable(r io.Reader, opts ...Option) (*TransitionTable, error) {
	o := collect(opts)
	records, err := readRecords(r, o.delim)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, malformed("transition table is empty")
	}
	tt := &TransitionTable{
		codes:   make([]rune, len(records[0])),
		columns: make(map[rune]int, len(records[0])),
		states:  len(records) - 1,
	}
	for j, cell := range records[0] {
		c, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil || c < 0 || c > unicode.MaxRune {
			return nil, malformed("header column %d: %q is not a character code", j+1, cell)
		}
		if _, dup := tt.columns[rune(c)]; dup {
			return nil, malformed("header column %d: duplicate character code %d", j+1, c)
		}
		tt.codes[j] = rune(c)
		tt.columns[rune(c)] = j
	}
	if tt.states == 0 {
		return nil, malformed("transition table has no states")
	}
	tt.matrix = sparse.NewIntMatrix(tt.states+1, len(tt.codes), 0)
	for state := StartState; state <= tt.states; state++ {
		row := records[state]
		if len(row) != len(tt.codes) {
			return nil, malformed("state %d: expected %d cells, have %d", state, len(tt.codes), len(row))
		}
		for j, cell := range row {
			dest, err := strconv.Atoi(strings.TrimSpace(cell))
			if errors.Is(err, strconv.ErrRange) {
				return nil, malformed("state %d, character code %d: destination out of range", state, tt.codes[j])
			} else if err != nil {
				continue // sentinel
			}
			if dest < StartState || dest > tt.states {
				return nil, malformed("state %d, character code %d: destination %d is not a state",
					state, tt.codes[j], dest)
			}
			tt.matrix.Set(state, j, int32(dest))
		}
	}
	tracer().Debugf("parsed %s", tt)
	return tt, nil
}

// LoadTransitionTable reads a transition table from a file.
func LoadTransitionTable(path string, opts ...Option) (*TransitionTable, error) {
	return loadFile(nil, path, ParseTransitionTable, opts)
}

// LoadTransitionTableFS reads a transition table from a file in fsys.
func LoadTransitionTableFS(fsys fs.FS, path string, opts ...Option) (*TransitionTable, error) {
	return loadFile(fsys, path, ParseTransitionTable, opts)
}

// WriteTransitionTable writes tt as delimited text, in the format read by
// ParseTransitionTable.
func WriteTransitionTable(w io.Writer, tt *TransitionTable, opts ...Option) error {
	o := collect(opts)
	records := make([][]string, tt.states+1)
	records[0] = make([]string, len(tt.codes))
	for j, c := range tt.codes {
		records[0][j] = strconv.Itoa(int(c))
	}
	for state := StartState; state <= tt.states; state++ {
		records[state] = make([]string, len(tt.codes))
		for j := range records[state] {
			records[state][j] = NoTransition
		}
	}
	tt.matrix.Each(func(state, col int, dest int32) {
		records[state][col] = strconv.Itoa(int(dest))
	})
	return writeRecords(w, records, o.delim)
}
