package tables

import (
	"fmt"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// digest is the hashed representation of a set of tables. Column order of a
// transition table is irrelevant, so transitions are recorded per character code.
type digest struct {
	Codes       []int32
	Transitions []string
	Tokens      []string
	Keywords    []string
}

// Fingerprint returns a content hash for a triple of tables. Any of the tables
// may be nil. Two transition tables differing only in column order have the
// same fingerprint.
func Fingerprint(tt *TransitionTable, tok *TokenTable, kw *KeywordSet) string {
	d := digest{}
	if tt != nil {
		codes := tt.Codes()
		slices.Sort(codes)
		d.Codes = codes
		for state := StartState; state <= tt.states; state++ {
			for _, c := range codes {
				if dest, ok := tt.Next(state, c); ok {
					d.Transitions = append(d.Transitions, fmt.Sprintf("%d:%d:%d", state, c, dest))
				}
			}
		}
	}
	if tok != nil {
		d.Tokens = make([]string, len(tok.entries))
		for i, e := range tok.entries {
			d.Tokens[i] = e.String()
		}
	}
	d.Keywords = kw.Words()
	h, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash tables: %v", err)
		return ""
	}
	return h
}
