package tables

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A small automaton for numbers, identifiers and blanks:
//
//   state 1 (start) --[01]--> 2 --[01]--> 2
//                   --[a]---> 3 --[a01]-> 3
//                   --[ ]---> 4 --[ ]---> 4
//
const smallScan = `48,49,97,32
2,2,3,4
2,2,-,-
3,3,3,-
-,-,-,4
`

const smallTokens = "-invalid\n-Illegal character\nnumber\nident\nblank\n"

func TestParseTransitionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	tt, err := ParseTransitionTable(strings.NewReader(smallScan))
	if err != nil {
		t.Fatal(err)
	}
	if tt.States() != 4 {
		t.Errorf("expected 4 states, have %d", tt.States())
	}
	for i, test := range []struct {
		state int
		r     rune
		dest  int
		ok    bool
	}{
		{1, '0', 2, true},
		{1, 'a', 3, true},
		{2, 'a', 0, false},
		{3, '1', 3, true},
		{4, ' ', 4, true},
		{1, 'z', 0, false}, // not in header
		{0, '0', 0, false}, // invalid state
		{5, '0', 0, false}, // no such state
	} {
		dest, ok := tt.Next(test.state, test.r)
		if dest != test.dest || ok != test.ok {
			t.Errorf("test %d: expected (%d,%q) -> %d/%v, have %d/%v", i, test.state, test.r,
				test.dest, test.ok, dest, ok)
		}
	}
	if tt.TransitionCount() != 10 {
		t.Errorf("expected 10 transitions, have %d", tt.TransitionCount())
	}
	if tt.OutDegree(1) != 4 || tt.OutDegree(4) != 1 {
		t.Errorf("unexpected out-degrees %d, %d", tt.OutDegree(1), tt.OutDegree(4))
	}
}

func TestParseTransitionTableColumnOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	permuted := "32,97,49,48\n4,3,2,2\n-,-,2,2\n-,3,3,3\n4,-,-,-\n"
	tt1, err1 := ParseTransitionTable(strings.NewReader(smallScan))
	tt2, err2 := ParseTransitionTable(strings.NewReader(permuted))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	for state := 1; state <= 4; state++ {
		for _, r := range "01a " {
			d1, _ := tt1.Next(state, r)
			d2, _ := tt2.Next(state, r)
			if d1 != d2 {
				t.Errorf("(%d,%q): column order changed destination %d -> %d", state, r, d1, d2)
			}
		}
	}
	if Fingerprint(tt1, nil, nil) != Fingerprint(tt2, nil, nil) {
		t.Errorf("expected column order not to influence the fingerprint")
	}
}

func TestMalformedTransitionTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	for i, input := range []string{
		"",                      // empty
		"48,49\n",               // no states
		"48,x\n-,-\n",           // header not numeric
		"48,48\n-,-\n",          // duplicate code
		"48,49\n1,1\n1\n",       // ragged row
		"48,49\n3,-\n",          // destination is not a state
		"48,49\n0,-\n",          // state 0 is invalid
		"48\n99999999999999999999\n", // out of range
		"48,49\n1,1\n\n1,1\n",   // interior blank line is a ragged row
		"48,\xff\n1,1\n",        // not UTF-8
	} {
		_, err := ParseTransitionTable(strings.NewReader(input))
		if !errors.Is(err, ErrMalformedTable) {
			t.Errorf("test %d: expected malformed table error, have %v", i, err)
		}
	}
}

func TestTransitionTableCRLFAndDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	input := "48;49\r\n1;-\r\n\r\n\r\n"
	tt, err := ParseTransitionTable(strings.NewReader(input), Delimiter(';'))
	if err != nil {
		t.Fatal(err)
	}
	if dest, ok := tt.Next(1, '0'); !ok || dest != 1 {
		t.Errorf("expected 1 --0--> 1, have %d/%v", dest, ok)
	}
	if tt.States() != 1 {
		t.Errorf("expected trailing blank lines to be ignored, have %d states", tt.States())
	}
}

func TestParseTokenTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	tok, err := ParseTokenTable(strings.NewReader("-invalid\n-Bad thing,ignored\nnumber,x,y\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tok.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d", tok.Len())
	}
	e, _ := tok.Entry(1)
	if !e.IsError() || e.Message() != "Bad thing" || e.Kind() != "" {
		t.Errorf("expected error entry 'Bad thing', have %v", e)
	}
	e, _ = tok.Entry(2)
	if e.IsError() || e.Kind() != "number" || e.Message() != "" {
		t.Errorf("expected kind 'number', have %v", e)
	}
	if _, ok := tok.Entry(3); ok {
		t.Errorf("expected no entry for state 3")
	}
	if _, err := ParseTokenTable(strings.NewReader("-invalid\n\nnumber\n")); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("expected empty entry to be malformed, have %v", err)
	}
	if _, err := ParseTokenTable(strings.NewReader("\n\n")); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("expected empty token table to be malformed, have %v", err)
	}
}

func TestTokenTableKinds(t *testing.T) {
	tok, err := NewTokenTable("-invalid", "-start", "number", "ident", "number", "-bad")
	if err != nil {
		t.Fatal(err)
	}
	kinds := tok.Kinds()
	if len(kinds) != 2 || kinds[0] != "number" || kinds[1] != "ident" {
		t.Errorf("expected kinds [number ident], have %v", kinds)
	}
}

func TestParseKeywordSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	kw, err := ParseKeywordSet(strings.NewReader("while\nif,comment\n\nelse\n"))
	if err != nil {
		t.Fatal(err)
	}
	if kw.Size() != 3 {
		t.Errorf("expected 3 keywords, have %d: %v", kw.Size(), kw.Words())
	}
	if !kw.Contains("if") || kw.Contains("comment") || kw.Contains("") {
		t.Errorf("keyword set membership wrong: %v", kw.Words())
	}
	words := kw.Words()
	if strings.Join(words, " ") != "else if while" {
		t.Errorf("expected sorted words, have %v", words)
	}
	var nilset *KeywordSet
	if nilset.Contains("if") || nilset.Size() != 0 {
		t.Errorf("nil keyword set should be empty")
	}
}

func TestLoadFromFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	dir := t.TempDir()
	scan := filepath.Join(dir, "scan.csv")
	if err := os.WriteFile(scan, []byte(smallScan), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTransitionTable(scan); err != nil {
		t.Errorf("expected table to load, have %v", err)
	}
	_, err := LoadTransitionTable(filepath.Join(dir, "missing.csv"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, have %v", err)
	}
	fsys := fstest.MapFS{
		"t/token.csv":   {Data: []byte(smallTokens)},
		"t/keyword.csv": {Data: []byte("a\n")},
	}
	if tok, err := LoadTokenTableFS(fsys, "t/token.csv"); err != nil || tok.Len() != 5 {
		t.Errorf("expected 5 token entries from FS, have %v / %v", tok, err)
	}
	if kw, err := LoadKeywordSetFS(fsys, "t/keyword.csv"); err != nil || !kw.Contains("a") {
		t.Errorf("expected keyword 'a' from FS, have %v / %v", kw, err)
	}
}

func TestWriteAndReparse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.tables")
	defer teardown()
	//
	tt, _ := ParseTransitionTable(strings.NewReader(smallScan))
	tok, _ := ParseTokenTable(strings.NewReader(smallTokens))
	kw := NewKeywordSet("b", "a")
	fp := Fingerprint(tt, tok, kw)
	var b1, b2, b3 bytes.Buffer
	if err := WriteTransitionTable(&b1, tt); err != nil {
		t.Fatal(err)
	}
	if b1.String() != smallScan {
		t.Errorf("expected transition table to be written as read, have\n%s", b1.String())
	}
	if err := WriteTokenTable(&b2, tok); err != nil {
		t.Fatal(err)
	}
	if err := WriteKeywordSet(&b3, kw); err != nil {
		t.Fatal(err)
	}
	tt2, err1 := ParseTransitionTable(&b1)
	tok2, err2 := ParseTokenTable(&b2)
	kw2, err3 := ParseKeywordSet(&b3)
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("cannot re-parse written tables: %v %v %v", err1, err2, err3)
	}
	if Fingerprint(tt2, tok2, kw2) != fp {
		t.Errorf("expected re-parsed tables to have the same fingerprint")
	}
	if Fingerprint(tt2, tok2, NewKeywordSet("a")) == fp {
		t.Errorf("expected fingerprint to change with the keyword set")
	}
}
