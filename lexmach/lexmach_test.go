package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/deflang"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/npillmayer/dfalex/tables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello nil",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 5}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	init := func(lm *LMAdapter) {
		lm.Lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lm.Add("STRING", `\"[^"]*\"`)
		lm.Add("ID", `([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*`)
		lm.Add("NUM", `[1-9][0-9]*`)
		lm.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	literals := []Literal{{"+", "plus"}, {"=", "assign"}, {",", "comma"}}
	LM, err := NewLMAdapter(init, literals, tables.NewKeywordSet("nil"))
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.Kind() != dfalex.EOFKind {
			t.Logf(" %12s | %15s | @%5d", token.Kind(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
	sc, _ := LM.Scanner("Hello nil")
	if tok := sc.NextToken(); tok.Kind() != "ID" {
		t.Errorf("expected ID, have %v", tok)
	}
	if tok := sc.NextToken(); tok.Kind() != "nil" {
		t.Errorf("expected keyword nil, have %v", tok)
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	init := func(lm *LMAdapter) {
		lm.Add("NUM", `[0-9]+`)
	}
	LM, err := NewLMAdapter(init, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("12#3")
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	if tok := sc.NextToken(); tok.Lexeme() != "12" {
		t.Errorf("expected 12, have %v", tok)
	}
	if tok := sc.NextToken(); tok.Lexeme() != "3" {
		t.Errorf("expected 3, have %v", tok)
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error for unconsumed input, have %d", len(errs))
	}
}

func TestBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	for _, pattern := range []string{`(a|b`, `a*`} {
		init := func(lm *LMAdapter) {
			lm.Add("broken", pattern)
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: expected compile error, adapter panicked: %v", pattern, r)
				}
			}()
			if lm, err := NewLMAdapter(init, nil, nil); err == nil || lm != nil {
				t.Errorf("%s: expected compile error, have %v", pattern, err)
			}
		}()
	}
}

var cSamples = []string{
	"int main(void) {\n  int x = 0x1F, y = 017;\n  float f = 1.5e-3 + .25 - 3.;\n  char c = '\\'';\n" +
		"  /* block ** comment */\n  if (x >= y && y != 0) { x <<= 2; y >>= 1; } // tail\n" +
		"  return x->y ? \"str\\\"ing\" : 'z';\n}",
	"a+++b---c;d%=e^=f|=g&=h||i&&j!k~l",
	"for (i = 0; i < 10; i++) s[i] = i * 2 / 3 % 4;",
	"x.y...z . 5.",
	"struct s { unsigned long long n; };",
	"/***/ /* * / */ 0 00 07 1e10 1E+5 0.5e-0",
}

func defaultPair(t *testing.T) (*scanner.Scanner, *LMAdapter) {
	sc := scanner.New()
	if err := deflang.Install(sc); err != nil {
		t.Fatal(err)
	}
	_, _, kw, _ := deflang.Tables()
	lm, err := DefaultLanguage(kw)
	if err != nil {
		t.Fatalf("cannot compile reference lexer: %v", err)
	}
	return sc, lm
}

func TestCompareDefaultLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	sc, lm := defaultPair(t)
	for i, input := range cSamples {
		m, err := Compare(sc, lm, input)
		if err != nil {
			t.Errorf("sample %d: %v", i, err)
		} else if m != nil {
			t.Errorf("sample %d: %s", i, m)
		}
	}
}

func TestCompareFindsMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	sc, _ := defaultPair(t)
	lm, err := DefaultLanguage(tables.NewKeywordSet("if"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := Compare(sc, lm, "if (x)\n  int y;")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatalf("expected a mismatch")
	}
	if m.Index != 6 || m.Line != 2 || m.Column != 3 {
		t.Errorf("expected mismatch at token 6, 2:3, have %s", m)
	}
	if m.Table.Kind() != "int" || m.Reference.Kind() != "identifier" {
		t.Errorf("unexpected mismatch %s", m)
	}
}

func TestCompareRejectsErroneousInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dfalex.lexmach")
	defer teardown()
	//
	sc, lm := defaultPair(t)
	if _, err := Compare(sc, lm, "x = 03248231;"); !errors.Is(err, ErrLexicalInput) {
		t.Errorf("expected lexical input error, have %v", err)
	}
	if _, err := Compare(scanner.New(), lm, "x"); !errors.Is(err, scanner.ErrNotReady) {
		t.Errorf("expected not-ready error, have %v", err)
	}
}
