package lexmach

import (
	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/tables"
)

// Rule is a regular expression for a token kind.
type Rule struct {
	Kind    dfalex.Kind
	Pattern string
}

// DefaultRules returns the regular expressions of the default language
// (see package deflang), in order of precedence.
func DefaultRules() []Rule {
	return []Rule{
		{"whiteSpace", `( |\t|\n|\r)+`},
		{"comment", `//[^\n]*`},
		{"comment", `/\*([^\*]|\*+[^\*/])*\*+/`},
		{"identifier", `[a-zA-Z_][a-zA-Z0-9_]*`},
		{"floatLiteral", `[0-9]+\.[0-9]*([eE](\+|\-)?[0-9]+)?`},
		{"floatLiteral", `\.[0-9]+([eE](\+|\-)?[0-9]+)?`},
		{"floatLiteral", `[0-9]+[eE](\+|\-)?[0-9]+`},
		{"intLiteral", `0[xX][0-9a-fA-F]+`},
		{"intLiteral", `0[0-7]*`},
		{"intLiteral", `[1-9][0-9]*`},
		{"charLiteral", `'([^'\\\n]|\\[^\n])'`},
		{"stringLiteral", `"([^"\\\n]|\\[^\n])*"`},
	}
}

// DefaultLiterals returns the operators and punctuators of the default language.
func DefaultLiterals() []Literal {
	return []Literal{
		{"+", "plus"}, {"++", "increment"}, {"+=", "plusAssign"},
		{"-", "minus"}, {"--", "decrement"}, {"-=", "minusAssign"}, {"->", "arrow"},
		{"*", "star"}, {"*=", "starAssign"},
		{"/", "slash"}, {"/=", "slashAssign"},
		{"%", "percent"}, {"%=", "percentAssign"},
		{"=", "assign"}, {"==", "equal"},
		{"!", "not"}, {"!=", "notEqual"},
		{"<", "less"}, {"<=", "lessEqual"}, {"<<", "shiftLeft"}, {"<<=", "shiftLeftAssign"},
		{">", "greater"}, {">=", "greaterEqual"}, {">>", "shiftRight"}, {">>=", "shiftRightAssign"},
		{"&", "ampersand"}, {"&&", "logicalAnd"}, {"&=", "andAssign"},
		{"|", "pipe"}, {"||", "logicalOr"}, {"|=", "orAssign"},
		{"^", "caret"}, {"^=", "xorAssign"},
		{"~", "tilde"}, {"?", "question"}, {":", "colon"}, {";", "semicolon"}, {",", "comma"},
		{".", "period"},
		{"(", "leftParen"}, {")", "rightParen"},
		{"[", "leftBracket"}, {"]", "rightBracket"},
		{"{", "leftBrace"}, {"}", "rightBrace"},
	}
}

// DefaultLanguage creates a reference lexer for the default language, using a
// given set of reserved words.
func DefaultLanguage(keywords *tables.KeywordSet) (*LMAdapter, error) {
	init := func(lm *LMAdapter) {
		for _, rule := range DefaultRules() {
			lm.Add(rule.Kind, rule.Pattern)
		}
	}
	return NewLMAdapter(init, DefaultLiterals(), keywords)
}
