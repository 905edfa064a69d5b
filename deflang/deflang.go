/*
Package deflang embeds scanner tables for a C-like default language.

The language covers C's lexical structure: identifiers and keywords, decimal,
octal and hexadecimal integers, floating point literals, character and string
literals with escapes, line and block comments, and C's operators and
punctuators. Operators are reported with descriptive kinds, e.g.

	+    plus
	++   increment
	<<=  shiftLeftAssign
	->   arrow

Malformed literals lead to error-accepting states with diagnostics such as
"Illegal octal number" or "Unterminated string literal".

The tables are plain files in the same format clients would load from disk, so
they may be exported, edited and loaded again (see tables.Write…).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deflang

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/tables"
)

// Names of the embedded table files.
const (
	ScanFile    = "scan.csv"
	TokenFile   = "token.csv"
	KeywordFile = "keyword.csv"
)

// Token kinds of the default language which clients commonly filter or
// inspect. Operators and keywords are not listed.
const (
	WhiteSpace    dfalex.Kind = "whiteSpace"
	Comment       dfalex.Kind = "comment"
	Identifier    dfalex.Kind = "identifier"
	IntLiteral    dfalex.Kind = "intLiteral"
	FloatLiteral  dfalex.Kind = "floatLiteral"
	CharLiteral   dfalex.Kind = "charLiteral"
	StringLiteral dfalex.Kind = "stringLiteral"
)

//go:embed scan.csv token.csv keyword.csv
var files embed.FS

// FS returns the file system holding the embedded table files.
func FS() fs.FS {
	return files
}

var parsed struct {
	once sync.Once
	tt   *tables.TransitionTable
	tok  *tables.TokenTable
	kw   *tables.KeywordSet
	err  error
}

// Tables returns the parsed default tables. Tables are immutable and are
// shared between callers.
func Tables() (*tables.TransitionTable, *tables.TokenTable, *tables.KeywordSet, error) {
	parsed.once.Do(func() {
		if parsed.tt, parsed.err = tables.LoadTransitionTableFS(files, ScanFile); parsed.err != nil {
			return
		}
		if parsed.tok, parsed.err = tables.LoadTokenTableFS(files, TokenFile); parsed.err != nil {
			return
		}
		parsed.kw, parsed.err = tables.LoadKeywordSetFS(files, KeywordFile)
	})
	return parsed.tt, parsed.tok, parsed.kw, parsed.err
}

// Target receives tables. *scanner.Scanner is a Target.
type Target interface {
	SetTransitionTable(*tables.TransitionTable)
	SetTokenTable(*tables.TokenTable)
	SetKeywordSet(*tables.KeywordSet)
}

// Install installs the default tables into a target.
func Install(t Target) error {
	tt, tok, kw, err := Tables()
	if err != nil {
		return err
	}
	t.SetTransitionTable(tt)
	t.SetTokenTable(tok)
	t.SetKeywordSet(kw)
	return nil
}
