package tables

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// KeywordSet is a set of reserved words. A lexeme matching a reserved word is
// reported with the word itself as its token kind.
type KeywordSet struct {
	words *treeset.Set
}

// NewKeywordSet creates a keyword set from a list of words. Empty words are
// ignored.
func NewKeywordSet(words ...string) *KeywordSet {
	kw := &KeywordSet{words: treeset.NewWith(utils.StringComparator)}
	for _, w := range words {
		if w != "" {
			kw.words.Add(w)
		}
	}
	return kw
}

// Contains is a predicate: is w a reserved word?
func (kw *KeywordSet) Contains(w string) bool {
	if kw == nil || w == "" {
		return false
	}
	return kw.words.Contains(w)
}

// Size returns the number of reserved words.
func (kw *KeywordSet) Size() int {
	if kw == nil {
		return 0
	}
	return kw.words.Size()
}

// Words returns the reserved words in lexicographic order.
func (kw *KeywordSet) Words() []string {
	if kw == nil {
		return nil
	}
	values := kw.words.Values()
	words := make([]string, len(values))
	for i, v := range values {
		words[i] = v.(string)
	}
	return words
}

func (kw *KeywordSet) String() string {
	return fmt.Sprintf("<keywords %d>", kw.Size())
}

// ParseKeywordSet reads a keyword set from delimited text. The first field of
// every row is a reserved word; blank rows are skipped.
func ParseKeywordSet(r io.Reader, opts ...Option) (*KeywordSet, error) {
	o := collect(opts)
	records, err := readRecords(r, o.delim)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(records))
	for _, rec := range records {
		words = append(words, rec[0])
	}
	return NewKeywordSet(words...), nil
}

// LoadKeywordSet reads a keyword set from a file.
func LoadKeywordSet(path string, opts ...Option) (*KeywordSet, error) {
	return loadFile(nil, path, ParseKeywordSet, opts)
}

// LoadKeywordSetFS reads a keyword set from a file in fsys.
func LoadKeywordSetFS(fsys fs.FS, path string, opts ...Option) (*KeywordSet, error) {
	return loadFile(fsys, path, ParseKeywordSet, opts)
}

// WriteKeywordSet writes the reserved words, one per line, in lexicographic order.
func WriteKeywordSet(w io.Writer, kw *KeywordSet, opts ...Option) error {
	o := collect(opts)
	words := kw.Words()
	records := make([][]string, len(words))
	for i, word := range words {
		records[i] = []string{word}
	}
	return writeRecords(w, records, o.delim)
}
