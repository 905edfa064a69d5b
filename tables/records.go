package tables

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrMalformedTable is returned (wrapped) for table files with invalid content.
var ErrMalformedTable = errors.New("malformed table")

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedTable, fmt.Sprintf(format, args...))
}

// DefaultDelimiter separates fields of a table record.
const DefaultDelimiter = ','

// --- Loader options --------------------------------------------------------

// Option configures a table loader.
type Option func(*options)

type options struct {
	delim string
}

// Delimiter sets the field delimiter for table records. The default is a comma.
func Delimiter(d rune) Option {
	return func(o *options) {
		if d != 0 && d != '\n' && d != '\r' {
			o.delim = string(d)
		}
	}
}

func collect(opts []Option) options {
	o := options{delim: string(DefaultDelimiter)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- Records ---------------------------------------------------------------

// readRecords reads the whole input, splits it at line breaks and then every line
// at the field delimiter. Trailing blank lines are dropped, as are carriage
// returns at the end of lines.
func readRecords(r io.Reader, delim string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read table: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, malformed("table is not valid UTF-8")
	}
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	records := make([][]string, len(lines))
	for i, line := range lines {
		records[i] = strings.Split(line, delim)
	}
	tracer().Debugf("read %d table records", len(records))
	return records, nil
}

func writeRecords(w io.Writer, records [][]string, delim string) error {
	for _, rec := range records {
		if _, err := io.WriteString(w, strings.Join(rec, delim)+"\n"); err != nil {
			return fmt.Errorf("cannot write table: %w", err)
		}
	}
	return nil
}

// loadFile opens a table file in fsys (or the OS file system if fsys is nil)
// and hands it to a parser.
func loadFile[T any](fsys fs.FS, path string, parse func(io.Reader, ...Option) (T, error),
	opts []Option) (T, error) {
	//
	var zero T
	var f io.ReadCloser
	var err error
	if fsys == nil {
		f, err = os.Open(path)
	} else {
		f, err = fsys.Open(path)
	}
	if err != nil {
		tracer().Errorf("cannot open table %q: %v", path, err)
		return zero, fmt.Errorf("cannot open table: %w", err)
	}
	defer f.Close()
	t, err := parse(f, opts...)
	if err != nil {
		tracer().Errorf("table %q: %v", path, err)
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded table %q", path)
	return t, nil
}
