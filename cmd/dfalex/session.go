package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/dfalex"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/pterm/pterm"
)

// session drives a scanner on behalf of a user, applying the display policy:
// tokens of skipped kinds are not shown, and the user is told when the end of
// input has been reached.
type session struct {
	sc   *scanner.Scanner
	skip map[dfalex.Kind]bool
	out  io.Writer
	rows []row // scan output so far
}

// row is a line of scan output.
type row struct {
	line, col int
	kind      dfalex.Kind
	text      string // lexeme or error message
	err       bool
}

var escapes = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

func (r row) position() string {
	return fmt.Sprintf("%d:%d", r.line, r.col)
}

func (r row) String() string {
	if r.err {
		return fmt.Sprintf("%-8s %s", r.position(), r.text)
	}
	return fmt.Sprintf("%-8s Token: %-16s Lexeme: %s", r.position(), r.kind, escapes.Replace(r.text))
}

func newSession(sc *scanner.Scanner, skip map[dfalex.Kind]bool, out io.Writer) *session {
	if skip == nil {
		skip = make(map[dfalex.Kind]bool)
	}
	return &session{sc: sc, skip: skip, out: out}
}

// next scans the next token which is not of a skipped kind. If the only tokens
// left are of skipped kinds (e.g., a trailing comment), nothing is shown; with
// warn set, the user is told that the end of input has been reached.
func (s *session) next(warn bool) error {
	if s.sc.EOF() {
		s.warnEOF()
		return nil
	}
	for {
		if err := s.sc.NextToken(); err != nil {
			return err
		}
		if s.sc.Failed() || !s.skip[s.sc.Token()] || s.sc.EOF() {
			break
		}
	}
	if !s.sc.Failed() && s.skip[s.sc.Token()] {
		if warn {
			s.warnEOF()
		}
		return nil
	}
	s.emit(s.sc.Result())
	return nil
}

// auto scans to the end of input.
func (s *session) auto() error {
	if s.sc.EOF() {
		s.warnEOF()
		return nil
	}
	for !s.sc.EOF() {
		if err := s.next(false); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) emit(r scanner.Result) {
	line, col := s.sc.Position(int(r.Span.From()))
	rw := row{line: line, col: col, kind: r.Kind, text: r.Lexeme}
	if r.Err {
		rw.err, rw.text = true, r.Message
	}
	s.rows = append(s.rows, rw)
	if s.out == nil {
		return
	}
	if rw.err {
		fmt.Fprint(s.out, pterm.Error.Sprintln(rw.String()))
	} else {
		fmt.Fprintln(s.out, rw.String())
	}
}

func (s *session) warnEOF() {
	if s.out != nil {
		fmt.Fprint(s.out, pterm.Warning.Sprintln("End of input reached! No more tokens to read!"))
	}
}

// table renders the scan output as a table.
func (s *session) table() (string, error) {
	data := pterm.TableData{{"Position", "Token", "Lexeme"}}
	for _, r := range s.rows {
		kind := string(r.kind)
		if r.err {
			kind = string(dfalex.ErrorKind)
		}
		data = append(data, []string{r.position(), kind, escapes.Replace(r.text)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// save writes the scan output so far to a file.
func (s *session) save(path string) error {
	var b strings.Builder
	for _, r := range s.rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("cannot save output: %w", err)
	}
	tracer().Infof("saved %d lines of output to %q", len(s.rows), path)
	return nil
}
