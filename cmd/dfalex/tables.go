package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/dfalex/deflang"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/npillmayer/dfalex/tables"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTablesCmd(a *app) *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show statistics of the active tables, or export them",
		Long: `Show statistics of the active scanner tables.

With --export, the active tables are written to a directory as scan.csv,
token.csv and keyword.csv, ready to be edited and loaded again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if export != "" {
				if err := exportTables(a.sc, export, delimiter(a)); err != nil {
					return reportError(err)
				}
				pterm.Success.Printfln("tables written to %s", export)
				return nil
			}
			return printTables(cmd.OutOrStdout(), a.sc)
		},
	}
	cmd.Flags().StringVarP(&export, "export", "e", "", "directory to write the tables to")
	return cmd
}

func delimiter(a *app) rune {
	r, _ := utf8.DecodeRuneInString(a.conf.String(keyDelimiter))
	if r == utf8.RuneError {
		return tables.DefaultDelimiter
	}
	return r
}

// tableSummary lists statistics of the tables of a scanner.
func tableSummary(sc *scanner.Scanner) pterm.TableData {
	tt, tok, kw := sc.Tables()
	data := pterm.TableData{{"Table", "Property", "Value"}}
	if tt != nil {
		data = append(data,
			[]string{"transitions", "states", strconv.Itoa(tt.States())},
			[]string{"transitions", "characters", strconv.Itoa(len(tt.Codes()))},
			[]string{"transitions", "entries", strconv.Itoa(tt.TransitionCount())},
			[]string{"transitions", "start state out-degree", strconv.Itoa(tt.OutDegree(tables.StartState))},
		)
	}
	if tok != nil {
		errs := 0
		for state := 1; state < tok.Len(); state++ {
			if e, _ := tok.Entry(state); e.IsError() {
				errs++
			}
		}
		data = append(data,
			[]string{"tokens", "entries", strconv.Itoa(tok.Len())},
			[]string{"tokens", "kinds", strconv.Itoa(len(tok.Kinds()))},
			[]string{"tokens", "error states", strconv.Itoa(errs)},
		)
	}
	if kw != nil {
		data = append(data, []string{"keywords", "words", strconv.Itoa(kw.Size())})
	}
	consistent := "yes"
	if tt != nil && tok != nil && tok.Len() != tt.States()+1 {
		consistent = "no"
	}
	data = append(data,
		[]string{"all", "consistent", consistent},
		[]string{"all", "fingerprint", sc.Fingerprint()},
	)
	return data
}

func printTables(w io.Writer, sc *scanner.Scanner) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(tableSummary(sc)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// exportTables writes the tables of a scanner to a directory.
func exportTables(sc *scanner.Scanner, dir string, delim rune) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create export directory: %w", err)
	}
	tt, tok, kw := sc.Tables()
	opt := tables.Delimiter(delim)
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{deflang.ScanFile, func(w io.Writer) error { return tables.WriteTransitionTable(w, tt, opt) }},
		{deflang.TokenFile, func(w io.Writer) error { return tables.WriteTokenTable(w, tok, opt) }},
		{deflang.KeywordFile, func(w io.Writer) error { return tables.WriteKeywordSet(w, kw, opt) }},
	}
	for _, wr := range writers {
		path := filepath.Join(dir, wr.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot export table: %w", err)
		}
		err = wr.write(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tracer().Infof("exported %s", path)
	}
	return nil
}
