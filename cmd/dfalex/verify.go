package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dfalex/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [source…]",
		Short: "Cross-check the active tables against the reference lexer",
		Long: `Scan sources with the active tables and with a lexmachine-generated
reference lexer for the default language, and report the first token where
the two disagree.

If no file is provided, reads a source from stdin. Sources containing lexical
errors are not compared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, kw := a.sc.Tables()
			lm, err := lexmach.DefaultLanguage(kw)
			if err != nil {
				return reportError(err)
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{""}
			}
			failed := 0
			for _, path := range paths {
				name := path
				if name == "" {
					name = "<stdin>"
				}
				input, err := readSource(path, cmd.InOrStdin())
				if err != nil {
					return reportError(err)
				}
				m, err := lexmach.Compare(a.sc, lm, input)
				switch {
				case errors.Is(err, lexmach.ErrLexicalInput):
					pterm.Warning.Printfln("%s: not compared, %v", name, err)
				case err != nil:
					return reportError(err)
				case m != nil:
					failed++
					pterm.Error.Printfln("%s: %s", name, m)
				default:
					pterm.Success.Printfln("%s: tables agree with the reference lexer", name)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sources differ", failed, len(paths))
			}
			return nil
		},
	}
	return cmd
}
