package main

import (
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/dfalex/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// app holds what all commands share: configuration and the scanner.
type app struct {
	conf *koanf.Koanf
	sc   *scanner.Scanner
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configFile string
	rootCmd := &cobra.Command{
		Use:           "dfalex",
		Short:         "A table-driven DFA scanner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initDisplay()
			conf, err := loadConfig(configFile, cmd.Flags())
			if err != nil {
				return reportError(err)
			}
			initTracing(conf.String(keyTrace))
			a.conf = conf
			if a.sc, err = newScanner(conf); err != nil {
				return reportError(err)
			}
			tracer().Debugf("tables fingerprint %s", a.sc.Fingerprint())
			return nil
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file (JSON)")
	flags.String("scan", "", "transition table file")
	flags.String("token", "", "token table file")
	flags.String("keyword", "", "keyword table file")
	flags.String("delimiter", "", "field delimiter of table files")
	flags.StringSlice("skip", nil, "token kinds not to display")
	flags.String("trace", "", "trace level [Debug|Info|Error]")
	flags.Bool("panic-on-inconsistent-tables", false, "panic if tables do not fit together")

	rootCmd.AddCommand(newScanCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newTablesCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	return rootCmd
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func reportError(err error) error {
	pterm.Error.Println(err.Error())
	return err
}

// readSource reads the source from a file, or from r if path is empty.
func readSource(path string, r io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read source: %w", err)
	}
	return string(data), nil
}

func newScanCmd(a *app) *cobra.Command {
	var all, asTable bool
	var output string
	cmd := &cobra.Command{
		Use:   "scan [source]",
		Short: "Scan a source to completion and list its tokens",
		Long: `Scan a source file to completion and list its tokens.

If no file is provided, reads the source from stdin. Tokens of kinds configured
to be skipped (whitespace and comments by default) are not listed, unless --all
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if path != "" {
				if err := a.sc.LoadSource(path); err != nil {
					return reportError(err)
				}
			} else {
				text, err := readSource("", cmd.InOrStdin())
				if err != nil {
					return reportError(err)
				}
				a.sc.SetSourceText(text)
			}
			skip := skipKinds(a.conf)
			if all {
				skip = nil
			}
			out := cmd.OutOrStdout()
			s := newSession(a.sc, skip, nil)
			if !asTable {
				s.out = out
			}
			if err := s.auto(); err != nil {
				return reportError(err)
			}
			if asTable {
				t, err := s.table()
				if err != nil {
					return err
				}
				fmt.Fprint(out, t)
			}
			if output != "" {
				return s.save(output)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list tokens of all kinds")
	cmd.Flags().BoolVarP(&asTable, "table", "t", false, "render the listing as a table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the listing to a file")
	return cmd
}
