package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	var initf string
	cmd := &cobra.Command{
		Use:   "repl [source]",
		Short: "Step through a source interactively",
		Long: `Start an interactive session to step through a source token by token.

Enter 'help' for a list of commands. Quit with 'quit' or <ctrl>D.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intp := newIntp(a, cmd.OutOrStdout())
			if len(args) > 0 {
				if err := a.sc.LoadSource(args[0]); err != nil {
					return reportError(err)
				}
			}
			repl, err := readline.NewEx(&readline.Config{
				Prompt:       "dfalex> ",
				AutoComplete: completer(),
			})
			if err != nil {
				tracer().Errorf("%v", err)
				return err
			}
			defer repl.Close()
			intp.repl = repl
			pterm.Info.Println("Welcome to DFALex") // colored welcome message
			tracer().Infof("Quit with <ctrl>D")    // inform user how to stop the CLI
			intp.loadInitFile(initf)               // init file name provided by flag
			intp.REPL()                            // go into interactive mode
			return nil
		},
	}
	cmd.Flags().StringVar(&initf, "init", "", "file with commands to execute first")
	return cmd
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("next"),
		readline.PcItem("step"),
		readline.PcItem("auto"),
		readline.PcItem("restart"),
		readline.PcItem("load",
			readline.PcItem("scan"),
			readline.PcItem("token"),
			readline.PcItem("keyword"),
			readline.PcItem("source"),
		),
		readline.PcItem("text"),
		readline.PcItem("tables"),
		readline.PcItem("save"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Intp is our interpreter object
type Intp struct {
	app  *app
	sess *session
	repl *readline.Instance
	out  io.Writer
}

func newIntp(a *app, out io.Writer) *Intp {
	return &Intp{
		app:  a,
		sess: newSession(a.sc, skipKinds(a.conf), out),
		out:  out,
	}
}

var errUnknownCommand = errors.New("unknown command")

const replHelp = `Commands:
  next                    scan the next token, skipping whitespace and comments
  step                    scan the next token of any kind
  auto                    scan to the end of input
  restart                 restart scanning at the beginning of the source
  load scan|token|keyword|source <file>
                          load a table or a source
  text <source>           use the rest of the line as source
  tables                  show statistics of the active tables
  save <file>             save the scan output so far
  quit                    leave`

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			intp.showError(err)
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval executes a command, given on a line by itself. It returns true if the
// user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	sc := intp.app.sc
	switch cmd {
	case "next", "n":
		return false, intp.sess.next(true)
	case "step", "s":
		return false, intp.step()
	case "auto", "a":
		return false, intp.sess.auto()
	case "restart":
		sc.Restart()
		intp.info("Scanning restarts at the beginning of the source")
	case "load":
		return false, intp.load(rest)
	case "text":
		intp.warnRestart()
		sc.SetSourceText(rest)
		intp.info(fmt.Sprintf("Source has %d characters", sc.Len()))
	case "tables":
		return false, printTables(intp.out, sc)
	case "save":
		if rest == "" {
			return false, errors.New("save needs a file name")
		}
		return false, intp.sess.save(rest)
	case "help", "?":
		fmt.Fprintln(intp.out, replHelp)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	return false, nil
}

// step scans a single token, regardless of its kind.
func (intp *Intp) step() error {
	sc := intp.app.sc
	if sc.EOF() {
		intp.sess.warnEOF()
		return nil
	}
	if err := sc.NextToken(); err != nil {
		return err
	}
	intp.sess.emit(sc.Result())
	return nil
}

func (intp *Intp) load(args string) error {
	what, path, _ := strings.Cut(args, " ")
	if path = strings.TrimSpace(path); path == "" {
		return errors.New("usage: load scan|token|keyword|source <file>")
	}
	sc := intp.app.sc
	var load func(string) error
	switch what {
	case "scan":
		load = sc.LoadTransitionTable
	case "token":
		load = sc.LoadTokenTable
	case "keyword":
		load = sc.LoadKeywordTable
	case "source":
		load = sc.LoadSource
	default:
		return fmt.Errorf("%w: load %s", errUnknownCommand, what)
	}
	intp.warnRestart()
	if err := load(path); err != nil {
		return fmt.Errorf("%q could not be loaded: %w", path, err)
	}
	intp.info(fmt.Sprintf("Loaded %s from %s", what, path))
	return nil
}

// warnRestart tells the user that a scan in progress will restart.
func (intp *Intp) warnRestart() {
	sc := intp.app.sc
	if sc.Cursor() > 0 && !sc.EOF() {
		fmt.Fprint(intp.out, pterm.Warning.Sprintln("Scanning restarts from the beginning"))
	}
}

func (intp *Intp) info(msg string) {
	fmt.Fprint(intp.out, pterm.Info.Sprintln(msg))
}

func (intp *Intp) showError(err error) {
	fmt.Fprint(intp.out, pterm.Error.Sprintln(err.Error()))
}
