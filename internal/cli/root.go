package cli

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"divlog/internal/console"
	"divlog/internal/system"
)

// app carries the streams and the Console shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	color   string
	onError string
	verbose bool

	outProfile termenv.Profile

	con  *console.Console
	diag *clog.Logger
	exit func(int)
}

// NewRootCmd builds the command tree on the given streams.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, exit: os.Exit}

	rootCmd := &cobra.Command{
		Use:   "divlog",
		Short: "divlog – leveled, color-styled console lines",
		Long:  "divlog prints info, note, warning, error and fatal lines behind a colored divider, on stdout or stderr.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.color, "color", "always", "styling: always, never or auto")
	pf.StringVar(&a.onError, "on-error", "abort", "on a failed write: abort or continue")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug diagnostics on stderr")

	for _, sev := range console.Severities {
		rootCmd.AddCommand(newSeverityCmd(a, sev))
	}
	rootCmd.AddCommand(newLevelsCmd(a), newDemoCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) setup() error {
	policy, err := console.ParseErrorPolicy(a.onError)
	if err != nil {
		return err
	}
	outProfile, err := profileFor(a.color, a.stdout)
	if err != nil {
		return err
	}
	errProfile, err := profileFor(a.color, a.stderr)
	if err != nil {
		return err
	}
	a.outProfile = outProfile
	a.diag = system.NewLogger(a.stderr, a.verbose)
	a.con = console.New(a.stdout, a.stderr,
		console.WithErrorPolicy(policy),
		console.WithProfiles(outProfile, errProfile),
		console.WithDiagnostics(a.diag),
		console.WithExit(a.exit),
	)
	a.diag.Debug("console ready", "color", a.color, "on-error", policy)
	return nil
}

// profileFor resolves the --color flag for one stream.
func profileFor(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case "always":
		return termenv.ANSI, nil
	case "never":
		return termenv.Ascii, nil
	case "auto":
		if isTerminal(w) {
			return termenv.ANSI, nil
		}
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("invalid --color %q (want always, never or auto)", mode)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
