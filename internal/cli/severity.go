package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"divlog/internal/console"
)

var severityShort = map[console.Severity]string{
	console.Info:    "Print a blue info line",
	console.Note:    "Print a blue line with a bold message",
	console.Warning: "Print a yellow warning line",
	console.Error:   "Print a red error line",
	console.Fatal:   "Print a red line with a bold message",
}

func newSeverityCmd(a *app, sev console.Severity) *cobra.Command {
	var toStdout bool
	cmd := &cobra.Command{
		Use:   sev.String() + " [message...]",
		Short: severityShort[sev],
		Long: fmt.Sprintf("%s.\n\nWords are joined with single spaces into one line. "+
			"Without words, every line read from stdin is printed separately.", severityShort[sev]),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.con.Print(sev, toStdout, strings.Join(args, " "))
				return nil
			}
			return printLines(a, sev, toStdout)
		},
	}
	cmd.Flags().BoolVarP(&toStdout, "stdout", "o", false, "print to stdout instead of stderr")
	return cmd
}

// printLines emits one line per stdin line, with no limit on line length.
// A trailing "\r" is dropped; a final line without a newline is still printed.
func printLines(a *app, sev console.Severity, toStdout bool) error {
	br := bufio.NewReader(a.stdin)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			a.con.Print(sev, toStdout, line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
}
