package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"divlog/internal/console"
)

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels [severity...]",
		Short: "Show the color and weight of each severity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sevs := console.Severities
			if len(args) > 0 {
				sevs = make([]console.Severity, 0, len(args))
				for _, arg := range args {
					s, err := console.ParseSeverity(arg)
					if err != nil {
						return err
					}
					sevs = append(sevs, s)
				}
			}
			r := lipgloss.NewRenderer(a.stdout)
			r.SetColorProfile(a.outProfile)
			_, err := fmt.Fprintln(a.stdout, levelsTable(r, a.con.Stdout(), sevs))
			return err
		},
	}
}

// levelsTable renders one row per severity. Styling follows r, samples follow l.
func levelsTable(r *lipgloss.Renderer, l *console.Logger, sevs []console.Severity) string {
	rows := make([][]string, 0, len(sevs))
	for _, s := range sevs {
		weight := "normal"
		if s.Bold() {
			weight = "bold"
		}
		sample := strings.TrimSuffix(l.Format(s, "sample "+s.String()), "\n")
		rows = append(rows, []string{s.String(), s.ColorName(), weight, sample})
	}
	cell := r.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("SEVERITY", "COLOR", "WEIGHT", "SAMPLE").
		Rows(rows...).
		String()
}
