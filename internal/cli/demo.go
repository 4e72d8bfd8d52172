package cli

import (
	"sync"

	"github.com/spf13/cobra"

	"divlog/internal/console"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		parallel int
		toStdout bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print every severity, then lines from concurrent writers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sev := range console.Severities {
				a.con.Print(sev, toStdout, "this is a %s line", sev)
			}
			if parallel <= 0 {
				return nil
			}
			a.diag.Debug("starting writers", "n", parallel)
			var wg sync.WaitGroup
			for i := 0; i < parallel; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					sev := console.Severities[i%len(console.Severities)]
					a.con.Print(sev, toStdout, "writer %d of %d", i+1, parallel)
				}(i)
			}
			wg.Wait()
			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 8, "number of concurrent writers")
	cmd.Flags().BoolVarP(&toStdout, "stdout", "o", false, "print to stdout instead of stderr")
	return cmd
}
