package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show elapsed, left and percent for a calendar.",
		Example: `
dotcal stats
dotcal stats --view=life --birthday=1990-01-15 -o yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			req, err := ro.Request(cfg.Defaults())
			if err != nil {
				return oo.HandleError(err)
			}
			s := stats.Stats{
				Request: req,
				Format:  oo.OutputFormat(),
				Printer: printer(),
				Stdout:  cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddFormatArg(cmd, oo, "json or yaml")

	topLevel.AddCommand(cmd)
}
