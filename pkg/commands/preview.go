package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/preview"
)

func addPreview(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the dot grid in the terminal.",
		Example: `
dotcal preview
dotcal preview --view=quarters --week-start=sunday
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
			p := preview.Preview{Request: req, Printer: printer()}
			return oo.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
