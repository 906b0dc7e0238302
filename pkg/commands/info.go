package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where wallpapers are cached.",
		Example: `
dotcal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: cfg,
				Stdout: cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
