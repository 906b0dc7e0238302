package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}
	var all bool

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the palette legend: what each dot color means.",
		Example: `
dotcal key
dotcal key --theme=light --accent="#3B82F6"
dotcal key --all
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			req, err := ro.Request(cfg.Defaults())
			if err != nil {
				return oo.HandleError(err)
			}
			k := key.Key{Request: req, All: all, Printer: printer()}
			return oo.HandleError(k.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&all, "all", false, "Show every built-in theme.")

	topLevel.AddCommand(cmd)
}
