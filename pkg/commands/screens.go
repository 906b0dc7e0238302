package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/screens"
)

func addScreens(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var category string

	cmd := &cobra.Command{
		Use:   "screens",
		Short: "List phone screen presets.",
		Example: `
dotcal screens
dotcal screens --category=apple -o json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := screens.Screens{
				Category: category,
				Format:   oo.OutputFormat(),
				Printer:  printer(),
				Stdout:   cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo, "json or yaml")
	cmd.Flags().StringVar(&category, "category", "", "Only presets from this maker: apple, samsung or google.")

	topLevel.AddCommand(cmd)
}
