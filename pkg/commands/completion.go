package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/theme"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(dotcal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(dotcal completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
	registerFlagCompletions(topLevel)
}

// registerFlagCompletions completes the enumerated request flags on every
// command that has them.
func registerFlagCompletions(topLevel *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}

	var views, themes, screens []string
	for _, v := range grid.Views() {
		views = append(views, string(v))
	}
	for _, n := range theme.Names() {
		themes = append(themes, string(n))
	}
	for _, s := range params.Screens() {
		screens = append(screens, s.Slug())
	}

	completions := map[string]func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective){
		"view":       fixed(views...),
		"theme":      fixed(themes...),
		"screen":     fixed(screens...),
		"week-start": fixed("monday", "sunday"),
	}
	for _, cmd := range topLevel.Commands() {
		for name, fn := range completions {
			if cmd.Flags().Lookup(name) != nil {
				_ = cmd.RegisterFlagCompletionFunc(name, fn)
			}
		}
	}
}
