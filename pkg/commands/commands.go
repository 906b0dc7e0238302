package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dotcal/pkg/printers"
	"tableflip.dev/dotcal/pkg/store"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dotcal",
		Short: base.Wrap80("Dot calendar wallpapers: see how much of the year, your life or a goal is left."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRender(topLevel)
	addPreview(topLevel)
	addStats(topLevel)
	addURL(topLevel)
	addScreens(topLevel)
	addKey(topLevel)
	addGuide(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addCache(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadConfig is swapped in tests.
var loadConfig = store.LoadConfig

func printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{Color: printers.ColorEnabled(os.Stdout)}
}
