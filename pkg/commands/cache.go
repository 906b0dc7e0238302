package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/cache"
	"tableflip.dev/dotcal/pkg/store"
)

func addCache(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered wallpaper cache.",
	}
	addCachePurge(cmd)

	topLevel.AddCommand(cmd)
}

func addCachePurge(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	var keep int

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete wallpapers rendered on earlier days.",
		Example: `
dotcal cache purge
dotcal cache purge --keep=7
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			if cfg.CachePath() == "" {
				return oo.HandleError(errors.New("cache is disabled"))
			}
			p := cache.Purge{
				Cache:  store.OpenCache(cfg.CachePath()),
				Keep:   keep,
				Stdout: cmd.OutOrStdout(),
			}
			return oo.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVar(&keep, "keep", 0, "Also keep wallpapers from this many previous days.")

	parent.AddCommand(cmd)
}
