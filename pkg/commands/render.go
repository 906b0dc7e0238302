package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/render"
)

func addRender(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a wallpaper to a PNG file.",
		Example: `
dotcal render --screen=iphone-16-pro -f wallpaper.png
dotcal render --view=life --birthday=1990-01-15 --width=1179 --height=2556 > life.png
dotcal render --view=months --width=1179 --height=2556 -o json
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
			r := render.Render{
				Request: req,
				Output:  file,
				Format:  oo.OutputFormat(),
				Stdout:  cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddFormatArg(cmd, oo, "png, json or yaml")
	cmd.Flags().StringVarP(&file, "file", "f", "-", `File to write, "-" for stdout.`)

	topLevel.AddCommand(cmd)
}
