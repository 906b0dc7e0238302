package commands

import (
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/url"
)

func addURL(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}
	ia := &options.InteractiveOptions{}
	var base string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the wallpaper link for a phone automation.",
		Example: `
dotcal url --screen=iphone-15-15-pro-16 --view=life --birthday=1990-01-15
dotcal url -i
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
			if base == "" {
				base = cfg.BaseURL()
			}
			if base == "" {
				base = "http://" + cfg.Addr()
			}
			u := url.URL{
				Request:     req,
				Base:        base,
				Interactive: ia.Interactive,
				Stdin:       io.NopCloser(cmd.InOrStdin()),
				Stdout:      nopCloser{cmd.OutOrStdout()},
			}
			return oo.HandleError(u.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, ia)
	cmd.Flags().StringVar(&base, "base-url", "", "Server URL. Defaults to serve.baseURL or the serve address.")

	topLevel.AddCommand(cmd)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
