package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/runner/guide"
)

func addGuide(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}
	oo := &options.OutputOptions{}
	var (
		platform string
		base     string
		width    int
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "guide [iphone|android]",
		Short: "Explain how to set the wallpaper up on a phone.",
		Example: `
dotcal guide
dotcal guide android --view=life --birthday=1990-01-15
`,
		ValidArgs: []string{string(guide.IPhone), string(guide.Android)},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				platform = args[0]
			}
			p, err := guide.ParsePlatform(platform)
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			req, err := ro.Request(cfg.Defaults())
			if err != nil {
				return oo.HandleError(err)
			}
			if req.Width <= 0 || req.Height <= 0 {
				s := params.DefaultScreen()
				req.Width, req.Height = s.Width, s.Height
			}
			if base == "" {
				base = cfg.BaseURL()
			}
			if base == "" {
				base = "http://" + cfg.Addr()
			}
			g := guide.Guide{
				URL:      req.URL(base),
				Platform: p,
				Width:    width,
				Raw:      raw,
				Stdout:   cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddRequestArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&platform, "platform", string(guide.IPhone), "Phone platform: iphone or android.")
	cmd.Flags().StringVar(&base, "base-url", "", "Server URL. Defaults to serve.baseURL or the serve address.")
	cmd.Flags().IntVar(&width, "width-cols", 80, "Wrap the guide at this many columns.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source.")

	topLevel.AddCommand(cmd)
}
