package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/commands/options"
	"tableflip.dev/dotcal/pkg/runner/serve"
	"tableflip.dev/dotcal/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wallpapers over HTTP for phone automations.",
		Long: `Serve PNG wallpapers at /api/og, scene JSON at /api/scene and progress
statistics at /api/stats. Query parameters override the configured defaults;
width and height are required for images. The MCP endpoint is mounted at /mcp
unless disabled. Defaults are reloaded when the config file changes.`,
		Example: `
dotcal serve
dotcal serve --host=0.0.0.0 --port=3000 --base-url=https://dots.example.com
curl "http://127.0.0.1:8080/api/og?width=1179&height=2556&view=months" > months.png
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			static := store.StaticConfig{
				Cache:    cfg.CachePath(),
				Request:  cfg.Defaults(),
				Listen:   so.Addr(cfg.Addr()),
				Base:     cfg.BaseURL(),
				MountMCP: cfg.MCP() && !so.NoMCP,
				Path:     cfg.File(),
			}
			if so.BaseURL != "" {
				static.Base = so.BaseURL
			}
			if so.NoCache {
				static.Cache = ""
			}

			s := serve.Server{
				Config:  static,
				Cache:   store.OpenCache(static.Cache),
				Reload:  loadConfig,
				Version: version,
				OnListening: func(a net.Addr) {
					host, _, _ := net.SplitHostPort(static.Listen)
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dotcal serving wallpapers on %s\n",
						listenURL("http", host, a, "/api/og"))
				},
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddServeArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
