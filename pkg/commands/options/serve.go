package options

import (
	"net"
	"strconv"

	"github.com/spf13/cobra"
)

// ServeOptions override the serve section of the config.
type ServeOptions struct {
	Host    string
	Port    int
	BaseURL string
	NoCache bool
	NoMCP   bool
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Host, "host", "", "Interface to listen on. Defaults to serve.host from the config.")
	cmd.Flags().IntVar(&o.Port, "port", 0, "Port to listen on. Defaults to serve.port from the config.")
	cmd.Flags().StringVar(&o.BaseURL, "base-url", "", "Public URL of the server, used in generated links.")
	cmd.Flags().BoolVar(&o.NoCache, "no-cache", false, "Render every request instead of reusing cached wallpapers.")
	cmd.Flags().BoolVar(&o.NoMCP, "no-mcp", false, "Do not mount the MCP endpoint at /mcp.")
}

// Addr merges the flags with a configured host:port.
func (o *ServeOptions) Addr(configured string) string {
	host, port, err := net.SplitHostPort(configured)
	if err != nil {
		host, port = "127.0.0.1", "8080"
	}
	if o.Host != "" {
		host = o.Host
	}
	if o.Port > 0 {
		port = strconv.Itoa(o.Port)
	}
	return net.JoinHostPort(host, port)
}
