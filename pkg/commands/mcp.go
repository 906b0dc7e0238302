package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dotcal/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes calendar statistics, wallpaper layouts,
wallpaper links and screen presets through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Service:          mcp.NewService(cfg.Defaults(), cfg.BaseURL()),
				Version:          version,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
			}

			t, err := mcp.ParseTransport(strings.TrimSpace(transport))
			if err != nil {
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}
			runner.Transport = t

			if t == mcp.TransportHTTP {
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}

				runner.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					scheme := "http"
					if runner.HTTPServerCert != "" && runner.HTTPServerKey != "" {
						scheme = "https"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
						listenURL(scheme, host, a, path))
				}
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8081, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

// listenURL is the address a user can open for a listener bound to host.
func listenURL(scheme, host string, a net.Addr, path string) string {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, a.String(), path)
	}

	displayHost := host
	if displayHost == "" || displayHost == "0.0.0.0" || displayHost == "::" {
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			displayHost = tcpAddr.IP.String()
		} else {
			displayHost = "127.0.0.1"
		}
	}

	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(displayHost, strconv.Itoa(tcpAddr.Port)), path)
}
