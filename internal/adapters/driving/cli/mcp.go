package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docprep/internal/adapters/driving/mcp"
)

const defaultMCPHost = "127.0.0.1"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve docprep tools to MCP clients",
	Long: `Serve the classify_url and prepare_docs tools, plus the preparation
history resources, to an MCP client.

Without --port the server speaks JSON-RPC over stdio, which is what desktop
assistants launch as a subprocess:

  {"mcpServers": {"docprep": {"command": "docprep", "args": ["mcp", "serve"]}}}

With --port it serves streamable HTTP instead. The listener binds to
127.0.0.1 unless --host says otherwise; prepare_docs writes to paths the
client chooses, so expose it beyond loopback only on a trusted network.`,
	Example: `  docprep mcp serve
  docprep mcp serve --port 8080
  docprep mcp serve --port 8080 --host 0.0.0.0`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 serves over stdio)")
	mcpServeCmd.Flags().String("host", defaultMCPHost, "HTTP listen address, used with --port")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return fmt.Errorf("getting host flag: %w", err)
	}

	if docsService == nil {
		if docsServiceErr != nil {
			return fmt.Errorf("docs service not configured: %w", docsServiceErr)
		}
		return errors.New("docs service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Docs: docsService}, version)
	if err != nil {
		return err
	}

	if port == 0 {
		return server.Run(cmd.Context())
	}

	addr := mcpListenAddr(host, port)
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}

// mcpListenAddr joins host and port, falling back to loopback for an empty host.
func mcpListenAddr(host string, port int) string {
	if host == "" {
		host = defaultMCPHost
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
