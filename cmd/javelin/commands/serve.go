package commands

import (
	"github.com/spf13/cobra"

	"github.com/javelin-dev/javelin/config"
	"github.com/javelin-dev/javelin/langserver"
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Javelin language server",
	Long: `Run the language server. Editors receive quick fixes that add a missing
Javadoc tag, add every missing tag in the file, or generate a comment stub
for an undocumented declaration.

By default the server speaks LSP over stdio, the transport editors spawn
directly. With --websocket it listens for WebSocket connections instead,
one document cache per client.

Examples:
  javelin serve                   # stdio, for editor integration
  javelin serve --websocket :7640 # WebSocket listener`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wsAddr, _ := cmd.Flags().GetString("websocket")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		server := langserver.NewServer(cfg)
		if wsAddr != "" {
			return server.ListenWebSocket(wsAddr, cfg)
		}
		return server.RunStdio()
	},
}

func init() {
	ServeCmd.Flags().String("websocket", "", "Listen for WebSocket LSP connections on this address instead of stdio")
}
