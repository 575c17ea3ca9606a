package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javelin-dev/javelin/cmd/javelin/commands"
	"github.com/javelin-dev/javelin/logger"
)

var rootCmd = &cobra.Command{
	Use:   "javelin",
	Short: "Javelin - Javadoc tag maintenance for Java projects",
	Long: `Javelin - keeps Javadoc blocks in sync with the declarations they document.

Javelin detects @param, @return and @throws tags missing from Javadoc
comments, inserts them at their canonical position, and generates comment
stubs for declarations with no documentation at all.

Available commands:
  check   - Report declarations with missing Javadoc tags
  fix     - Insert missing tags (and optionally comment stubs) in place
  rename  - Rewrite a qualified type name across non-Java project files
  serve   - Run the language server (stdio or WebSocket)
  version - Show version information

Examples:
  javelin check ./src               # Report missing tags
  javelin check --watch ./src       # Re-check on every save
  javelin fix ./src                 # Insert missing tags in place
  javelin fix --stubs ./src         # Also generate comment stubs
  javelin rename com.a.Foo com.b.Foo
  javelin serve                     # LSP over stdio
  javelin serve --websocket :7640   # LSP over WebSocket`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json-logs")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs instead of console output")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.FixCmd)
	rootCmd.AddCommand(commands.RenameCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
