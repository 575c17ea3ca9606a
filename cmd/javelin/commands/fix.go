package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/javelin-dev/javelin/checker"
	"github.com/javelin-dev/javelin/config"
	"github.com/javelin-dev/javelin/edit"
	"github.com/javelin-dev/javelin/scan"
)

// FixCmd represents the fix command
var FixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Insert missing Javadoc tags in place",
	Long: `Rewrite Java sources so every documented declaration carries a complete
tag set: missing @param, @return and @throws tags are inserted at their
canonical position inside the existing comment. Existing tags and prose are
never touched.

With --stubs, declarations that have no Javadoc block at all additionally
receive a generated comment stub.

Examples:
  javelin fix ./src               # Insert missing tags
  javelin fix --stubs ./src       # Also generate comment stubs
  javelin fix --stdout One.java   # Print the fixed source, leave the file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		withStubs, _ := cmd.Flags().GetBool("stubs")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		stub := edit.Stub{Author: cfg.Stub.Author, Since: cfg.Stub.Since}
		c := checker.New(cfg.Policy())

		info, err := os.Stat(root)
		if err != nil {
			return err
		}

		var files []string
		if info.IsDir() {
			files, err = scan.Files(root, cfg.Check.Include, cfg.Check.Exclude)
			if err != nil {
				return err
			}
		} else {
			files = []string{root}
		}

		if toStdout {
			if len(files) != 1 {
				return fmt.Errorf("--stdout requires exactly one file, got %d", len(files))
			}
			src, err := os.ReadFile(files[0])
			if err != nil {
				return err
			}
			out, _, err := c.FixSource(cmd.Context(), src, files[0], stub, withStubs)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		}

		changed := 0
		for _, path := range files {
			fileChanged, err := c.FixFile(cmd.Context(), path, stub, withStubs)
			if err != nil {
				pterm.Warning.Printf("skipping %s: %v\n", path, err)
				continue
			}
			if fileChanged {
				changed++
				pterm.Printf("  fixed %s\n", path)
			}
		}

		if changed == 0 {
			pterm.Success.Printf("%d file(s) checked, nothing to fix\n", len(files))
		} else {
			pterm.Success.Printf("fixed %d of %d file(s)\n", changed, len(files))
		}
		return nil
	},
}

func init() {
	FixCmd.Flags().Bool("stubs", false, "Also generate comment stubs for undocumented declarations")
	FixCmd.Flags().Bool("stdout", false, "Print the fixed source to stdout instead of rewriting the file")
}
