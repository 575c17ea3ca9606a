package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/javelin-dev/javelin/qualname"
)

// RenameCmd represents the rename command
var RenameCmd = &cobra.Command{
	Use:   "rename <old-qualified-name> <new-qualified-name>",
	Short: "Rewrite a qualified type name across non-Java project files",
	Long: `Search descriptor and resource files (XML, properties, manifests,
Gradle scripts) for a fully qualified type name and rewrite it, as needed
after a class is renamed or moved to another package. Matches are bounded:
"com.example.Foo" never matches "com.example.FooBar" or "x.com.example.Foo".

Java sources are deliberately not touched; source-level renames belong to
the IDE refactoring that triggered this one.

Examples:
  javelin rename com.example.Foo com.example.core.Foo
  javelin rename --root ./conf --dry-run com.example.Foo org.example.Foo`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldName, newName := args[0], args[1]
		root, _ := cmd.Flags().GetString("root")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		finder := qualname.NewFinder()

		if dryRun {
			found, err := finder.FindInTree(root, oldName)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				pterm.Success.Printf("no occurrences of %s\n", oldName)
				return nil
			}
			for _, fm := range found {
				pterm.DefaultSection.Println(fm.Path)
				for _, m := range fm.Matches {
					pterm.Printf("  line %d\n", m.Line)
				}
			}
			pterm.Info.Printf("dry run: %d file(s) would be rewritten\n", len(found))
			return nil
		}

		changed, err := finder.ReplaceInTree(root, oldName, newName)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			pterm.Success.Printf("no occurrences of %s\n", oldName)
			return nil
		}
		for _, path := range changed {
			pterm.Printf("  rewrote %s\n", path)
		}
		pterm.Success.Printf("rewrote %d file(s)\n", len(changed))
		return nil
	},
}

func init() {
	RenameCmd.Flags().String("root", ".", "Project root to search")
	RenameCmd.Flags().Bool("dry-run", false, "List matches without rewriting")
}
