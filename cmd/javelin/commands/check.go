package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/javelin-dev/javelin/checker"
	"github.com/javelin-dev/javelin/config"
	"github.com/javelin-dev/javelin/javadoc"
	"github.com/javelin-dev/javelin/scan"
	"github.com/javelin-dev/javelin/watch"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report declarations with missing Javadoc tags",
	Long: `Scan Java sources and report every declaration whose Javadoc block is
missing @param, @return or @throws tags, and every declaration with no
Javadoc block at all.

The files scanned are selected by the check.include / check.exclude glob
patterns in javelin.toml (default: every .java file under the path).

Examples:
  javelin check                 # Check the current directory
  javelin check ./src/main      # Check a subtree
  javelin check --watch ./src   # Re-check whenever a .java file changes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		watchMode, _ := cmd.Flags().GetBool("watch")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		c := checker.New(cfg.Policy())

		run := func() (int, error) {
			files, err := scan.Files(root, cfg.Check.Include, cfg.Check.Exclude)
			if err != nil {
				return 0, err
			}
			findings, failed := c.CheckFiles(cmd.Context(), files)
			printFindings(files, findings, failed)
			return len(findings), nil
		}

		count, err := run()
		if err != nil {
			return err
		}

		if !watchMode {
			if count > 0 {
				os.Exit(1)
			}
			return nil
		}

		debounce := time.Duration(cfg.Check.WatchDebounceMS) * time.Millisecond
		w, err := watch.New(root, debounce)
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		w.OnChange(func(paths []string) error {
			pterm.Println()
			pterm.Info.Printf("Change detected in %d file(s), re-checking\n", len(paths))
			_, err := run()
			return err
		})
		w.Start()

		pterm.Println()
		pterm.Info.Println("Watching for changes (Ctrl-C to stop)")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	CheckCmd.Flags().BoolP("watch", "w", false, "Re-run the check when .java files change")
}

func printFindings(files []string, findings []checker.Finding, failed int) {
	if len(findings) == 0 {
		pterm.Success.Printf("%d file(s) checked, no missing Javadoc tags\n", len(files))
		if failed > 0 {
			pterm.Warning.Printf("%d file(s) could not be parsed\n", failed)
		}
		return
	}

	byFile := make(map[string][]checker.Finding)
	var order []string
	for _, f := range findings {
		if _, seen := byFile[f.Path]; !seen {
			order = append(order, f.Path)
		}
		byFile[f.Path] = append(byFile[f.Path], f)
	}

	for _, path := range order {
		pterm.DefaultSection.Println(path)
		for _, f := range byFile[path] {
			if f.Undocumented {
				pterm.Warning.Printf("%s %q has no Javadoc comment\n", f.Decl.Kind, f.Decl.Name)
				continue
			}
			for _, m := range f.Missing {
				pterm.Printf("  %s %q missing %s for %s\n",
					f.Decl.Kind, f.Decl.Name, m.Category.TagKind(), describeMissing(m))
			}
		}
	}

	pterm.Println()
	pterm.Error.Printf("%d declaration(s) need attention in %d file(s)\n", len(findings), len(order))
	if failed > 0 {
		pterm.Warning.Printf("%d file(s) could not be parsed\n", failed)
	}
}

func describeMissing(m javadoc.Missing) string {
	if m.Category == javadoc.CategoryReturn {
		return "the return value"
	}
	return fmt.Sprintf("%q", m.Name)
}
