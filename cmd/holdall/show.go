package holdall

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/fingerprint"
	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/report"
)

var (
	flagShowFormat string
	flagShowDepth  int
	flagShowStats  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the manifest tree, or the subtree at a path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagShowFormat, "format", "", "output format: tree|yaml|json (default tree)")
	cmd.Flags().IntVar(&flagShowDepth, "max-depth", 0, "hide nodes deeper than this (0 = no limit)")
	cmd.Flags().BoolVar(&flagShowStats, "stats", false, "append node count, depth, units and fingerprint")
}

func runShow(_ *cobra.Command, args []string) error {
	root, path, lcfg, gcfg, err := loadTree()
	if err != nil {
		return err
	}
	maybeWarnUpdate()

	node := root
	if len(args) == 1 {
		n, ok := inventory.Resolve(root, args[0])
		if !ok {
			return fmt.Errorf("no node at %q in %s", args[0], path)
		}
		node = n
	}

	format := pickString(flagShowFormat, lcfg.Format, gcfg.Format)
	if flagJSON {
		format = "json"
	}
	color := colorEnabled(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	switch format {
	case "", "tree":
		report.PrintTree(os.Stdout, node, report.Options{
			NoColor:  !color,
			MaxDepth: pickInt(flagShowDepth, lcfg.MaxDepth, gcfg.MaxDepth),
		})
	case "yaml", "json":
		if err := report.Dump(os.Stdout, node, format, color); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want tree, yaml or json)", format)
	}

	if flagShowStats {
		report.PrintStats(os.Stdout, inventory.Measure(node), fingerprint.Sum(node))
	}
	return nil
}
