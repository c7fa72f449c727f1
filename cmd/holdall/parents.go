package holdall

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

var flagParentsDirect bool

func init() {
	cmd := &cobra.Command{
		Use:   "parents <path>",
		Short: "Print the chain of containers holding a node",
		Long:  "Parents prints every container enclosing the node at the given path, innermost first, ending with the manifest root.",
		Args:  cobra.ExactArgs(1),
		RunE:  runParents,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagParentsDirect, "direct", false, "print only the immediate container")
}

func runParents(_ *cobra.Command, args []string) error {
	root, manifest, _, _, err := loadTree()
	if err != nil {
		return err
	}

	node, ok := inventory.Resolve(root, args[0])
	if !ok {
		return fmt.Errorf("no node at %q in %s", args[0], manifest)
	}

	var chain []*inventory.Item
	if flagParentsDirect {
		if p, ok := visit.Parent(root, node); ok {
			chain = []*inventory.Item{p}
		}
	} else {
		chain = visit.Ancestors(root, node)
	}

	var paths []string
	for _, a := range chain {
		if p, ok := inventory.Path(root, a); ok {
			paths = append(paths, p)
		}
	}

	if flagJSON {
		if paths == nil {
			paths = []string{} // no `null` in JSON
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}
	if len(paths) == 0 {
		fmt.Printf("%s is the root; nothing holds it\n", args[0])
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
