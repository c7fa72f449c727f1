package holdall

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/lint"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the manifest for shapes that confuse addressing",
		Long:  "Lint flags nameless nodes, duplicate sibling names, slashes in names, negative counts and pathological nesting. Exits 1 when any issue is found.",
		RunE:  runLint,
	}
	rootCmd.AddCommand(cmd)
}

func runLint(_ *cobra.Command, _ []string) error {
	root, manifest, _, _, err := loadTree()
	if err != nil {
		return err
	}

	issues := lint.Check(root)
	if flagJSON {
		if issues == nil {
			issues = []lint.Issue{} // no `null` in JSON
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		fmt.Printf("%s: no issues\n", manifest)
	} else {
		for _, i := range issues {
			fmt.Println(i)
		}
		fmt.Printf("%d issue(s) in %s\n", len(issues), manifest)
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
	return nil
}
