package holdall

import (
	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and edit the manifest interactively",
		Long:  "Browse opens a full-screen tree view: fold containers, filter by path, detach nodes and save the result.",
		RunE:  runBrowse,
	}
	rootCmd.AddCommand(cmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	root, manifest, _, _, err := loadTree()
	if err != nil {
		return err
	}
	maybeWarnUpdate()
	return tui.Run(root, manifest, func() (*inventory.Item, error) {
		return inventory.Load(manifest)
	})
}
