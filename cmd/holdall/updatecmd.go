package holdall

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update holdall to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			latest, newer, err := update.Check(version, false)
			if err == nil && !newer {
				fmt.Printf("holdall v%s is up to date\n", version)
				return nil
			}
			if latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "updating to v%s...\n", latest)
			}
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Println("updated; re-run your command")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the holdall version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("holdall v" + version)
		},
	})
}
