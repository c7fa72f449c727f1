package holdall

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagManifest      string
	flagIgnoreFile    string
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Holdall CLI.
var rootCmd = &cobra.Command{
	Use:           "holdall",
	Short:         "Inspect and edit nested container manifests",
	Long:          "Holdall loads YAML manifests of nested containers and lets you show, search, fingerprint, lint and prune the tree.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Holdall CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVarP(&flagManifest, "manifest", "m", "", "manifest file (default holdall.yml, or from config)")
	rootCmd.PersistentFlags().StringVar(&flagIgnoreFile, "ignore-file", "", "ignore file with node path patterns (default .holdallignore)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
