package holdall

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/fingerprint"
)

var (
	flagFpSave   bool
	flagFpVerify bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print, record or verify the manifest fingerprint",
		Long: "Fingerprint hashes the tree structure (names, kinds, counts, tags and nesting) into a short stable digest. " +
			"--save records it in the ledger; --verify compares against the recorded value and exits 1 on drift.",
		RunE: runFingerprint,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagFpSave, "save", false, "record the fingerprint in the ledger")
	cmd.Flags().BoolVar(&flagFpVerify, "verify", false, "compare against the recorded fingerprint")
}

func runFingerprint(_ *cobra.Command, _ []string) error {
	root, manifest, _, _, err := loadTree()
	if err != nil {
		return err
	}
	sum := fingerprint.Sum(root)
	dir := filepath.Dir(manifest)
	key := filepath.Base(manifest)

	switch {
	case flagFpSave:
		ledger, _ := fingerprint.Load(dir)
		if ledger.Entries == nil {
			ledger.Entries = map[string]string{}
		}
		ledger.Entries[key] = sum
		if err := fingerprint.Save(dir, ledger); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
		if !flagJSON {
			fmt.Printf("recorded %s for %s\n", sum, manifest)
			return nil
		}

	case flagFpVerify:
		ledger, err := fingerprint.Load(dir)
		if err != nil {
			return fmt.Errorf("no ledger to verify against: %w", err)
		}
		want, ok := ledger.Entries[key]
		if !ok {
			return fmt.Errorf("no recorded fingerprint for %s; run 'holdall fingerprint --save' first", manifest)
		}
		if want != sum {
			fmt.Printf("drift: recorded %s, current %s\n", want, sum)
			os.Exit(1)
		}
		if !flagJSON {
			fmt.Printf("ok: %s\n", sum)
			return nil
		}
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"manifest": manifest, "fingerprint": sum})
	}
	if !flagFpSave && !flagFpVerify {
		fmt.Println(sum)
	}
	return nil
}
