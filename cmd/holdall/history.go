package holdall

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/audit"
)

var flagHistoryLast int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past removals recorded in the audit log",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagHistoryLast, "last", "n", 0, "show only the most recent N records (0 = all)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	_, manifest, _, _, err := loadTree()
	if err != nil {
		return err
	}

	records, err := audit.NewLog(filepath.Dir(manifest)).History()
	if err != nil {
		return fmt.Errorf("no audit log yet: %w", err)
	}
	if flagHistoryLast > 0 && len(records) > flagHistoryLast {
		records = records[len(records)-flagHistoryLast:]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("WHEN", "REMOVED", "LIMIT", "FINGERPRINT", "DRY")
	for _, r := range records {
		dry := ""
		if r.DryRun {
			dry = "yes"
		}
		limit := "-"
		if r.Limit >= 0 {
			limit = fmt.Sprintf("%d", r.Limit)
		}
		_ = table.Append([]string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(r.Removed, ", "),
			limit,
			r.Fingerprint,
			dry,
		})
	}
	_ = table.Render()
	fmt.Printf("Records: %d\n", len(records))
	return nil
}
