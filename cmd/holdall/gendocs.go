package holdall

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// gendocs regenerates the commands section in README.md between the markers
// <!-- BEGIN:COMMANDS --> and <!-- END:COMMANDS -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README commands section",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:COMMANDS -->")
			end := []byte("<!-- END:COMMANDS -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			cmds := rootCmd.Commands()
			sort.Slice(cmds, func(a, b int) bool { return cmds[a].Name() < cmds[b].Name() })

			var out strings.Builder
			out.WriteString("\n")
			for _, c := range cmds {
				if c.Hidden || c.Name() == "help" {
					continue
				}
				out.WriteString(fmt.Sprintf("- `holdall %s` - %s\n", c.Use, c.Short))
			}

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString("\n")
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}
