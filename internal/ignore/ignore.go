// Package ignore excludes node paths from find and remove candidate sets
// based on a .holdallignore file kept next to the manifest.
package ignore

import (
	"bufio"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds the compiled ignore patterns. The zero value matches
// nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from path, one per line. Blank lines and # comments
// are skipped. A missing file yields an empty matcher and the read error, so
// callers can ignore the error and carry on.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether the slash-separated node path is ignored. A pattern
// with a trailing slash shadows a whole subtree; anything else is a
// doublestar glob tried against the full path and the final segment.
func (m Matcher) Match(nodePath string) bool {
	for _, pat := range m.patterns {
		if strings.HasSuffix(pat, "/") {
			if strings.HasPrefix(nodePath, pat) || strings.Contains(nodePath, "/"+pat) {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(pat, nodePath); ok {
			return true
		}
		base := nodePath
		if i := strings.LastIndex(nodePath, "/"); i >= 0 {
			base = nodePath[i+1:]
		}
		if ok, _ := doublestar.Match(pat, base); ok {
			return true
		}
	}
	return false
}
