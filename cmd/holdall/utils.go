package holdall

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"golang.org/x/term"

	"github.com/holdall/holdall/internal/config"
	"github.com/holdall/holdall/internal/ignore"
	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/update"
)

func selfUpdate() error {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// Update from GitHub Releases: holdall/holdall
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "holdall/holdall")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// maybeWarnUpdate prints a one-line nudge when a newer release exists. Only
// for human-facing output, never JSON.
func maybeWarnUpdate() {
	if flagJSON || flagNoUpdateCheck {
		return
	}
	if latest, newer, _ := update.Check(version, false); newer && latest != "" {
		_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'holdall update' to upgrade\n", latest)
	}
}

// resolveManifest picks the manifest path: CLI > local config > global
// config > conventional names in the working directory.
func resolveManifest() (string, config.FileConfig, config.FileConfig) {
	wd, _ := os.Getwd()
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(wd); err == nil {
		lcfg = c
	}

	path := pickString(flagManifest, lcfg.Manifest, gcfg.Manifest)
	if path == "" {
		for _, name := range []string{"holdall.yml", "holdall.yaml"} {
			if _, err := os.Stat(filepath.Join(wd, name)); err == nil {
				path = name
				break
			}
		}
	}
	if path == "" {
		path = "holdall.yml"
	}
	return path, lcfg, gcfg
}

// loadTree loads the manifest picked by resolveManifest and returns the tree
// plus the path it came from.
func loadTree() (*inventory.Item, string, config.FileConfig, config.FileConfig, error) {
	path, lcfg, gcfg := resolveManifest()
	root, err := inventory.Load(path)
	if err != nil {
		return nil, path, lcfg, gcfg, fmt.Errorf("load %s: %w", path, err)
	}
	return root, path, lcfg, gcfg, nil
}

// loadIgnore loads the ignore file: CLI > config > .holdallignore next to the
// manifest. A missing file means an empty matcher.
func loadIgnore(manifest string, lcfg, gcfg config.FileConfig) ignore.Matcher {
	path := pickString(flagIgnoreFile, lcfg.IgnoreFile, gcfg.IgnoreFile)
	if path == "" {
		path = filepath.Join(filepath.Dir(manifest), ".holdallignore")
	}
	m, err := ignore.Load(path)
	if err != nil {
		return ignore.Matcher{}
	}
	return m
}

// colorEnabled folds the no-color settings with a TTY check: piped output
// never gets ANSI sequences.
func colorEnabled(noColorCLI bool, local, global *bool) bool {
	if pickBool(noColorCLI, local, global) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
