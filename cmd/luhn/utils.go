package luhn

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/varalys/luhn/internal/config"
)

// doSelfUpdate is a package var so tests can stub the GitHub round trip.
var doSelfUpdate = selfUpdate

// attemptSelfUpdate replaces the running binary with the latest release and
// reports the outcome on w. It returns true when the binary changed and the
// current invocation should stop.
func attemptSelfUpdate(w io.Writer) bool {
	if err := doSelfUpdate(); err != nil {
		_, _ = fmt.Fprintln(w, "self-update failed:", err)
		return false
	}
	_, _ = fmt.Fprintln(w, "updated to latest; re-run command")
	return true
}

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
	// Update from GitHub Releases: varalys/luhn
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "varalys/luhn")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// loadConfigs reads the global and working-directory config files. Missing or
// unreadable files come back as zero configs.
func loadConfigs() (gcfg, lcfg config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}
	return gcfg, lcfg
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
