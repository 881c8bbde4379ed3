// Package buildinfo reports how the running binary was built, from the
// module and VCS stamps the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Module       string
	GoVersion    string
	Revision     string
	RevisionTime string
	Dirty        bool
}

func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = " The working tree had uncommitted changes."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %s from %s.%s",
		i.Module, i.GoVersion, i.Revision, i.RevisionTime, dirty)
}

// Get reads the build stamps. Binaries built outside a VCS checkout carry no
// revision information; those fields stay empty.
func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Module = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Revision = s.Value
		case "vcs.time":
			out.RevisionTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

func PrintToStderr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
