// Package serovis holds the small path helpers its commands share.
package serovis

import (
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands a leading ~ to the current user's home directory, so
// that directory flags like -i ~/reads work even when the shell has not
// already expanded them. Other paths pass through untouched.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~"))
}
