// buildinfoprint is imported for its side effect: it prints the binary's
// build provenance to os.Stderr at startup.
package buildinfoprint

import "github.com/bhedi/serovis/buildinfo"

func init() {
	buildinfo.PrintToStderr()
}
