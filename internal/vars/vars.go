// Package vars holds build information set with -ldflags.
package vars

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// Set at build time, e.g.
// -ldflags "-X github.com/woozymasta/vehicle-demo/internal/vars.Version=v1.0.0"
var (
	Version   = "dev"     // release version
	Commit    = "unknown" // git commit
	BuildTime = "unknown" // build timestamp
)

// Print writes the version information to stdout.
func Print() {
	Fprint(os.Stdout)
}

// Fprint writes the version information to w.
func Fprint(w io.Writer) {
	fmt.Fprintf(w, "version:    %s\n", Version)
	fmt.Fprintf(w, "commit:     %s\n", Commit)
	fmt.Fprintf(w, "build time: %s\n", BuildTime)
	fmt.Fprintf(w, "go:         %s\n", runtime.Version())
}
