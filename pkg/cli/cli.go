// Package cli parses the launcher's leading arguments and assembles the
// command that replaces the launcher process.
package cli

import (
	"fmt"
	"strings"
)

// Invocation is the parsed launcher command line.
// Immutable
type Invocation struct {
	// RemoteRef is the remote reference or alias to run in, empty when
	// the tool runs in the current directory.
	RemoteRef string
	// ForceClean requests a fresh clone even when a cached checkout exists.
	ForceClean bool
	// ToolArgs is everything forwarded to the tool, untouched.
	ToolArgs []string
}

// Parse splits the leading launcher arguments from the tool's own. Only
// the first argument is inspected: "-r <ref>" runs in a remote reference,
// "-rc <ref>" additionally discards any cached checkout first, and a
// leading "@alias" is shorthand for "-r @alias". Everything else is
// forwarded to the tool verbatim.
func Parse(args []string) (*Invocation, error) {
	inv := &Invocation{}
	rest := args

	if len(rest) > 0 {
		switch {
		case rest[0] == "-r" || rest[0] == "-rc":
			if len(rest) < 2 {
				return nil, fmt.Errorf("flag %s requires a remote reference", rest[0])
			}
			inv.RemoteRef = rest[1]
			inv.ForceClean = rest[0] == "-rc"
			rest = rest[2:]
		case strings.HasPrefix(rest[0], "@"):
			inv.RemoteRef = rest[0]
			rest = rest[1:]
		}
	}

	inv.ToolArgs = rest
	return inv, nil
}
