package tikv

import (
	"fmt"
	"strings"
)

// Parses the pinned toolchain version from manifest contents.
//
// The manifest holds exactly one version token (e.g. "1.50.0"), optionally
// surrounded by whitespace. The emitted pipeline defers reading the
// manifest to the build engine; this parser serves pre-flight checks over
// a local source tree.
func ToolchainVersion(data []byte) (string, error) {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrManifest)
	}

	fields := strings.Fields(s)
	if len(fields) != 1 {
		return "", fmt.Errorf("%w: %d tokens, want exactly one version", ErrManifest, len(fields))
	}

	return fields[0], nil
}
