package tikv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cruciblehq/foundry/internal/pipeline"
)

// Verifies a local source tree against the assembled pipeline's host
// expectations.
//
// Checks that every host copy source exists under dir and that the
// toolchain manifest parses to a single version token. Purely advisory:
// emission never consults the source tree, and the returned problems
// describe what the downstream build engine would trip over.
func VerifyContext(cfg Config, dir string) []string {
	var problems []string

	p := Assemble(cfg)
	for _, stage := range p.Stages {
		for _, action := range stage.Actions {
			cp, ok := action.(pipeline.Copy)
			if !ok || cp.From != "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, cp.Source)); err != nil {
				problems = append(problems, fmt.Sprintf("missing copy source %q", cp.Source))
			}
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, cfg.Manifest))
	if err != nil {
		// Absence is already reported as a missing copy source.
		return problems
	}
	if _, err := ToolchainVersion(data); err != nil {
		problems = append(problems, err.Error())
	}

	return problems
}
