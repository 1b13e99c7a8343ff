package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/foundry/internal/dockerfile"
	"github.com/cruciblehq/foundry/internal/lint"
	"github.com/cruciblehq/foundry/internal/tikv"
)

// Represents the 'foundry lint' command.
type LintCmd struct {
	Context string `help:"Verify host copy sources against a local source tree." placeholder:"DIR" type:"existingdir"`
}

// Executes the lint command.
//
// Runs the structural rules over the assembled pipeline, a BuildKit
// conformance pass over the rendered document, and, when --context is
// given, a pre-flight over the local source tree. Findings go to stdout;
// any finding makes the command fail.
func (c *LintCmd) Run(ctx context.Context) error {
	cfg := tikv.Default()
	p := tikv.Assemble(cfg)

	count := 0
	for _, f := range lint.Check(p) {
		fmt.Println(f)
		count++
	}

	rendered, err := dockerfile.Render(p)
	if err != nil {
		return err
	}
	if err := lint.Conformance(rendered, p); err != nil {
		fmt.Println(err)
		count++
	}

	if c.Context != "" {
		for _, problem := range tikv.VerifyContext(cfg, c.Context) {
			fmt.Println(problem)
			count++
		}
	}

	if count > 0 {
		return fmt.Errorf("%d finding(s)", count)
	}
	return nil
}
