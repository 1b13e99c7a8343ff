package cli

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cruciblehq/foundry/internal/tikv"
)

// Represents the 'foundry policy' command.
type PolicyCmd struct{}

// Executes the policy command.
//
// Prints the active build policy as YAML. Introspection only: the
// generator never reads configuration back, so editing the output
// changes nothing.
func (c *PolicyCmd) Run(ctx context.Context) error {
	out, err := yaml.Marshal(tikv.Default())
	if err != nil {
		return fmt.Errorf("marshal policy: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}
