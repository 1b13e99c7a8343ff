package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cruciblehq/foundry/internal/dockerfile"
	"github.com/cruciblehq/foundry/internal/tikv"
)

// Represents the 'foundry emit' command, also the default command.
type EmitCmd struct{}

// Executes the emit command.
//
// Assembles the pipeline from the fixed policy, validates it, renders it,
// and writes the document to stdout. The output is byte-identical across
// runs; nothing environment-dependent is embedded.
func (c *EmitCmd) Run(ctx context.Context) error {
	p := tikv.Assemble(tikv.Default())

	if err := p.Validate(); err != nil {
		return err
	}

	out, err := dockerfile.Render(p)
	if err != nil {
		return err
	}

	slog.Debug("emitting specification", "stages", len(p.Stages), "bytes", len(out))

	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("write specification: %w", err)
	}
	return nil
}
