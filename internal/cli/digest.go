package cli

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/cruciblehq/foundry/internal/dockerfile"
	"github.com/cruciblehq/foundry/internal/tikv"
)

// Represents the 'foundry digest' command.
type DigestCmd struct{}

// Executes the digest command.
//
// Prints the canonical sha256 digest of the emitted specification, for
// confirming byte-identical output across machines without diffing the
// documents themselves.
func (c *DigestCmd) Run(ctx context.Context) error {
	out, err := dockerfile.Render(tikv.Assemble(tikv.Default()))
	if err != nil {
		return err
	}

	fmt.Println(digest.FromBytes(out))
	return nil
}
