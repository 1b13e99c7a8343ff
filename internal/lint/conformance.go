package lint

import (
	"bytes"
	"fmt"

	"github.com/moby/buildkit/frontend/dockerfile/instructions"
	"github.com/moby/buildkit/frontend/dockerfile/parser"

	"github.com/cruciblehq/foundry/internal/pipeline"
)

// Cross-checks a rendered document against the pipeline it was rendered
// from, using BuildKit's Dockerfile frontend as the reference reader.
//
// The rendered bytes must parse, yield the same stage count and stage
// names in the same order, and every COPY --from must resolve to a stage
// defined earlier in the parsed document. Catches renderer drift that
// structural checks over the model cannot see.
func Conformance(rendered []byte, p *pipeline.Pipeline) error {
	result, err := parser.Parse(bytes.NewReader(rendered))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConformance, err)
	}

	stages, _, err := instructions.Parse(result.AST, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConformance, err)
	}

	if len(stages) != len(p.Stages) {
		return fmt.Errorf("%w: %d stages, model has %d", ErrConformance, len(stages), len(p.Stages))
	}

	defined := make(map[string]bool)
	for i, stage := range stages {
		if stage.Name != p.Stages[i].Name {
			return fmt.Errorf("%w: stage %d named %q, model has %q", ErrConformance, i+1, stage.Name, p.Stages[i].Name)
		}

		for _, cmd := range stage.Commands {
			cp, ok := cmd.(*instructions.CopyCommand)
			if !ok || cp.From == "" {
				continue
			}
			if !defined[cp.From] {
				return fmt.Errorf("%w: stage %q copies from undefined stage %q", ErrConformance, stage.Name, cp.From)
			}
		}

		if stage.Name != "" {
			defined[stage.Name] = true
		}
	}

	return nil
}
