package pipeline

import (
	"fmt"
	"slices"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Projects the final stage's accumulated runtime metadata into an OCI
// image configuration.
//
// Environment variables and the working directory are accumulated across
// the final stage's actions in declaration order. Exposed ports are
// recorded in the OCI "port/tcp" form. Later Entrypoint declarations
// replace earlier ones.
func (p *Pipeline) ImageConfig() (ocispec.ImageConfig, error) {
	final, ok := p.Final()
	if !ok {
		return ocispec.ImageConfig{}, fmt.Errorf("%w: no final stage", ErrPipeline)
	}

	state := newEnvState()
	cfg := ocispec.ImageConfig{}

	for _, action := range final.Actions {
		state.apply(action)

		switch a := action.(type) {
		case Entrypoint:
			cfg.Entrypoint = slices.Clone(a.Argv)
		case Expose:
			if cfg.ExposedPorts == nil {
				cfg.ExposedPorts = make(map[string]struct{}, len(a.Ports))
			}
			for _, port := range a.Ports {
				cfg.ExposedPorts[fmt.Sprintf("%d/tcp", port)] = struct{}{}
			}
		}
	}

	cfg.Env = state.environ()
	cfg.WorkingDir = state.workdir

	return cfg, nil
}
