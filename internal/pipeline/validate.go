package pipeline

import (
	"fmt"
	"path"

	"github.com/cruciblehq/foundry/internal/imageref"
)

// Checks the structural invariants an external build engine relies on.
//
// Every stage's base must be resolvable before any of its actions: either
// the name of a previously fully-defined stage or a parseable image
// reference. Stage names must be unique. Exactly one stage is
// non-transient, and it must be last. Within a stage, a Copy naming
// another stage requires that stage defined earlier in the pipeline, and
// a Copy with a relative destination requires a Workdir earlier in the
// same stage.
//
// The first violation wins.
func (p *Pipeline) Validate() error {
	if len(p.Stages) == 0 {
		return fmt.Errorf("%w: no stages", ErrPipeline)
	}

	defined := make(map[string]int)
	finals := 0

	for i := range p.Stages {
		stage := &p.Stages[i]
		label := stageLabel(stage.Name, i)

		if stage.Name != "" {
			if _, ok := defined[stage.Name]; ok {
				return fmt.Errorf("%w: duplicate stage name %q", ErrStage, stage.Name)
			}
		}

		if err := validateBase(stage.Base, defined); err != nil {
			return fmt.Errorf("%w: stage %s: %v", ErrStage, label, err)
		}

		if err := validateActions(stage, defined); err != nil {
			return fmt.Errorf("stage %s: %w", label, err)
		}

		// Define the stage only after its actions are checked, so a
		// copy referencing the containing stage fails resolution.
		if stage.Name != "" {
			defined[stage.Name] = i
		}

		if !stage.Transient {
			finals++
			if i != len(p.Stages)-1 {
				return fmt.Errorf("%w: final stage %s is not last", ErrPipeline, label)
			}
		}
	}

	if finals != 1 {
		return fmt.Errorf("%w: %d final stages, want exactly one", ErrPipeline, finals)
	}

	return nil
}

// Checks that a stage base names an earlier stage or parses as an image
// reference.
func validateBase(base string, defined map[string]int) error {
	if base == "" {
		return fmt.Errorf("empty base")
	}
	if _, ok := defined[base]; ok {
		return nil
	}
	if _, err := imageref.Parse(base); err != nil {
		return err
	}
	return nil
}

// Checks every action of a stage in declaration order, accumulating the
// in-stage state the order-dependent rules need.
func validateActions(stage *Stage, defined map[string]int) error {
	state := newEnvState()

	for i, action := range stage.Actions {
		if err := validateAction(action, state, defined); err != nil {
			return fmt.Errorf("%w: action %d: %v", ErrAction, i+1, err)
		}
		state.apply(action)
	}

	return nil
}

// Checks a single action against the state accumulated so far.
func validateAction(action Action, state *envState, defined map[string]int) error {
	switch a := action.(type) {
	case InstallPackages:
		if len(a.Packages) == 0 {
			return fmt.Errorf("install with no packages")
		}
	case SetEnv:
		if a.Key == "" {
			return fmt.Errorf("env with empty key")
		}
	case Run:
		if a.Command == "" {
			return fmt.Errorf("run with empty command")
		}
	case Copy:
		if a.Source == "" || a.Dest == "" {
			return fmt.Errorf("copy requires source and destination")
		}
		if a.From != "" {
			if _, ok := defined[a.From]; !ok {
				return fmt.Errorf("copy from undefined stage %q", a.From)
			}
		}
		if !path.IsAbs(a.Dest) && state.workdir == "" {
			return fmt.Errorf("relative dest %q requires workdir", a.Dest)
		}
	case Workdir:
		if a.Path == "" {
			return fmt.Errorf("empty workdir")
		}
	case Entrypoint:
		if len(a.Argv) == 0 {
			return fmt.Errorf("empty entrypoint")
		}
	case Expose:
		if len(a.Ports) == 0 {
			return fmt.Errorf("expose with no ports")
		}
		for _, port := range a.Ports {
			if port < 1 || port > 65535 {
				return fmt.Errorf("port %d out of range", port)
			}
		}
	default:
		return fmt.Errorf("unknown action %T", action)
	}
	return nil
}
