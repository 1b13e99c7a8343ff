package pipeline

import "fmt"

// One unit of the build pipeline: a base filesystem state plus an ordered
// sequence of actions applied to it.
type Stage struct {
	Name      string   // Stage name, referenced by later stages. May be empty.
	Base      string   // External image reference, or the name of an earlier stage.
	Comment   string   // Rendered above the stage in the emitted document.
	Actions   []Action // Applied in declaration order.
	Outputs   []string // Paths later stages may copy by stage reference.
	Transient bool     // True for build stages whose filesystem never ships.
}

// An ordered sequence of stages. Exactly one stage is non-transient; its
// accumulated filesystem state plus declared entrypoint and ports is the
// shippable artifact.
//
// A pipeline is constructed once, in full, before an external build engine
// executes it. This package never executes anything.
type Pipeline struct {
	Stages []Stage
}

// Returns the final (non-transient) stage, or false if none exists.
func (p *Pipeline) Final() (*Stage, bool) {
	for i := len(p.Stages) - 1; i >= 0; i-- {
		if !p.Stages[i].Transient {
			return &p.Stages[i], true
		}
	}
	return nil, false
}

// Returns the named stage, or false if no stage has that name.
func (p *Pipeline) Stage(name string) (*Stage, bool) {
	for i := range p.Stages {
		if p.Stages[i].Name != "" && p.Stages[i].Name == name {
			return &p.Stages[i], true
		}
	}
	return nil, false
}

// Returns a label for a stage, preferring the name when available and falling
// back to the 1-based index.
func stageLabel(name string, index int) string {
	if name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("%d", index+1)
}
