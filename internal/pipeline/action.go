package pipeline

// One declarative build instruction within a stage.
//
// Actions are order-dependent: SetEnv and Workdir affect only the actions
// that follow them in the same stage, and a Copy referencing another stage
// requires that stage to be fully defined earlier in the pipeline.
type Action interface {
	isAction()
}

// Installs system packages through the stage's package manager. The
// package cache is cleaned in the same instruction so it never lands in
// a shipped layer.
type InstallPackages struct {
	Packages []string
}

// Declares an environment variable for all subsequent actions in the
// stage and for the produced image.
type SetEnv struct {
	Key   string
	Value string
}

// Executes a shell command.
type Run struct {
	Command string
}

// Copies files into the stage. An empty From copies from the host build
// context; otherwise From names an earlier stage whose filesystem is the
// source.
type Copy struct {
	From   string
	Source string
	Dest   string
}

// Sets the working directory for subsequent actions and the produced image.
type Workdir struct {
	Path string
}

// Declares the produced image's entry point.
type Entrypoint struct {
	Argv []string
}

// Declares the TCP ports the produced image listens on.
type Expose struct {
	Ports []int
}

func (InstallPackages) isAction() {}
func (SetEnv) isAction()          {}
func (Run) isAction()             {}
func (Copy) isAction()            {}
func (Workdir) isAction()         {}
func (Entrypoint) isAction()      {}
func (Expose) isAction()          {}
