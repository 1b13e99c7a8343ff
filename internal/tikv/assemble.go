package tikv

import (
	"fmt"
	"path"

	"github.com/cruciblehq/foundry/internal/pipeline"
)

// Stage names referenced across the pipeline.
const (
	BuilderStage = "builder"
	RuntimeStage = "runtime"
)

// Assembles the two-stage build pipeline from the given policy.
//
// Pure and infallible: the same configuration always yields the same
// pipeline, and nothing is read from the environment.
//
// Builder action order is load-bearing. The repository package index is
// refreshed and updated twice, once before and once after the extended
// repository is enabled, so the second pass queries it. The library-path
// variables precede the toolchain bootstrap because the bootstrap and
// everything after it link against the shared local path. The manifest is
// copied alone before the full source tree so a build engine's layer
// cache re-runs the expensive toolchain switch only when the manifest
// changes; the full-tree copy is deliberately the last data-bearing
// action before the build.
func Assemble(cfg Config) *pipeline.Pipeline {
	outputs := make([]string, len(cfg.Binaries))
	for i, bin := range cfg.Binaries {
		outputs[i] = path.Join(cfg.ProjectRoot, cfg.OutputDir, bin)
	}

	builder := pipeline.Stage{
		Name:      BuilderStage,
		Base:      cfg.BuilderBase,
		Comment:   "Builds TiKV from source with a pinned Rust toolchain.",
		Transient: true,
		Outputs:   outputs,
		Actions: []pipeline.Action{
			pipeline.Run{Command: "yum update -y"},
			pipeline.InstallPackages{Packages: []string{cfg.ExtraRepository}},
			pipeline.Run{Command: "yum update -y"},
			pipeline.InstallPackages{Packages: cfg.Packages},
			pipeline.Run{Command: fmt.Sprintf("ln -s %s %s", cfg.BuildToolLink.Target, cfg.BuildToolLink.Name)},
			pipeline.SetEnv{Key: "LIBRARY_PATH", Value: cfg.LibraryPath + ":$LIBRARY_PATH"},
			pipeline.SetEnv{Key: "LD_LIBRARY_PATH", Value: cfg.LibraryPath + ":$LD_LIBRARY_PATH"},
			pipeline.Run{Command: fmt.Sprintf("curl %s -sSf | sh -s -- --no-modify-path --default-toolchain none -y", cfg.InstallerURL)},
			pipeline.SetEnv{Key: "PATH", Value: cfg.ToolchainBin + ":$PATH"},
			pipeline.Workdir{Path: cfg.ProjectRoot},
			pipeline.Copy{Source: cfg.Manifest, Dest: "./"},
			pipeline.Run{Command: fmt.Sprintf("rustup self update && rustup set profile minimal && rustup default $(cat %q)", cfg.Manifest)},
			pipeline.Copy{Source: ".", Dest: "."},
			pipeline.Run{Command: cfg.BuildCommand},
		},
	}

	runtime := pipeline.Stage{
		Name:    RuntimeStage,
		Base:    cfg.RuntimeBase,
		Comment: "Minimal glibc runtime with the release binaries.",
	}
	for i, bin := range cfg.Binaries {
		runtime.Actions = append(runtime.Actions, pipeline.Copy{
			From:   BuilderStage,
			Source: outputs[i],
			Dest:   "/" + bin,
		})
	}
	runtime.Actions = append(runtime.Actions,
		pipeline.Expose{Ports: cfg.Ports},
		pipeline.Entrypoint{Argv: []string{"/" + cfg.Binaries[0]}},
	)

	return &pipeline.Pipeline{Stages: []pipeline.Stage{builder, runtime}}
}
