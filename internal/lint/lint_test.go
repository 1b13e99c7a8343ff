package lint

import (
	"testing"

	"github.com/cruciblehq/foundry/internal/pipeline"
	"github.com/cruciblehq/foundry/internal/tikv"
)

func TestCheckProductionPipelineClean(t *testing.T) {
	findings := Check(tikv.Assemble(tikv.Default()))
	if len(findings) != 0 {
		t.Fatalf("findings = %v, want none", findings)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *pipeline.Pipeline
		rule     string
	}{
		{
			name: "unresolved copy from",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "ship", Base: "busybox:1.36", Actions: []pipeline.Action{
					pipeline.Copy{From: "missing", Source: "/x", Dest: "/y"},
				}},
			}},
			rule: RuleUnresolvedCopyFrom,
		},
		{
			name: "unpinned build base",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "build", Base: "centos", Transient: true},
				{Name: "ship", Base: "busybox:1.36"},
			}},
			rule: RuleUnpinnedBuildBase,
		},
		{
			name: "host copy after full-context copy",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "build", Base: "centos:7.6.1810", Transient: true, Actions: []pipeline.Action{
					pipeline.Workdir{Path: "/src"},
					pipeline.Copy{Source: ".", Dest: "."},
					pipeline.Copy{Source: "rust-toolchain", Dest: "./"},
				}},
				{Name: "ship", Base: "busybox:1.36"},
			}},
			rule: RuleManifestAfterSrc,
		},
		{
			name: "entrypoint in transient stage",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "build", Base: "centos:7.6.1810", Transient: true, Actions: []pipeline.Action{
					pipeline.Entrypoint{Argv: []string{"/x"}},
				}},
				{Name: "ship", Base: "busybox:1.36"},
			}},
			rule: RuleRuntimeMetadata,
		},
		{
			name: "ports in transient stage",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "build", Base: "centos:7.6.1810", Transient: true, Actions: []pipeline.Action{
					pipeline.Expose{Ports: []int{8080}},
				}},
				{Name: "ship", Base: "busybox:1.36"},
			}},
			rule: RuleRuntimeMetadata,
		},
		{
			name: "final stage missing metadata",
			pipeline: &pipeline.Pipeline{Stages: []pipeline.Stage{
				{Name: "ship", Base: "busybox:1.36"},
			}},
			rule: RuleFinalIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Check(tt.pipeline)
			if len(findings) == 0 {
				t.Fatal("expected findings, got none")
			}
			for _, f := range findings {
				if f.Rule == tt.rule {
					return
				}
			}
			t.Fatalf("findings = %v, want rule %s", findings, tt.rule)
		})
	}
}

func TestCheckReportsEveryUnresolvedCopy(t *testing.T) {
	p := &pipeline.Pipeline{Stages: []pipeline.Stage{
		{Name: "ship", Base: "busybox:1.36", Actions: []pipeline.Action{
			pipeline.Copy{From: "a", Source: "/x", Dest: "/x"},
			pipeline.Copy{From: "b", Source: "/y", Dest: "/y"},
			pipeline.Expose{Ports: []int{80}},
			pipeline.Entrypoint{Argv: []string{"/x"}},
		}},
	}}

	count := 0
	for _, f := range Check(p) {
		if f.Rule == RuleUnresolvedCopyFrom {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("unresolved-copy-from findings = %d, want 2 (lint reports all, not first)", count)
	}
}

func TestRuntimeBaseMayFloat(t *testing.T) {
	// The final stage's base is a thin distribution shim outside the
	// reproducibility contract; only build stages must pin.
	p := &pipeline.Pipeline{Stages: []pipeline.Stage{
		{Name: "ship", Base: "pingcap/alpine-glibc", Actions: []pipeline.Action{
			pipeline.Expose{Ports: []int{80}},
			pipeline.Entrypoint{Argv: []string{"/x"}},
		}},
	}}

	for _, f := range Check(p) {
		if f.Rule == RuleUnpinnedBuildBase {
			t.Fatalf("unexpected finding %v for a non-transient stage", f)
		}
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{Rule: RuleUnpinnedBuildBase, Stage: `"build"`, Detail: "base floats"}
	want := `unpinned-build-base: stage "build": base floats`
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
