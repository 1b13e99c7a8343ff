package lint

import (
	"fmt"

	"github.com/cruciblehq/foundry/internal/imageref"
	"github.com/cruciblehq/foundry/internal/pipeline"
)

// A single advisory result.
type Finding struct {
	Rule   string // Rule code, one of the Rule constants.
	Stage  string // Stage label the finding applies to.
	Detail string // Human-readable explanation.
}

// Formats the finding as "rule: stage X: detail".
func (f Finding) String() string {
	return fmt.Sprintf("%s: stage %s: %s", f.Rule, f.Stage, f.Detail)
}

// Runs every rule over the pipeline and returns all findings in stage,
// then rule-encounter, order.
func Check(p *pipeline.Pipeline) []Finding {
	var findings []Finding

	defined := make(map[string]bool)

	for i := range p.Stages {
		stage := &p.Stages[i]
		label := stageLabel(stage.Name, i)

		findings = append(findings, checkBase(stage, label, defined)...)
		findings = append(findings, checkActions(stage, label, defined)...)

		if stage.Name != "" {
			defined[stage.Name] = true
		}
	}

	findings = append(findings, checkFinal(p)...)

	return findings
}

// Reports a transient stage whose external base is not pinned to an
// exact tag or digest.
func checkBase(stage *pipeline.Stage, label string, defined map[string]bool) []Finding {
	if !stage.Transient || defined[stage.Base] {
		return nil
	}

	ref, err := imageref.Parse(stage.Base)
	if err != nil || ref.Pinned() {
		// Unparseable bases are validation's problem, not lint's.
		return nil
	}

	return []Finding{{
		Rule:   RuleUnpinnedBuildBase,
		Stage:  label,
		Detail: fmt.Sprintf("base %q floats; pin an exact tag", stage.Base),
	}}
}

// Walks a stage's actions, reporting unresolved cross-stage copies, host
// copies after the full-context copy, and runtime metadata that can
// never ship.
func checkActions(stage *pipeline.Stage, label string, defined map[string]bool) []Finding {
	var findings []Finding
	contextCopied := false

	for _, action := range stage.Actions {
		switch a := action.(type) {
		case pipeline.Copy:
			if a.From != "" {
				if !defined[a.From] {
					findings = append(findings, Finding{
						Rule:   RuleUnresolvedCopyFrom,
						Stage:  label,
						Detail: fmt.Sprintf("copy from undefined stage %q", a.From),
					})
				}
				continue
			}
			if contextCopied {
				findings = append(findings, Finding{
					Rule:   RuleManifestAfterSrc,
					Stage:  label,
					Detail: fmt.Sprintf("host copy of %q follows the full-context copy; its layer can never cache independently", a.Source),
				})
			}
			if a.Source == "." {
				contextCopied = true
			}

		case pipeline.Entrypoint:
			if stage.Transient {
				findings = append(findings, Finding{
					Rule:   RuleRuntimeMetadata,
					Stage:  label,
					Detail: "entrypoint declared in a stage that never ships",
				})
			}

		case pipeline.Expose:
			if stage.Transient {
				findings = append(findings, Finding{
					Rule:   RuleRuntimeMetadata,
					Stage:  label,
					Detail: "exposed ports declared in a stage that never ships",
				})
			}
		}
	}

	return findings
}

// Reports a final stage missing its entrypoint or exposed ports.
func checkFinal(p *pipeline.Pipeline) []Finding {
	final, ok := p.Final()
	if !ok {
		return nil
	}

	var hasEntrypoint, hasPorts bool
	for _, action := range final.Actions {
		switch action.(type) {
		case pipeline.Entrypoint:
			hasEntrypoint = true
		case pipeline.Expose:
			hasPorts = true
		}
	}

	var findings []Finding
	if !hasEntrypoint {
		findings = append(findings, Finding{
			Rule:   RuleFinalIncomplete,
			Stage:  final.Name,
			Detail: "final stage declares no entrypoint",
		})
	}
	if !hasPorts {
		findings = append(findings, Finding{
			Rule:   RuleFinalIncomplete,
			Stage:  final.Name,
			Detail: "final stage declares no exposed ports",
		})
	}

	return findings
}

// Returns a label for a stage, preferring the name when available and
// falling back to the 1-based index.
func stageLabel(name string, index int) string {
	if name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("%d", index+1)
}
