package lint

// Rule codes reported in findings.
//
// unresolved-copy-from: a copy references a stage that is not defined
// earlier in the pipeline. Also a hard validation error; lint reports
// every instance instead of stopping at the first.
//
// unpinned-build-base: a transient stage's base image carries no explicit
// tag or digest. The builder's base pins the toolchain environment for
// reproducibility; the final runtime base is a thin distribution shim
// outside that contract, so only build stages are checked.
//
// manifest-after-source: a host copy follows the full-context copy in the
// same stage. Anything copied after the whole tree shares its cache
// invalidation, defeating the point of copying it separately.
//
// runtime-metadata-in-transient-stage: an entrypoint or exposed port is
// declared in a stage whose filesystem never ships.
//
// final-stage-incomplete: the final stage declares no entrypoint or no
// exposed ports.
const (
	RuleUnresolvedCopyFrom = "unresolved-copy-from"
	RuleUnpinnedBuildBase  = "unpinned-build-base"
	RuleManifestAfterSrc   = "manifest-after-source"
	RuleRuntimeMetadata    = "runtime-metadata-in-transient-stage"
	RuleFinalIncomplete    = "final-stage-incomplete"
)
