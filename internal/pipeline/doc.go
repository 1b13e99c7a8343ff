// Package pipeline models a multi-stage container build as data.
//
// A pipeline is an ordered sequence of stages. Each stage starts from a
// base (an external image reference or a previously defined stage) and
// applies an ordered sequence of actions: package installs, environment
// declarations, shell commands, file copies, and runtime metadata. The
// single non-transient stage is the final image.
//
// The package only describes builds; it never executes them. Validate
// checks the structural invariants an external build engine relies on,
// and ImageConfig projects the final stage's accumulated metadata into
// an OCI image configuration.
package pipeline
