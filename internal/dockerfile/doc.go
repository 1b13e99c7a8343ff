// Package dockerfile serializes a pipeline into Dockerfile bytes.
//
// Rendering is pure: the same pipeline always produces the same bytes,
// and no policy lives here beyond the textual encoding of each action.
// Package installation renders through yum, the manager of the RPM bases
// this generator targets; only transient build stages install packages.
package dockerfile
