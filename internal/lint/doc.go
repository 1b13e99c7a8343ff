// Package lint runs advisory structural rules over an assembled pipeline
// and a conformance pass over its rendered form.
//
// Findings never block emission; they exist to catch policy edits that
// would silently break reproducibility or the layer-caching rationale
// the action order encodes. Conformance re-parses the rendered document
// with BuildKit's Dockerfile frontend and cross-checks it against the
// model, so a renderer change that BuildKit would reject is caught
// before a build engine sees it.
package lint
