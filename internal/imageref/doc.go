// Package imageref wraps distribution image reference parsing with the
// small surface the pipeline needs: familiar rendering and tag or digest
// pinnedness.
package imageref
