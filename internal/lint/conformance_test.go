package lint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cruciblehq/foundry/internal/dockerfile"
	"github.com/cruciblehq/foundry/internal/pipeline"
	"github.com/cruciblehq/foundry/internal/tikv"
)

func TestConformanceProductionPipeline(t *testing.T) {
	p := tikv.Assemble(tikv.Default())

	rendered, err := dockerfile.Render(p)
	require.NoError(t, err)

	require.NoError(t, Conformance(rendered, p))
}

func TestConformanceStageCountMismatch(t *testing.T) {
	p := tikv.Assemble(tikv.Default())

	rendered, err := dockerfile.Render(p)
	require.NoError(t, err)

	truncated := &pipeline.Pipeline{Stages: p.Stages[:1]}
	err = Conformance(rendered, truncated)
	require.ErrorIs(t, err, ErrConformance)
	require.Contains(t, err.Error(), "stages")
}

func TestConformanceStageNameMismatch(t *testing.T) {
	p := tikv.Assemble(tikv.Default())

	rendered, err := dockerfile.Render(p)
	require.NoError(t, err)

	renamed := bytes.Replace(rendered, []byte("AS builder"), []byte("AS compiler"), 1)
	err = Conformance(renamed, p)
	require.ErrorIs(t, err, ErrConformance)
}

func TestConformanceUnresolvedCopyFrom(t *testing.T) {
	p := tikv.Assemble(tikv.Default())

	rendered, err := dockerfile.Render(p)
	require.NoError(t, err)

	// Point the cross-stage copies at a stage the document never defines.
	broken := bytes.ReplaceAll(rendered, []byte("--from=builder"), []byte("--from=ghost"))
	err = Conformance(broken, p)
	require.ErrorIs(t, err, ErrConformance)
	require.Contains(t, err.Error(), "ghost")
}

func TestConformanceUnparseableDocument(t *testing.T) {
	p := tikv.Assemble(tikv.Default())

	err := Conformance([]byte("FROM\n"), p)
	require.ErrorIs(t, err, ErrConformance)
}
