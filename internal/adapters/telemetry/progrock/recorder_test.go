package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/telemetry/progrock"
)

func TestRecorder_RecordAndClose(t *testing.T) {
	r := progrock.New()

	_, vertex := r.Record(context.Background(), "merge doc.json")
	require.NotNil(t, vertex)

	_, err := vertex.Write([]byte("merging\n"))
	assert.NoError(t, err)

	vertex.Done(nil)
	assert.NoError(t, r.Close())
}

func TestRecorder_SameNameIsStable(t *testing.T) {
	r := progrock.New()

	_, first := r.Record(context.Background(), "doc.json")
	_, second := r.Record(context.Background(), "doc.json")
	assert.NotNil(t, first)
	assert.NotNil(t, second)

	first.Done(nil)
	second.Done(nil)
	assert.NoError(t, r.Close())
}
