package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/zaim-csv/cmd/batch"
)

func TestBatchCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "Batch process")
	assert.NotNil(t, batch.Cmd.RunE)
}

func TestBatchCommand_LongDescription(t *testing.T) {
	assert.Contains(t, batch.Cmd.Long, "input directory")
	assert.Contains(t, batch.Cmd.Long, "error.csv")
	assert.Contains(t, batch.Cmd.Long, "Example")
}
