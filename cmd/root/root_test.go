package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/zaim-csv/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "zaim-csv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Zaim import CSV")
	assert.Contains(t, root.Cmd.Long, "reference catalog")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	if root.Cmd.PersistentFlags().Lookup("input") == nil {
		root.Init()
	}

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"config", ""},
		{"log-level", ""},
		{"log-format", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}
