package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYen(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"129円", 129},
		{"1,000円", 1000},
		{"¥1,234", 1234},
		{"-195", -195},
		{"  3000 ", 3000},
		{"１２９円", 129},
		{"1500.0", 1500},
		{"2,147,483,647", 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYen(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseYen_Errors(t *testing.T) {
	for _, input := range []string{"", "-", "abc", "12.5", "2,147,483,648", "-99999999999999999999円"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseYen(input)
			assert.Error(t, err)
		})
	}
}

func TestParseYen_OutOfRange(t *testing.T) {
	_, err := ParseYen("99999999999999999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParseOptionalYen(t *testing.T) {
	got, err := ParseOptionalYen("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalYen("-")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalYen("-11")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -11, *got)

	_, err = ParseOptionalYen("x")
	assert.Error(t, err)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}
