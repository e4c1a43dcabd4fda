package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	names := []string{
		FieldAccount, FieldFile, FieldRow, FieldRecord, FieldMethod, FieldStore,
		FieldItem, FieldNote, FieldReason, FieldError, FieldCount, FieldSkipped, FieldRunID,
		FieldInputFile, FieldOutputFile, FieldComponent, FieldDuration, FieldEncoding,
		FieldCatalogSize,
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate field name %q", name)
		seen[name] = true
	}
}
