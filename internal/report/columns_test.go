package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateColumns(t *testing.T) {
	require.Len(t, TemplateColumns, 26)

	seen := make(map[string]bool, len(TemplateColumns))
	for _, col := range TemplateColumns {
		assert.False(t, seen[col], "duplicate column %q", col)
		seen[col] = true
	}

	// the warehouse template starts with the owner column and ends with the
	// temperature column
	assert.Equal(t, ColOwnerID, TemplateColumns[0])
	assert.Equal(t, ColTemperature, TemplateColumns[len(TemplateColumns)-1])
}

func TestFixedValues(t *testing.T) {
	assert.Equal(t, "A442", OwnerID)
	assert.Equal(t, "003", TemperatureFrozen)
	assert.Equal(t, "箱子", BoxItemNote)
}
