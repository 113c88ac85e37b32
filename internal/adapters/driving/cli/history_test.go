package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No preparations yet.")
}

func TestHistoryCmd_ListsPreparations(t *testing.T) {
	setupTestServices(t)
	_, err := execute(t, "", "prepare", testRef)
	require.NoError(t, err)

	out, err := execute(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, "Runbook")
	assert.Contains(t, out, "Annotation:  "+testRef)
	assert.Contains(t, out, "Cache token: 123")
}

func TestHistoryCmd_JSON(t *testing.T) {
	setupTestServices(t)
	_, err := execute(t, "", "prepare", testRef)
	require.NoError(t, err)

	out, err := execute(t, "", "history", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"Ref": "`+testRef+`"`)
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	setupTestServices(t)
	Configure(Options{})

	_, err := execute(t, "", "history")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs service not configured")
}
