package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

const testRef = "confluence-url:https://acme.atlassian.net/wiki/spaces/ENG/pages/123/Runbook"

func TestPrepareCmd_Use(t *testing.T) {
	assert.Equal(t, "prepare [annotation]", prepareCmd.Use)
}

func TestPrepareCmd_RequiresAnnotation(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "prepare")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "annotation or --entity is required")
}

func TestPrepareCmd_ServiceNotConfigured(t *testing.T) {
	setupTestServices(t)
	Configure(Options{DocsErr: domain.ErrBaseURLRequired})

	_, err := execute(t, "", "prepare", testRef)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBaseURLRequired)
	assert.Contains(t, err.Error(), "docs service not configured")
}

func TestPrepareCmd_Prepares(t *testing.T) {
	preparer := setupTestServices(t)

	out, err := execute(t, "", "prepare", testRef)

	require.NoError(t, err)
	assert.Contains(t, out, `Prepared "Runbook" (cache token 123)`)
	assert.Contains(t, out, preparer.result.OutputDir)
	assert.Equal(t, []string{testRef}, preparer.refs)
}

func TestPrepareCmd_SecondRunIsUpToDate(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "prepare", testRef)
	require.NoError(t, err)

	out, err := execute(t, "", "prepare", testRef)
	require.NoError(t, err)
	assert.Contains(t, out, "Up to date:")
}

func TestPrepareCmd_Error(t *testing.T) {
	preparer := setupTestServices(t)
	preparer.err = &domain.NotFoundError{Kind: "page", Query: "123"}

	_, err := execute(t, "", "prepare", testRef)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "page 123 not found")
}

func TestPrepareCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "prepare", "--json", testRef)

	require.NoError(t, err)
	assert.Contains(t, out, `"CacheToken": "123"`)
	assert.Contains(t, out, `"NotModified": false`)
}

func TestPrepareCmd_FromEntity(t *testing.T) {
	preparer := setupTestServices(t)
	path := filepath.Join(t.TempDir(), "catalog-info.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`apiVersion: backstage.io/v1alpha1
kind: Component
metadata:
  name: runbook
  annotations:
    backstage.io/techdocs-ref: `+testRef+`
spec:
  type: service
`), 0644))

	_, err := execute(t, "", "prepare", "--entity", path)

	require.NoError(t, err)
	assert.Equal(t, []string{testRef}, preparer.refs)
}

func TestPrepareCmd_EntityAndArgument(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "prepare", "--entity", "x.yaml", testRef)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}
