package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntity(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog-info.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadEntityAnnotation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr string
	}{
		{
			name: "single document",
			content: `kind: Component
metadata:
  name: a
  annotations:
    backstage.io/techdocs-ref: url:https://x.atlassian.net/wiki/spaces/A/pages/1
`,
			want: "url:https://x.atlassian.net/wiki/spaces/A/pages/1",
		},
		{
			name: "second document carries annotation",
			content: `kind: System
metadata:
  name: sys
---
kind: Component
metadata:
  name: b
  annotations:
    backstage.io/techdocs-ref: confluence-url:https://wiki/display/B/Home
`,
			want: "confluence-url:https://wiki/display/B/Home",
		},
		{
			name: "no annotation",
			content: `kind: Component
metadata:
  name: c
`,
			wantErr: "no backstage.io/techdocs-ref annotation",
		},
		{
			name:    "invalid yaml",
			content: "metadata: [unclosed",
			wantErr: "parse entity file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readEntityAnnotation(writeEntity(t, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadEntityAnnotation_MissingFile(t *testing.T) {
	_, err := readEntityAnnotation(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open entity file")
}
