package heading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		title string
		want  string
	}{
		{
			name:  "exact title",
			in:    "# Guide\n\nBody",
			title: "Guide",
			want:  "\nBody",
		},
		{
			name:  "case insensitive",
			in:    "# user GUIDE\nBody",
			title: "User Guide",
			want:  "Body",
		},
		{
			name:  "leading blank lines",
			in:    "\n\n# Guide\nBody",
			title: "Guide",
			want:  "Body",
		},
		{
			name:  "closing hashes",
			in:    "# Guide #\nBody",
			title: "Guide",
			want:  "Body",
		},
		{
			name:  "only the heading",
			in:    "# Guide",
			title: "Guide",
			want:  "",
		},
		{
			name:  "removes exactly one line",
			in:    "# Guide\n# Guide\nBody",
			title: "Guide",
			want:  "# Guide\nBody",
		},
		{
			name:  "regex characters in title",
			in:    "# C++ (v2.0)?\nBody",
			title: "C++ (v2.0)?",
			want:  "Body",
		},
		{
			name:  "different title is kept",
			in:    "# Other\nBody",
			title: "Guide",
			want:  "# Other\nBody",
		},
		{
			name:  "title prefix is kept",
			in:    "# Guide Extended\nBody",
			title: "Guide",
			want:  "# Guide Extended\nBody",
		},
		{
			name:  "second level heading is kept",
			in:    "## Guide\nBody",
			title: "Guide",
			want:  "## Guide\nBody",
		},
		{
			name:  "heading not at top is kept",
			in:    "Intro\n# Guide\nBody",
			title: "Guide",
			want:  "Intro\n# Guide\nBody",
		},
		{
			name:  "no hint is a no-op",
			in:    "# Guide\nBody",
			title: "",
			want:  "# Guide\nBody",
		},
		{
			name:  "crlf line ending",
			in:    "# Guide\r\nBody",
			title: "Guide",
			want:  "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in, tt.title))
		})
	}
}

func TestProcessor_Process(t *testing.T) {
	p := New()
	assert.Equal(t, Name, p.Name())

	doc := &domain.MarkdownDocument{StripTitle: "Root", Content: "# Root\nBody"}
	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "Body", doc.Content)

	doc = &domain.MarkdownDocument{Content: "# Root\nBody"}
	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "# Root\nBody", doc.Content)
}
