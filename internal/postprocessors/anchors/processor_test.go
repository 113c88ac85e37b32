package anchors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "page slug prefix is removed",
			in:   "[jump](#MyPage-SomeAnchor)",
			want: "[jump](#someanchor)",
		},
		{
			name: "cross page link keeps path",
			in:   "[other](/display/ENG/Other+Page#OtherPage-Install)",
			want: "[other](/display/ENG/Other+Page#install)",
		},
		{
			name: "link title is preserved",
			in:   `[jump](#Guide-Setup "Setup")`,
			want: `[jump](#setup "Setup")`,
		},
		{
			name: "raw html href",
			in:   `<a href="#Guide-Setup">x</a>`,
			want: `<a href="#setup">x</a>`,
		},
		{
			name: "several links on one line",
			in:   "[a](#Guide-One) and [b](#Guide-Two)",
			want: "[a](#one) and [b](#two)",
		},
		{
			name: "normalised fragment is unchanged",
			in:   "[jump](#someanchor)",
			want: "[jump](#someanchor)",
		},
		{
			name: "lowercase hyphenated fragment is unchanged",
			in:   "[jump](#some-anchor)",
			want: "[jump](#some-anchor)",
		},
		{
			name: "headings are not touched",
			in:   "# MyPage-SomeAnchor",
			want: "# MyPage-SomeAnchor",
		},
		{
			name: "no links",
			in:   "plain text",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"[jump](#MyPage-SomeAnchor)",
		"[a](#Guide-Multi-Part-Anchor) text [b](page.md#Page-X)",
		`<a href="#Release2-Notes">n</a>`,
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestProcessor_Process(t *testing.T) {
	p := New()
	assert.Equal(t, Name, p.Name())

	doc := &domain.MarkdownDocument{Content: "[jump](#MyPage-SomeAnchor)"}
	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "[jump](#someanchor)", doc.Content)
}
