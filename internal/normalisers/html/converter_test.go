package html

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

type recordingPipeline struct {
	docs []domain.MarkdownDocument
	err  error
}

func (p *recordingPipeline) Process(_ context.Context, doc *domain.MarkdownDocument) error {
	p.docs = append(p.docs, *doc)
	if p.err != nil {
		return p.err
	}
	doc.Content = "processed"
	return nil
}

func TestConverter_Convert(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(),
		`<h1>Guide</h1><p>See <a href="#Guide-Setup">setup</a> and <strong>read</strong>.</p>`, "")
	require.NoError(t, err)

	assert.Contains(t, out, "# Guide")
	assert.Contains(t, out, "[setup](#Guide-Setup)")
	assert.Contains(t, out, "**read**")
}

func TestConverter_Convert_Tables(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(),
		`<table><thead><tr><th>Name</th><th>Value</th></tr></thead><tbody><tr><td>a</td><td>1</td></tr></tbody></table>`, "")
	require.NoError(t, err)

	assert.Regexp(t, `\|\s*Name\s*\|\s*Value\s*\|`, out)
	assert.Regexp(t, `\|\s*a\s*\|\s*1\s*\|`, out)
}

func TestConverter_Convert_DropsDataImages(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(),
		`<p>before</p><img src="data:image/png;base64,iVBORw0KGgo=" alt="inline"><img src="/download/attachments/1/chart.png" alt="chart"><p>after</p>`, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "data:")
	assert.NotContains(t, out, "inline")
	assert.Contains(t, out, "![chart](/download/attachments/1/chart.png)")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestConverter_Convert_DropsScripts(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(), `<p>text</p><script>alert(1)</script>`, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "alert")
}

func TestConverter_Convert_FencedCode(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(), `<pre><code>go test ./...</code></pre>`, "")
	require.NoError(t, err)

	assert.Contains(t, out, "```")
	assert.Contains(t, out, "go test ./...")
}

func TestConverter_Convert_RunsPipeline(t *testing.T) {
	pipeline := &recordingPipeline{}
	c := New(pipeline)

	out, err := c.Convert(context.Background(), `<h1>Root</h1>`, "Root")
	require.NoError(t, err)

	assert.Equal(t, "processed", out)
	require.Len(t, pipeline.docs, 1)
	assert.Equal(t, "Root", pipeline.docs[0].StripTitle)
	assert.Contains(t, pipeline.docs[0].Content, "# Root")
}

func TestConverter_Convert_PipelineError(t *testing.T) {
	c := New(&recordingPipeline{err: errors.New("boom")})

	_, err := c.Convert(context.Background(), `<p>x</p>`, "")
	assert.EqualError(t, err, "boom")
}

func TestConverter_Convert_Empty(t *testing.T) {
	c := New(nil)

	out, err := c.Convert(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}
