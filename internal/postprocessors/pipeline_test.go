package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// mockProcessor appends its suffix to the content.
type mockProcessor struct {
	name   string
	suffix string
	err    error
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(_ context.Context, doc *domain.MarkdownDocument) error {
	if m.err != nil {
		return m.err
	}
	doc.Content += m.suffix
	return nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Len())
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockProcessor{name: "test"})

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []string{"test"}, p.Names())
}

func TestPipeline_Process_NilDocument(t *testing.T) {
	p := NewPipeline()

	assert.Error(t, p.Process(context.Background(), nil))
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	doc := &domain.MarkdownDocument{Content: "unchanged"}

	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "unchanged", doc.Content)
}

func TestPipeline_Process_RunsInOrder(t *testing.T) {
	p := NewPipeline(
		&mockProcessor{name: "first", suffix: "-1"},
		&mockProcessor{name: "second", suffix: "-2"},
	)
	doc := &domain.MarkdownDocument{Content: "doc"}

	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "doc-1-2", doc.Content)
}

func TestPipeline_Process_ProcessorError(t *testing.T) {
	expectedErr := errors.New("processor failed")

	p := NewPipeline(
		&mockProcessor{name: "failing", err: expectedErr},
		&mockProcessor{name: "never", suffix: "-x"},
	)
	doc := &domain.MarkdownDocument{Content: "doc"}

	err := p.Process(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, "doc", doc.Content)
}

func TestDefaultPipeline_EndToEnd(t *testing.T) {
	p, err := DefaultRegistry().BuildPipeline(domain.DefaultPipeline(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"anchors", "heading", "tidy"}, p.Names())

	doc := &domain.MarkdownDocument{
		StripTitle: "My Page",
		Content:    "# My Page\n\n\n\nSee [setup](#MyPage-SomeAnchor).\n\n\n",
	}
	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "See [setup](#someanchor).\n", doc.Content)
}
