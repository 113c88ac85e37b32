// Package tidy normalises whitespace in converted markdown.
package tidy

import (
	"context"
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Name is the registry name of the processor.
const Name = "tidy"

// DefaultMaxBlankLines is the default number of consecutive blank lines kept.
const DefaultMaxBlankLines = 1

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor collapses runs of blank lines and trims the document.
// Fenced code blocks are left untouched.
type Processor struct {
	maxBlankLines int
}

// Option configures the processor.
type Option func(*Processor)

// WithMaxBlankLines sets how many consecutive blank lines are kept.
func WithMaxBlankLines(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxBlankLines = n
		}
	}
}

// New creates a tidy processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{maxBlankLines: DefaultMaxBlankLines}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// MaxBlankLines returns the configured blank line limit.
func (p *Processor) MaxBlankLines() int {
	return p.maxBlankLines
}

// Process rewrites doc.Content.
func (p *Processor) Process(_ context.Context, doc *domain.MarkdownDocument) error {
	doc.Content = p.tidy(doc.Content)
	return nil
}

func (p *Processor) tidy(markdown string) string {
	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blank := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}

		if !inFence && trimmed == "" {
			blank++
			if blank > p.maxBlankLines {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}

	result := strings.TrimSpace(strings.Join(out, "\n"))
	if result == "" {
		return ""
	}
	return result + "\n"
}
