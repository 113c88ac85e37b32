package html

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

// Converter turns page export HTML into markdown.
type Converter struct {
	converter *md.Converter
	pipeline  driven.PostProcessorPipeline
}

// New creates a converter. The pipeline runs over every converted page;
// it may be nil.
func New(pipeline driven.PostProcessorPipeline) *Converter {
	converter := md.NewConverter("", true, &md.Options{
		LinkStyle:      "inlined",
		CodeBlockStyle: "fenced",
		HeadingStyle:   "atx",
	})
	converter.Use(plugin.GitHubFlavored())
	converter.Remove("script", "style")
	converter.AddRules(dropDataImages)

	return &Converter{
		converter: converter,
		pipeline:  pipeline,
	}
}

// dropDataImages omits images whose source is embedded base64 data.
// Other images fall through to the default rule.
var dropDataImages = md.Rule{
	Filter: []string{"img"},
	Replacement: func(_ string, selec *goquery.Selection, _ *md.Options) *string {
		src, _ := selec.Attr("src")
		if strings.HasPrefix(strings.TrimSpace(strings.ToLower(src)), "data:") {
			return md.String("")
		}
		return nil
	},
}

// Convert converts html to markdown and runs the post-processing pipeline.
// stripTitle is passed to the pipeline as the heading to remove.
func (c *Converter) Convert(ctx context.Context, html, stripTitle string) (string, error) {
	markdown, err := c.converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}

	if c.pipeline == nil {
		return markdown, nil
	}

	doc := &domain.MarkdownDocument{
		StripTitle: stripTitle,
		Content:    markdown,
	}
	if err := c.pipeline.Process(ctx, doc); err != nil {
		return "", err
	}
	return doc.Content, nil
}
