// Package html converts Confluence export HTML into markdown.
//
// Conversion uses html-to-markdown with GitHub-flavoured tables, inlined
// links, fenced code blocks, and a rule that drops embedded data: images.
// The result is then handed to the configured post-processing pipeline,
// which normalises anchors and removes a duplicated page title.
package html
