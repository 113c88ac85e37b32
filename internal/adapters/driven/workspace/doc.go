// Package workspace provides the filesystem workspace a preparation writes
// into.
//
// A workspace is a fresh temporary directory laid out as:
//
//	<root>/mkdocs.yml
//	<root>/docs/**.md
//	<root>/docs/img/<pageID>/<file>
//
// The manifest is encoded with gopkg.in/yaml.v3 so that navigation order is
// preserved exactly as assembled.
package workspace
