// Package domain defines the core entities for docprep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: A remote content page with its immediate child references
//   - Attachment: A binary file attached to a page
//   - NavNode: One entry of the generated navigation tree
//   - PreparationResult: The handed-off output directory and its cache token
//   - Settings: Remote system, credentials and page-tree policy
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
