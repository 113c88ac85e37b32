// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Preparer walks a page tree level by level and writes it into a
// workspace; DocsService adds the cache token bookkeeping around it.
package services
