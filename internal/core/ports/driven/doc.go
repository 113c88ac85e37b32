// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a preparation to run:
//
//   - ContentSource: Fetches pages and attachments from the remote system
//   - CredentialProvider: Supplies the Authorization header value
//   - Converter: Turns a page's export HTML into markdown
//   - AttachmentResolver: Downloads attachments and rewrites references
//   - WorkspaceFactory: Creates the scratch output directory
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PreparationStore: Remembers cache tokens between runs. Without it,
//     every run prepares from scratch.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
