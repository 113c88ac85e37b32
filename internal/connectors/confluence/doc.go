// Package confluence implements a content source for Confluence page trees.
//
// The package covers everything that depends on Confluence conventions:
// recognising documentation annotations and Confluence URLs, resolving a
// URL into a page locator, and reading pages and attachments over the
// REST API.
//
// # Annotations
//
// Two annotation forms are accepted:
//
//   - confluence-url:<url>: the URL is trusted and returned unchanged
//   - url:<url>: the URL must also pass [IsConfluenceURL]
//
// # Locators
//
// [ResolveLocator] understands three URL shapes, tried in order:
//
//   - /display/{space}/{title}
//   - /spaces/{space}/pages/{id}
//   - ?pageId={id}
//
// # REST API
//
// [Client] implements [driven.ContentSource] against the v1 content API:
//
//   - GET /rest/api/content/{id}?expand=body.export_view,children.page
//   - GET /rest/api/content?spaceKey={space}&title={title}&expand=...
//   - GET /rest/api/content/{id}/child/attachment
//   - GET {_links.download}
//
// Child and attachment lists are followed through their _links.next
// cursors. Every request carries the configured Authorization header and
// Content-Type: application/json.
//
// # Rate Limiting
//
// A token bucket throttles requests proactively (10 per second by default).
// Responses are never retried: a failed call is returned to the caller,
// which aborts the preparation.
//
// # Error Handling
//
//   - 404: [domain.NotFoundError] naming the page id or title
//   - Any other non-2xx: [APIError] carrying the status code and reason
//   - Malformed annotations and URLs: [domain.InputError]
package confluence
