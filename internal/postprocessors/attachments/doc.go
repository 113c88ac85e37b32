// Package attachments downloads page attachments into the docs tree and
// rewrites markdown references to point at the local copies.
//
// Editable draw.io sources are never downloaded when a rendered PNG of the
// same name exists (Diagram.drawio and Diagram.drawio.png). The PNG is
// materialised instead, and references to the source are redirected to it.
//
// A failure to download or write one attachment is logged as a warning and
// leaves its references untouched; it never fails the page.
package attachments
