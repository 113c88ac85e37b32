// Package auth builds the Authorization header for remote content requests
// from configured credentials.
//
// Three schemes are supported:
//
//   - bearer: a personal access token sent as "Bearer <token>"
//   - basic: email and API token sent as HTTP basic credentials (cloud)
//   - userpass: username and password sent as HTTP basic credentials
//
// Providers are static: tokens are not refreshed.
package auth
