package driven

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// CredentialProvider supplies the Authorization header for remote calls.
type CredentialProvider interface {
	// AuthorizationHeader returns the full header value,
	// e.g. "Bearer abc" or "Basic dXNlcjpwYXNz".
	AuthorizationHeader(ctx context.Context) (string, error)

	// AuthType returns the authentication type in use.
	AuthType() domain.AuthType
}
