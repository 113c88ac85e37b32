package auth

import (
	"context"
	"encoding/base64"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Ensure BasicProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*BasicProvider)(nil)

// BasicProvider sends HTTP basic credentials. It serves both the
// email + API token and the username + password schemes.
type BasicProvider struct {
	authType domain.AuthType
	user     string
	secret   string
}

// NewBasicProvider creates a provider for email + API token credentials.
func NewBasicProvider(email, token string) *BasicProvider {
	return &BasicProvider{authType: domain.AuthTypeBasic, user: email, secret: token}
}

// NewUserPassProvider creates a provider for username + password credentials.
func NewUserPassProvider(username, password string) *BasicProvider {
	return &BasicProvider{authType: domain.AuthTypeUserPass, user: username, secret: password}
}

// AuthorizationHeader returns "Basic base64(user:secret)".
func (p *BasicProvider) AuthorizationHeader(_ context.Context) (string, error) {
	if p.user == "" || p.secret == "" {
		return "", domain.ErrCredentialsMissing
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(p.user+":"+p.secret)), nil
}

// AuthType returns the configured basic scheme.
func (p *BasicProvider) AuthType() domain.AuthType {
	return p.authType
}
