package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Ensure BearerProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*BearerProvider)(nil)

// BearerProvider sends a token as a bearer credential.
// Personal access tokens carry no expiry, so the source never refreshes.
type BearerProvider struct {
	source oauth2.TokenSource
}

// NewBearerProvider creates a provider for a personal access token.
func NewBearerProvider(token string) *BearerProvider {
	return NewTokenSourceProvider(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// NewTokenSourceProvider creates a provider backed by any token source.
func NewTokenSourceProvider(source oauth2.TokenSource) *BearerProvider {
	return &BearerProvider{source: source}
}

// AuthorizationHeader fetches the current token and renders it as
// "<type> <token>".
func (p *BearerProvider) AuthorizationHeader(_ context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("obtaining token: %w", err)
	}
	if tok == nil || tok.AccessToken == "" {
		return "", domain.ErrCredentialsMissing
	}
	if !tok.Valid() {
		return "", fmt.Errorf("%w: token expired", domain.ErrCredentialsMissing)
	}

	req := &http.Request{Header: make(http.Header)}
	tok.SetAuthHeader(req)
	return req.Header.Get("Authorization"), nil
}

// AuthType returns AuthTypeBearer.
func (p *BearerProvider) AuthType() domain.AuthType {
	return domain.AuthTypeBearer
}
