package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

func TestBearerProvider(t *testing.T) {
	p := NewBearerProvider("abc123")

	header, err := p.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", header)
	assert.Equal(t, domain.AuthTypeBearer, p.AuthType())
}

func TestBearerProvider_EmptyToken(t *testing.T) {
	_, err := NewBearerProvider("").AuthorizationHeader(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialsMissing)
}

type failingSource struct{}

func (failingSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("refresh failed")
}

func TestTokenSourceProvider(t *testing.T) {
	tests := []struct {
		name    string
		source  oauth2.TokenSource
		want    string
		wantErr error
		errText string
	}{
		{
			name:   "token type from source",
			source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc", TokenType: "bearer"}),
			want:   "Bearer abc",
		},
		{
			name:   "unexpired token",
			source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc", Expiry: time.Now().Add(time.Hour)}),
			want:   "Bearer abc",
		},
		{
			name:    "expired token",
			source:  oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc", Expiry: time.Now().Add(-time.Hour)}),
			wantErr: domain.ErrCredentialsMissing,
			errText: "token expired",
		},
		{
			name:    "source error",
			source:  failingSource{},
			errText: "obtaining token: refresh failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, err := NewTokenSourceProvider(tt.source).AuthorizationHeader(context.Background())
			if tt.errText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, header)
		})
	}
}

func TestBasicProvider(t *testing.T) {
	p := NewBasicProvider("me@example.com", "token")

	header, err := p.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	// base64("me@example.com:token")
	assert.Equal(t, "Basic bWVAZXhhbXBsZS5jb206dG9rZW4=", header)
	assert.Equal(t, domain.AuthTypeBasic, p.AuthType())
}

func TestUserPassProvider(t *testing.T) {
	p := NewUserPassProvider("alice", "secret")

	header, err := p.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	// base64("alice:secret")
	assert.Equal(t, "Basic YWxpY2U6c2VjcmV0", header)
	assert.Equal(t, domain.AuthTypeUserPass, p.AuthType())
}

func TestBasicProvider_MissingSecret(t *testing.T) {
	_, err := NewUserPassProvider("alice", "").AuthorizationHeader(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialsMissing)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.AuthSettings
		want     domain.AuthType
	}{
		{"bearer", domain.AuthSettings{Type: domain.AuthTypeBearer, Token: "t"}, domain.AuthTypeBearer},
		{"basic", domain.AuthSettings{Type: domain.AuthTypeBasic, Email: "e", Token: "t"}, domain.AuthTypeBasic},
		{"userpass", domain.AuthSettings{Type: domain.AuthTypeUserPass, Username: "u", Password: "p"}, domain.AuthTypeUserPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.settings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.AuthType())

			header, err := p.AuthorizationHeader(context.Background())
			require.NoError(t, err)
			assert.NotEmpty(t, header)
		})
	}
}

func TestNewProvider_Invalid(t *testing.T) {
	_, err := NewProvider(domain.AuthSettings{Type: "oauth"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedAuthType)

	_, err = NewProvider(domain.AuthSettings{Type: domain.AuthTypeBasic, Email: "e"})
	assert.ErrorIs(t, err, domain.ErrCredentialsMissing)
}
