package auth

import (
	"fmt"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// NewProvider creates the CredentialProvider for the configured auth type.
func NewProvider(settings domain.AuthSettings) (driven.CredentialProvider, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("auth settings: %w", err)
	}

	switch settings.Type {
	case domain.AuthTypeBearer:
		return NewBearerProvider(settings.Token), nil
	case domain.AuthTypeBasic:
		return NewBasicProvider(settings.Email, settings.Token), nil
	case domain.AuthTypeUserPass:
		return NewUserPassProvider(settings.Username, settings.Password), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedAuthType, settings.Type)
	}
}
