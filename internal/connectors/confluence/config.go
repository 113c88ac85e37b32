package confluence

import (
	"net/http"
	"time"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// Config holds the settings a Client needs.
type Config struct {
	// BaseURL is the Confluence root, e.g. https://acme.atlassian.net/wiki.
	// A trailing slash is stripped.
	BaseURL string

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64

	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a client configuration from settings.
func ConfigFromSettings(s *domain.Settings) Config {
	return Config{
		BaseURL:           domain.NormalizeBaseURL(s.BaseURL),
		RequestsPerSecond: s.RequestsPerSecond,
	}
}
