package domain

import (
	"fmt"
	"strings"
)

// AuthType selects how the Authorization header is built.
type AuthType string

// Available authentication types.
const (
	// AuthTypeBearer sends a personal access token as a bearer token.
	AuthTypeBearer AuthType = "bearer"

	// AuthTypeBasic sends email and API token as basic credentials (cloud).
	AuthTypeBasic AuthType = "basic"

	// AuthTypeUserPass sends username and password as basic credentials.
	AuthTypeUserPass AuthType = "userpass"
)

// IsValid returns true if the auth type is recognised.
func (t AuthType) IsValid() bool {
	switch t {
	case AuthTypeBearer, AuthTypeBasic, AuthTypeUserPass:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t AuthType) String() string {
	return string(t)
}

// Description returns a human-readable description of the auth type.
func (t AuthType) Description() string {
	switch t {
	case AuthTypeBearer:
		return "Bearer (personal access token)"
	case AuthTypeBasic:
		return "Basic (email + API token)"
	case AuthTypeUserPass:
		return "Basic (username + password)"
	default:
		return "Unknown"
	}
}

// AllAuthTypes returns all available authentication types.
func AllAuthTypes() []AuthType {
	return []AuthType{AuthTypeBearer, AuthTypeBasic, AuthTypeUserPass}
}

// AuthSettings holds the credentials for the remote content system.
type AuthSettings struct {
	Type     AuthType
	Token    string
	Email    string
	Username string
	Password string
}

// Validate checks that the selected auth type has its credentials.
func (a AuthSettings) Validate() error {
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedAuthType, a.Type)
	}
	switch a.Type {
	case AuthTypeBearer:
		if a.Token == "" {
			return fmt.Errorf("%w: bearer auth needs a token", ErrCredentialsMissing)
		}
	case AuthTypeBasic:
		if a.Email == "" || a.Token == "" {
			return fmt.Errorf("%w: basic auth needs email and token", ErrCredentialsMissing)
		}
	case AuthTypeUserPass:
		if a.Username == "" || a.Password == "" {
			return fmt.Errorf("%w: userpass auth needs username and password", ErrCredentialsMissing)
		}
	}
	return nil
}

// TreePolicy controls how the page hierarchy is walked.
type TreePolicy struct {
	// Parallel processes all pages of a tree level concurrently.
	// When false, exactly one remote operation is outstanding at a time.
	Parallel bool

	// MaxDepth bounds descent below the root. Zero means unbounded.
	MaxDepth int

	// MaxConcurrency caps simultaneous page tasks in parallel mode.
	// Zero keeps unbounded fan-out.
	MaxConcurrency int
}

// ShouldDescend reports whether a page at depth may have its children walked.
func (p TreePolicy) ShouldDescend(depth int) bool {
	return p.MaxDepth <= 0 || depth < p.MaxDepth
}

// Settings aggregates everything a preparation needs from configuration.
type Settings struct {
	// BaseURL is the remote system root, without a trailing slash.
	BaseURL string

	Auth AuthSettings

	Tree TreePolicy

	// RequestsPerSecond throttles outgoing requests. Zero disables throttling.
	RequestsPerSecond float64

	// Pipeline lists the markdown post-processors applied after conversion.
	Pipeline []string
}

// DefaultPipeline returns the post-processors applied by default.
func DefaultPipeline() []string {
	return []string{"anchors", "heading", "tidy"}
}

// DefaultSettings returns settings with defaults applied.
// The base URL and credentials are left unconfigured.
func DefaultSettings() Settings {
	return Settings{
		Auth: AuthSettings{
			Type: AuthTypeBearer,
		},
		Tree: TreePolicy{
			Parallel: true,
		},
		RequestsPerSecond: 10,
		Pipeline:          DefaultPipeline(),
	}
}

// NormalizeBaseURL strips surrounding whitespace and trailing slashes.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// Validate checks the settings are usable for a preparation.
func (s Settings) Validate() error {
	if s.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if s.Tree.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be non-negative", ErrInvalidInput)
	}
	if s.Tree.MaxConcurrency < 0 {
		return fmt.Errorf("%w: max_concurrency must be non-negative", ErrInvalidInput)
	}
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must be non-negative", ErrInvalidInput)
	}
	return s.Auth.Validate()
}
