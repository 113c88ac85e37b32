package driving

import "github.com/custodia-labs/docprep/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied.
	Get() (*domain.Settings, error)

	// Set stores a single setting by its configuration key.
	Set(key, value string) error

	// Validate checks the current settings are usable for a preparation.
	Validate() error

	// Path returns the configuration file location.
	Path() string
}
