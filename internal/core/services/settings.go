package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyBaseURL           = "confluence.base_url"
	KeyAuthType          = "confluence.auth.type"
	KeyAuthToken         = "confluence.auth.token"
	KeyAuthEmail         = "confluence.auth.email"
	KeyAuthUsername      = "confluence.auth.username"
	KeyAuthPassword      = "confluence.auth.password"
	KeyRequestsPerSecond = "confluence.requests_per_second"
	KeyTreeParallel      = "page_tree.parallel"
	KeyTreeMaxDepth      = "page_tree.max_depth"
	KeyTreeConcurrency   = "page_tree.max_concurrency"
	KeyPostProcessors    = "convert.postprocessors"
)

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
	kindFloat
	kindList
)

var settingKeys = map[string]keyKind{
	KeyBaseURL:           kindString,
	KeyAuthType:          kindString,
	KeyAuthToken:         kindString,
	KeyAuthEmail:         kindString,
	KeyAuthUsername:      kindString,
	KeyAuthPassword:      kindString,
	KeyRequestsPerSecond: kindFloat,
	KeyTreeParallel:      kindBool,
	KeyTreeMaxDepth:      kindInt,
	KeyTreeConcurrency:   kindInt,
	KeyPostProcessors:    kindList,
}

// SettingKeys returns every configuration key Set accepts, in display order.
func SettingKeys() []string {
	return []string{
		KeyBaseURL,
		KeyAuthType,
		KeyAuthToken,
		KeyAuthEmail,
		KeyAuthUsername,
		KeyAuthPassword,
		KeyRequestsPerSecond,
		KeyTreeParallel,
		KeyTreeMaxDepth,
		KeyTreeConcurrency,
		KeyPostProcessors,
	}
}

// IsSecretKey reports whether a key holds a credential.
func IsSecretKey(key string) bool {
	return key == KeyAuthToken || key == KeyAuthPassword
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing keys take their defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	authType := domain.AuthType(strings.ToLower(s.configStore.GetString(KeyAuthType)))
	if authType == "" {
		authType = defaults.Auth.Type
	}

	settings := &domain.Settings{
		BaseURL: domain.NormalizeBaseURL(s.configStore.GetString(KeyBaseURL)),
		Auth: domain.AuthSettings{
			Type:     authType,
			Token:    s.configStore.GetString(KeyAuthToken),
			Email:    s.configStore.GetString(KeyAuthEmail),
			Username: s.configStore.GetString(KeyAuthUsername),
			Password: s.configStore.GetString(KeyAuthPassword),
		},
		Tree: domain.TreePolicy{
			Parallel:       s.getBool(KeyTreeParallel, defaults.Tree.Parallel),
			MaxDepth:       s.getInt(KeyTreeMaxDepth, defaults.Tree.MaxDepth),
			MaxConcurrency: s.getInt(KeyTreeConcurrency, defaults.Tree.MaxConcurrency),
		},
		RequestsPerSecond: s.getFloat(KeyRequestsPerSecond, defaults.RequestsPerSecond),
		Pipeline:          s.getList(KeyPostProcessors, defaults.Pipeline),
	}

	return settings, nil
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return &domain.InputError{Input: key, Reason: "unknown setting; valid keys: " + strings.Join(SettingKeys(), ", ")}
	}

	var stored any
	switch kind {
	case kindString:
		stored = strings.TrimSpace(value)
		if key == KeyBaseURL {
			stored = domain.NormalizeBaseURL(value)
		}
		if key == KeyAuthType {
			authType := domain.AuthType(strings.ToLower(strings.TrimSpace(value)))
			if !authType.IsValid() {
				return fmt.Errorf("%w: %q", domain.ErrUnsupportedAuthType, value)
			}
			stored = authType.String()
		}
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return &domain.InputError{Input: value, Reason: key + " must be true or false"}
		}
		stored = b
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return &domain.InputError{Input: value, Reason: key + " must be a non-negative integer"}
		}
		stored = n
	case kindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || f < 0 {
			return &domain.InputError{Input: value, Reason: key + " must be a non-negative number"}
		}
		stored = f
	case kindList:
		stored = splitList(value)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Validate checks the current settings are usable for a preparation.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, def float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getList(key string, def []string) []string {
	val, ok := s.configStore.Get(key)
	if !ok {
		return def
	}
	if str, isString := val.(string); isString {
		return splitList(str)
	}
	return s.configStore.GetStringSlice(key)
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
