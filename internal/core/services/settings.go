package services

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings.
const (
	KeyProviderBaseURL  = "provider.base_url"
	KeyProviderToken    = "provider.token"
	KeyProviderTimeout  = "provider.timeout"
	KeySyncCallTimeout  = "sync.call_timeout"
	KeyCacheTTL         = "cache.ttl"
	KeyCacheMaxAccounts = "cache.max_accounts"
	KeyStorageBackend   = "storage.backend"
)

var settingKeys = []string{
	KeyProviderBaseURL,
	KeyProviderToken,
	KeyProviderTimeout,
	KeySyncCallTimeout,
	KeyCacheTTL,
	KeyCacheMaxAccounts,
	KeyStorageBackend,
}

// SettingsService manages application settings.
// Durations are stored as whole seconds.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Unrecognised stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	backend := domain.StorageBackend(s.getString(KeyStorageBackend, string(defaults.Storage.Backend)))
	if !backend.IsValid() {
		backend = defaults.Storage.Backend
	}

	return &domain.AppSettings{
		Provider: domain.ProviderSettings{
			BaseURL: s.configStore.GetString(KeyProviderBaseURL),
			Token:   s.configStore.GetString(KeyProviderToken),
			Timeout: s.getSeconds(KeyProviderTimeout, defaults.Provider.Timeout),
		},
		Sync: domain.SyncSettings{
			CallTimeout: s.getSeconds(KeySyncCallTimeout, defaults.Sync.CallTimeout),
		},
		Cache: domain.CacheSettings{
			TTL:         s.getSeconds(KeyCacheTTL, defaults.Cache.TTL),
			MaxAccounts: s.getInt(KeyCacheMaxAccounts, defaults.Cache.MaxAccounts),
		},
		Storage: domain.StorageSettings{
			Backend: backend,
		},
	}, nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyProviderBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)

	case KeyProviderToken:
		return s.configStore.Set(key, value)

	case KeyProviderTimeout, KeySyncCallTimeout, KeyCacheTTL, KeyCacheMaxAccounts:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, int64(n))

	case KeyStorageBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%w: %s must be %q or %q", domain.ErrInvalidInput, key,
				domain.StorageSQLite, domain.StorageMemory)
		}
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	if n := s.configStore.GetInt(key); n >= 0 {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	secs := s.getInt(key, -1)
	if secs < 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
