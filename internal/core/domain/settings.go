package domain

import "time"

// StorageBackend selects where account records are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists accounts in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps accounts in memory for the life of the process.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// AppSettings holds the user-configurable application settings.
type AppSettings struct {
	Provider ProviderSettings
	Sync     SyncSettings
	Cache    CacheSettings
	Storage  StorageSettings
}

// ProviderSettings configures the aggregation provider client.
type ProviderSettings struct {
	// BaseURL is the provider API root, e.g. "https://api.example-bank-link.com/v1".
	BaseURL string

	// Token is the bearer token used to authenticate with the provider.
	Token string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// IsConfigured reports whether a provider endpoint has been set.
func (p ProviderSettings) IsConfigured() bool {
	return p.BaseURL != ""
}

// SyncSettings configures batch synchronisation.
type SyncSettings struct {
	// CallTimeout bounds each remote sync call. Zero means no bound.
	CallTimeout time.Duration
}

// CacheSettings configures the transaction cache.
type CacheSettings struct {
	// TTL is how long fetched transactions stay fresh. Zero disables expiry.
	TTL time.Duration

	// MaxAccounts bounds how many accounts have cached transactions.
	MaxAccounts int
}

// StorageSettings configures account persistence.
type StorageSettings struct {
	Backend StorageBackend
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Provider: ProviderSettings{
			Timeout: 30 * time.Second,
		},
		Cache: CacheSettings{
			TTL:         15 * time.Minute,
			MaxAccounts: 1024,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}
