package config

import (
	"os"
	"strings"
)

// ExplorerAPIKey resolves an explorer API key by precedence: environment
// variable (UIBUILDER_<PROVIDER>_API_KEY) > OS keychain > plain config.
// A missing key resolves to "", which disables the provider.
func (c *Config) ExplorerAPIKey(provider string, store SecretStore) string {
	envVar := "UIBUILDER_" + strings.ToUpper(provider) + "_API_KEY"
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if store != nil {
		if v, err := store.Retrieve(keychainService + "." + provider); err == nil && v != "" {
			return v
		}
	}
	return c.ExplorerAPIKeys[provider]
}

// SetExplorerAPIKey stores an API key in the keychain when available,
// falling back to plain config otherwise. Save is the caller's job.
func (c *Config) SetExplorerAPIKey(provider, key string, store SecretStore) error {
	if store != nil {
		if _, err := store.Store(provider, key); err == nil {
			return nil
		}
	}
	if c.ExplorerAPIKeys == nil {
		c.ExplorerAPIKeys = make(map[string]string)
	}
	c.ExplorerAPIKeys[provider] = key
	return nil
}
