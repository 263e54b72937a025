package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const (
	defaultNetwork     = "ethereum"
	defaultEnvironment = "production"
	defaultLicense     = "MIT"

	configFile    = "config.json"
	draftsFile    = "drafts.json"
	contractsFile = "contracts.json"
)

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.uibuilder.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".uibuilder")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.ExplorerAPIKeys == nil {
		cfg.ExplorerAPIKeys = make(map[string]string)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// LoadDrafts reads drafts.json.
func (c *Config) LoadDrafts() (*DraftsFile, error) {
	return loadJSON[DraftsFile](filepath.Join(c.configDir, draftsFile))
}

// SaveDrafts writes drafts.json.
func (c *Config) SaveDrafts(df *DraftsFile) error {
	return saveJSON(filepath.Join(c.configDir, draftsFile), df)
}

// UpsertDraft adds or replaces a draft by name and persists the file.
func (c *Config) UpsertDraft(d FormDraft) error {
	df, err := c.LoadDrafts()
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	idx := slices.IndexFunc(df.Drafts, func(e FormDraft) bool { return e.Name == d.Name })
	if idx == -1 {
		d.SavedAt = now
		df.Drafts = append(df.Drafts, d)
	} else {
		d.SavedAt = df.Drafts[idx].SavedAt
		d.UpdatedAt = now
		df.Drafts[idx] = d
	}
	return c.SaveDrafts(df)
}

// DeleteDraft removes a draft by name and persists the file.
func (c *Config) DeleteDraft(name string) error {
	df, err := c.LoadDrafts()
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(df.Drafts, func(e FormDraft) bool { return e.Name == name })
	if idx == -1 {
		return fmt.Errorf("draft %s not found", name)
	}
	df.Drafts = slices.Delete(df.Drafts, idx, idx+1)
	return c.SaveDrafts(df)
}

// LoadContracts reads contracts.json.
func (c *Config) LoadContracts() (*ContractsFile, error) {
	return loadJSON[ContractsFile](filepath.Join(c.configDir, contractsFile))
}

// SaveContracts writes contracts.json.
func (c *Config) SaveContracts(cf *ContractsFile) error {
	return saveJSON(filepath.Join(c.configDir, contractsFile), cf)
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		DefaultNetwork:  defaultNetwork,
		Environment:     defaultEnvironment,
		License:         defaultLicense,
		ExplorerAPIKeys: make(map[string]string),
		configDir:       dir,
	}
}

func loadJSON[T any](path string) (*T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &zero, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
