package uikit

import (
	"fmt"
	"sync"
)

// Status is the manager lifecycle state.
type Status string

const (
	StatusNoConfig     Status = "no-config"
	StatusInitializing Status = "initializing"
	StatusConfigured   Status = "configured"
	StatusError        Status = "error"
)

// WalletConfig is the installed wallet-library configuration: the resolved
// kit plus the loaded runtime assets.
type WalletConfig struct {
	Kit        string
	Provider   any
	Stylesheet string
	Settings   map[string]any
}

// ConfigProvider builds a kit-specific wallet configuration from the kit
// config and its loaded assets.
type ConfigProvider func(cfg *Config, assets Assets) (*WalletConfig, error)

// Observer is notified exactly once per Configure call, after the new state
// is installed. Observers must not call back into the manager.
type Observer func(status Status, active *WalletConfig)

// Manager owns the active wallet UI kit configuration. Configure calls are
// serialized with a mutex, so the installed config always reflects one whole
// Configure, never an interleaving of two.
type Manager struct {
	mu sync.Mutex

	status     Status
	active     *WalletConfig
	lastErr    error
	currentKit string

	assetSource func(kitName string) *AssetLoader
	loaders     map[string]*AssetLoader
	lastAssets  Assets

	providers map[string]ConfigProvider
	observers []Observer
}

// NewManager creates a manager. assetSource supplies the per-kit asset
// loader; it may be nil (or return nil) for kits without runtime assets.
func NewManager(assetSource func(kitName string) *AssetLoader) *Manager {
	return &Manager{
		status:      StatusNoConfig,
		assetSource: assetSource,
		loaders:     make(map[string]*AssetLoader),
		providers:   make(map[string]ConfigProvider),
	}
}

// RegisterConfigProvider installs a kit-specific config provider. Kits
// without one get the generic default config built from the loaded assets.
func (m *Manager) RegisterConfigProvider(kitName string, p ConfigProvider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[kitName] = p
}

// Subscribe registers an observer for configuration changes.
func (m *Manager) Subscribe(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// Configure installs a new kit configuration. Assets are (re)loaded only
// when the kit changed. On failure the active config falls back to nil and
// the error is recorded; it is never raised to observers, who see the error
// state instead.
func (m *Manager) Configure(cfg *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = StatusInitializing

	if cfg == nil {
		m.install(nil, "", fmt.Errorf("nil kit config"))
		return
	}

	kit := cfg.KitName
	if kit == "" {
		kit = KitCustom
	}

	if kit != m.currentKit {
		m.lastAssets = m.loadAssets(kit)
	}

	var (
		wc  *WalletConfig
		err error
	)
	if p, ok := m.providers[kit]; ok {
		wc, err = p(cfg, m.lastAssets)
	} else {
		wc = &WalletConfig{
			Kit:        kit,
			Provider:   m.lastAssets.Provider,
			Stylesheet: m.lastAssets.Stylesheet,
			Settings:   cfg.Settings,
		}
	}
	m.install(wc, kit, err)
}

// install finalizes a Configure under the held lock and notifies observers
// exactly once.
func (m *Manager) install(wc *WalletConfig, kit string, err error) {
	if err != nil {
		m.active = nil
		m.lastErr = err
		m.status = StatusError
	} else {
		m.active = wc
		m.lastErr = nil
		m.status = StatusConfigured
		m.currentKit = kit
	}
	for _, o := range m.observers {
		o(m.status, m.active)
	}
}

// loadAssets resolves the kit's asset loader, memoized per kit. Custom and
// none kits carry no native assets.
func (m *Manager) loadAssets(kit string) Assets {
	if kit == KitCustom || kit == KitNone || m.assetSource == nil {
		return Assets{}
	}
	loader, ok := m.loaders[kit]
	if !ok {
		loader = m.assetSource(kit)
		m.loaders[kit] = loader
	}
	if loader == nil {
		return Assets{}
	}
	assets := loader.Load()
	if assets.ProviderErr != nil {
		logf("uikit: provider load for %q failed: %v", kit, assets.ProviderErr)
	}
	if assets.StylesheetErr != nil {
		logf("uikit: stylesheet load for %q failed: %v", kit, assets.StylesheetErr)
	}
	return assets
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Active returns the installed wallet config, or nil when none is active.
func (m *Manager) Active() *WalletConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// LastError returns the error recorded by the most recent failed Configure.
func (m *Manager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
