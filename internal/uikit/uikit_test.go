package uikit

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKitConfig(t *testing.T) {
	loader := func(kit string) (map[string]any, error) {
		return map[string]any{"theme": "dark", "modalSize": "compact"}, nil
	}

	t.Run("programmatic overrides native", func(t *testing.T) {
		got := ResolveKitConfig("rainbowkit", map[string]any{"theme": "light"}, loader)
		assert.Equal(t, "light", got["theme"])
		assert.Equal(t, "compact", got["modalSize"])
	})

	t.Run("custom kit skips native load", func(t *testing.T) {
		called := false
		got := ResolveKitConfig(KitCustom, map[string]any{"a": 1}, func(string) (map[string]any, error) {
			called = true
			return nil, nil
		})
		assert.False(t, called)
		assert.Equal(t, map[string]any{"a": 1}, got)
	})

	t.Run("nil loader", func(t *testing.T) {
		got := ResolveKitConfig("rainbowkit", map[string]any{"a": 1}, nil)
		assert.Equal(t, map[string]any{"a": 1}, got)
	})

	t.Run("native failure logged and ignored", func(t *testing.T) {
		var logged atomic.Bool
		old := logf
		logf = func(string, ...any) { logged.Store(true) }
		defer func() { logf = old }()

		got := ResolveKitConfig("rainbowkit", map[string]any{"a": 1}, func(string) (map[string]any, error) {
			return nil, errors.New("boom")
		})
		assert.True(t, logged.Load())
		assert.Equal(t, map[string]any{"a": 1}, got)
	})
}

func TestResolveFullConfiguration(t *testing.T) {
	appService := &Config{KitName: "connectkit", Settings: map[string]any{"base": true, "theme": "dark"}}

	t.Run("precedence programmatic over initial over app service", func(t *testing.T) {
		got := ResolveFullConfiguration(&Config{KitName: "rainbowkit"}, "connectkit", appService, nil)
		assert.Equal(t, "rainbowkit", got.KitName)

		got = ResolveFullConfiguration(nil, "connectkit", appService, nil)
		assert.Equal(t, "connectkit", got.KitName)

		got = ResolveFullConfiguration(nil, "", appService, nil)
		assert.Equal(t, "connectkit", got.KitName)

		got = ResolveFullConfiguration(nil, "", nil, nil)
		assert.Equal(t, KitCustom, got.KitName)
	})

	t.Run("settings merge under app service base", func(t *testing.T) {
		got := ResolveFullConfiguration(&Config{
			KitName:  "rainbowkit",
			Settings: map[string]any{"theme": "light"},
		}, "", appService, nil)
		assert.Equal(t, "light", got.Settings["theme"])
		assert.Equal(t, true, got.Settings["base"])
	})

	t.Run("custom code passes through untouched", func(t *testing.T) {
		code := "export const kit = myKit();"
		got := ResolveFullConfiguration(&Config{CustomCode: code}, "rainbowkit", nil, nil)
		assert.Equal(t, code, got.CustomCode)
		assert.Equal(t, "rainbowkit", got.KitName)
		// The custom code never leaks into the resolved settings.
		assert.NotContains(t, got.Settings, "customCode")
	})
}

func TestAssetLoaderMemoizes(t *testing.T) {
	var providerCalls, stylesheetCalls atomic.Int32
	l := NewAssetLoader(
		func() (any, error) {
			providerCalls.Add(1)
			return "provider", nil
		},
		func() (string, error) {
			stylesheetCalls.Add(1)
			return "body {}", nil
		},
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := l.Load()
			assert.Equal(t, "provider", a.Provider)
			assert.Equal(t, "body {}", a.Stylesheet)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), providerCalls.Load())
	assert.Equal(t, int32(1), stylesheetCalls.Load())
}

func TestAssetLoaderPartialFailure(t *testing.T) {
	l := NewAssetLoader(
		func() (any, error) { return nil, errors.New("provider down") },
		func() (string, error) { return "body {}", nil },
	)

	a := l.Load()
	assert.Error(t, a.ProviderErr)
	assert.NoError(t, a.StylesheetErr)
	assert.Equal(t, "body {}", a.Stylesheet)

	// The failure is memoized, not retried.
	assert.Error(t, l.Load().ProviderErr)
}

func TestManagerLifecycle(t *testing.T) {
	old := logf
	logf = func(string, ...any) {}
	defer func() { logf = old }()

	var loads atomic.Int32
	m := NewManager(func(kit string) *AssetLoader {
		return NewAssetLoader(func() (any, error) {
			loads.Add(1)
			return "provider:" + kit, nil
		}, nil)
	})

	assert.Equal(t, StatusNoConfig, m.Status())

	var notifications atomic.Int32
	m.Subscribe(func(status Status, active *WalletConfig) {
		notifications.Add(1)
	})

	m.Configure(&Config{KitName: "rainbowkit", Settings: map[string]any{"theme": "dark"}})
	assert.Equal(t, StatusConfigured, m.Status())
	require.NotNil(t, m.Active())
	assert.Equal(t, "rainbowkit", m.Active().Kit)
	assert.Equal(t, "provider:rainbowkit", m.Active().Provider)
	assert.Equal(t, int32(1), notifications.Load())

	// Same kit again: assets are not reloaded, observers fire once more.
	m.Configure(&Config{KitName: "rainbowkit"})
	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, int32(2), notifications.Load())

	// Kit change loads the new kit's assets.
	m.Configure(&Config{KitName: "connectkit"})
	assert.Equal(t, int32(2), loads.Load())
	assert.Equal(t, "provider:connectkit", m.Active().Provider)
}

func TestManagerConfigureFailure(t *testing.T) {
	m := NewManager(nil)
	m.RegisterConfigProvider("rainbowkit", func(cfg *Config, assets Assets) (*WalletConfig, error) {
		return nil, errors.New("wallet library rejected config")
	})

	var gotStatus Status
	var gotActive *WalletConfig
	notified := 0
	m.Subscribe(func(status Status, active *WalletConfig) {
		notified++
		gotStatus = status
		gotActive = active
	})

	m.Configure(&Config{KitName: "rainbowkit"})

	assert.Equal(t, StatusError, m.Status())
	assert.Nil(t, m.Active())
	assert.Error(t, m.LastError())
	assert.Equal(t, 1, notified)
	assert.Equal(t, StatusError, gotStatus)
	assert.Nil(t, gotActive)

	// A later successful Configure clears the error.
	m.Configure(&Config{KitName: KitCustom})
	assert.Equal(t, StatusConfigured, m.Status())
	assert.NoError(t, m.LastError())
}

func TestManagerConcurrentConfigure(t *testing.T) {
	m := NewManager(nil)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Configure(&Config{KitName: KitCustom, Settings: map[string]any{"n": fmt.Sprint(i)}})
		}()
	}
	wg.Wait()

	// Serialized Configure: the final state is one coherent config.
	assert.Equal(t, StatusConfigured, m.Status())
	require.NotNil(t, m.Active())
	assert.Equal(t, KitCustom, m.Active().Kit)
}
