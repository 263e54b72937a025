package uikit

import "sync"

// Assets are the runtime pieces a kit contributes: the wallet provider
// component and its stylesheet. Either load can fail independently; a
// partial result is still usable.
type Assets struct {
	Provider      any
	Stylesheet    string
	ProviderErr   error
	StylesheetErr error
}

// AssetLoader loads a kit's assets at most once per process. Concurrent
// callers share the in-flight load; the result, including a failure, is
// memoized.
type AssetLoader struct {
	loadProvider   func() (any, error)
	loadStylesheet func() (string, error)

	providerOnce   sync.Once
	stylesheetOnce sync.Once

	provider      any
	providerErr   error
	stylesheet    string
	stylesheetErr error
}

// NewAssetLoader creates a loader over the two asset sources. Either source
// may be nil, which yields a zero asset without error.
func NewAssetLoader(provider func() (any, error), stylesheet func() (string, error)) *AssetLoader {
	return &AssetLoader{loadProvider: provider, loadStylesheet: stylesheet}
}

// Load returns the kit assets, triggering each underlying load on first use.
func (l *AssetLoader) Load() Assets {
	l.providerOnce.Do(func() {
		if l.loadProvider != nil {
			l.provider, l.providerErr = l.loadProvider()
		}
	})
	l.stylesheetOnce.Do(func() {
		if l.loadStylesheet != nil {
			l.stylesheet, l.stylesheetErr = l.loadStylesheet()
		}
	})
	return Assets{
		Provider:      l.provider,
		Stylesheet:    l.stylesheet,
		ProviderErr:   l.providerErr,
		StylesheetErr: l.stylesheetErr,
	}
}
