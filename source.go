package fontreg

import (
	"github.com/gogpu/fontreg/asset"
)

// Source describes where a font's bytes come from. It is a closed set:
//
//   - [URISource]: a remote URI. Unsupported; normalization always fails
//     with [ErrRemoteURI].
//   - [ModuleSource]: a reference into the asset module registry
//     (see asset.RegisterModule and asset.RegisterFS).
//   - [AssetSource]: a pre-resolved asset handle, passed through unchanged.
//
// Normalization is synchronous and does no I/O, so the registry can run it
// inside its critical section without holding the lock across a download.
type Source interface {
	// resolve normalizes the source to an asset handle.
	resolve(name string) (*asset.Asset, error)
}

// URISource is a remote font URI. Loading from remote URIs is not supported
// in this version; any Load with a URISource fails with ErrRemoteURI before
// creating any registry state.
type URISource string

func (URISource) resolve(string) (*asset.Asset, error) {
	return nil, ErrRemoteURI
}

// ModuleSource references a font bundled with the application and registered
// in the asset module registry.
type ModuleSource string

func (m ModuleSource) resolve(string) (*asset.Asset, error) {
	return asset.FromModule(string(m))
}

// AssetSource wraps an already-resolved asset handle.
type AssetSource struct {
	Asset *asset.Asset
}

func (s AssetSource) resolve(string) (*asset.Asset, error) {
	if s.Asset == nil {
		return nil, ErrNoSource
	}
	return s.Asset, nil
}
