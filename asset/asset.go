// Package asset resolves font references to local files.
//
// An Asset is a handle to one font file on its way to local disk. Assets
// come from the process module registry (RegisterModule / RegisterFS), which
// maps stable string references to byte providers, typically backed by an
// embed.FS bundled with the application. Download materializes the bytes
// into a cache directory and records the resulting local path.
package asset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sentinel errors for the asset package.
var (
	// ErrUnknownModule is returned by FromModule for a reference that was
	// never registered.
	ErrUnknownModule = errors.New("asset: unknown module reference")

	// ErrNoProvider is returned by Download when the asset has no byte
	// provider and no local file.
	ErrNoProvider = errors.New("asset: no provider for asset")
)

// Asset is a handle to one font file. After a successful Download,
// Downloaded is true and LocalURI holds the path of the local file.
//
// Asset is safe for concurrent use; concurrent Downloads of one asset are
// serialized and all but the first are no-ops.
type Asset struct {
	// Name identifies the asset in diagnostics and cache file names.
	Name string

	// Downloaded reports whether LocalURI points at a usable local file.
	Downloaded bool

	// LocalURI is the local file path of the downloaded asset.
	LocalURI string

	provider Provider
	mu       sync.Mutex
}

// New creates an Asset backed by a byte provider.
func New(name string, p Provider) *Asset {
	return &Asset{Name: name, provider: p}
}

// FromLocalFile creates an Asset that is already local. Download is a no-op.
func FromLocalFile(path string) *Asset {
	return &Asset{
		Name:       filepath.Base(path),
		Downloaded: true,
		LocalURI:   path,
	}
}

// Download materializes the asset's bytes into the cache directory and sets
// Downloaded and LocalURI. It is idempotent: an already-downloaded asset
// returns immediately. Download checks ctx before doing any I/O but does not
// interrupt an in-progress write.
func (a *Asset) Download(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Downloaded && a.LocalURI != "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.provider == nil {
		return ErrNoProvider
	}

	data, err := a.provider.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("asset: fetching %q: %w", a.Name, err)
	}

	path, err := writeCacheFile(a.Name, data)
	if err != nil {
		return err
	}

	a.LocalURI = path
	a.Downloaded = true
	return nil
}

// writeCacheFile writes data into the cache directory under a
// content-addressed name, reusing an existing file with the same content.
func writeCacheFile(name string, data []byte) (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("asset: creating cache dir: %w", err)
	}

	sum := sha256.Sum256(data)
	file := filepath.Join(dir, sanitizeName(name)+"-"+hex.EncodeToString(sum[:8])+".font")

	// Same content hashes to the same file; if it exists, it is complete
	// (written via rename below), so reuse it.
	if _, err := os.Stat(file); err == nil {
		return file, nil
	}

	tmp, err := os.CreateTemp(dir, ".asset-*")
	if err != nil {
		return "", fmt.Errorf("asset: creating cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("asset: writing cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("asset: closing cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("asset: publishing cache file: %w", err)
	}
	return file, nil
}

// sanitizeName makes an asset name safe to embed in a file name.
func sanitizeName(name string) string {
	if name == "" {
		return "font"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}

var (
	cacheMu  sync.Mutex
	cacheOvr string
)

// SetCacheDir overrides the directory Download writes font files into.
// Pass "" to restore the default (a "fontreg" directory under
// os.UserCacheDir).
func SetCacheDir(dir string) {
	cacheMu.Lock()
	cacheOvr = dir
	cacheMu.Unlock()
}

// cacheDir returns the active cache directory.
func cacheDir() (string, error) {
	cacheMu.Lock()
	ovr := cacheOvr
	cacheMu.Unlock()
	if ovr != "" {
		return ovr, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("asset: resolving user cache dir: %w", err)
	}
	return filepath.Join(base, "fontreg"), nil
}
