package asset

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Provider supplies the raw bytes of one font file.
type Provider interface {
	// Fetch returns the font file contents. Implementations should respect
	// cancellation of ctx where fetching involves real I/O.
	Fetch(ctx context.Context) ([]byte, error)
}

// BytesProvider serves font data held in memory.
type BytesProvider []byte

// Fetch implements Provider.
func (b BytesProvider) Fetch(context.Context) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("asset: empty font data")
	}
	return b, nil
}

// FSProvider serves a font file from an fs.FS, typically an embed.FS
// compiled into the application.
type FSProvider struct {
	FS   fs.FS
	Path string
}

// Fetch implements Provider.
func (p FSProvider) Fetch(context.Context) ([]byte, error) {
	data, err := fs.ReadFile(p.FS, p.Path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// moduleRegistry maps stable string references to providers. Mounted
// filesystems are consulted when no exact module matches.
var (
	modMu   sync.RWMutex
	modules = make(map[string]Provider)
	mounts  = make(map[string]fs.FS)
)

// RegisterModule registers a provider under a stable reference so fonts can
// be loaded by name. Registering the same reference twice replaces the
// provider; the last registration wins.
func RegisterModule(ref string, p Provider) {
	modMu.Lock()
	modules[ref] = p
	modMu.Unlock()
}

// RegisterFS mounts a filesystem under a reference prefix. A module
// reference "prefix/sub/file.ttf" then resolves to the file "sub/file.ttf"
// inside fsys. This is the usual way to expose an embed.FS of bundled fonts.
func RegisterFS(prefix string, fsys fs.FS) {
	modMu.Lock()
	mounts[prefix] = fsys
	modMu.Unlock()
}

// FromModule resolves a module reference to an Asset. The returned asset is
// not yet downloaded; call Download to materialize it. FromModule fails with
// ErrUnknownModule when nothing is registered for ref.
//
// FromModule is synchronous and does no I/O, so callers may invoke it inside
// critical sections.
func FromModule(ref string) (*Asset, error) {
	modMu.RLock()
	defer modMu.RUnlock()

	if p, ok := modules[ref]; ok {
		return New(ref, p), nil
	}

	for prefix, fsys := range mounts {
		rest, ok := strings.CutPrefix(ref, prefix+"/")
		if !ok {
			continue
		}
		return New(ref, FSProvider{FS: fsys, Path: path.Clean(rest)}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownModule, ref)
}
