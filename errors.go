package fontreg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fontreg package.
var (
	// ErrNoSource is returned when Load is called for a font that is neither
	// loaded nor loading and no source was provided.
	ErrNoSource = errors.New("fontreg: no font source provided")

	// ErrRemoteURI is returned when a font source is a remote URI.
	// Remote loading is not supported: bundle the font file with the
	// application and register it through the asset module registry instead.
	ErrRemoteURI = errors.New("fontreg: loading fonts from remote URIs is not supported; " +
		"bundle the font with the application and register it with asset.RegisterModule or asset.RegisterFS")

	// ErrNotDownloaded is returned when an asset still reports itself as not
	// downloaded after its download completed without error.
	ErrNotDownloaded = errors.New("fontreg: asset was not downloaded")
)

// LoadError wraps a failure to load a specific font.
// Use errors.Is/errors.As to inspect the underlying cause.
type LoadError struct {
	// Name is the font name the caller passed to Load.
	Name string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("fontreg: loading font %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
