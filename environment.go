package fontreg

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"runtime"
	"sync"
)

// Environment supplies the process-level facts the registry and resolver
// depend on: the platform's system font names, the process session id, and
// an optional naming pattern for fonts pre-bundled into a platform package
// outside the registry's knowledge.
//
// The default environment (used when no WithEnvironment option is given)
// derives the system font list from runtime.GOOS and generates one session
// id for the lifetime of the process.
type Environment interface {
	// SystemFonts returns the names of fonts the platform provides.
	// These bypass the registry entirely.
	SystemFonts() []string

	// SessionID returns a process-lifetime constant used to namespace
	// registered font names.
	SessionID() string

	// BundledPattern returns a pattern matching font names bundled into a
	// platform package, or nil when the platform has no such convention.
	// Matching names bypass the registry.
	BundledPattern() *regexp.Regexp
}

// defaultEnvironment is the Environment used unless the caller injects one.
type defaultEnvironment struct {
	fonts   []string
	pattern *regexp.Regexp
}

func (e *defaultEnvironment) SystemFonts() []string          { return e.fonts }
func (e *defaultEnvironment) SessionID() string              { return processSessionID() }
func (e *defaultEnvironment) BundledPattern() *regexp.Regexp { return e.pattern }

var (
	sessionOnce sync.Once
	sessionID   string
)

// processSessionID returns the process-lifetime session id, generating it on
// first use. 8 random bytes are plenty: the id only has to differ between
// process instances sharing one native font registry.
func processSessionID() string {
	sessionOnce.Do(func() {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			// crypto/rand never fails on supported platforms; if it somehow
			// does, a fixed id still yields a working (single-instance) setup.
			sessionID = "00000000"
			return
		}
		sessionID = hex.EncodeToString(b[:])
	})
	return sessionID
}

// systemFontsForPlatform returns the well-known system font families for the
// given GOOS. The lists are intentionally short: they only need to cover the
// names applications actually pass to ResolveFamily.
func systemFontsForPlatform(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return []string{
			"San Francisco", "SF Pro", "Helvetica", "Helvetica Neue",
			"Times New Roman", "Courier", "Menlo",
		}
	case "windows":
		return []string{
			"Segoe UI", "Arial", "Times New Roman", "Courier New",
			"Verdana", "Tahoma", "Consolas",
		}
	case "android":
		return []string{
			"Roboto", "sans-serif", "sans-serif-medium", "serif", "monospace",
		}
	default:
		// Linux and friends: the common distro defaults.
		return []string{
			"DejaVu Sans", "DejaVu Serif", "DejaVu Sans Mono",
			"Liberation Sans", "Noto Sans",
		}
	}
}

// newDefaultEnvironment builds the default environment, applying any option
// overrides for the system font list and bundled-name pattern.
func newDefaultEnvironment(fonts []string, pattern *regexp.Regexp) *defaultEnvironment {
	if fonts == nil {
		fonts = systemFontsForPlatform(runtime.GOOS)
	}
	return &defaultEnvironment{fonts: fonts, pattern: pattern}
}
