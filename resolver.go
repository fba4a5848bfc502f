package fontreg

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/fontreg/native"
)

// ResolveFamily maps a desired font family name to the string that is safe
// to hand to a renderer right now. It never blocks, never fails, and never
// mutates registry state, so renderers can call it on every draw.
//
// Resolution rules, in order:
//   - "" is returned unchanged.
//   - [SystemFamily] and the environment's system fonts are returned
//     unchanged; they bypass the registry entirely.
//   - Names matching the environment's bundled-font pattern are returned
//     unchanged.
//   - Names already containing the session id were namespaced by an earlier
//     call and are returned unchanged.
//   - A name that is not loaded resolves to [SystemFamily], with a
//     diagnostic through the package logger telling the caller whether the
//     font is still loading or was never requested.
//   - A loaded name resolves to the exact family the native layer has
//     registered: "ExpoFont-<session>-<name>".
func (r *Registry) ResolveFamily(name string) string {
	if name == "" || name == SystemFamily {
		return name
	}
	if r.isSystemFont(name) {
		return name
	}
	if p := r.env.BundledPattern(); p != nil && p.MatchString(name) {
		return name
	}

	session := r.env.SessionID()
	if strings.Contains(name, session) {
		// Already namespaced by an earlier resolution.
		return name
	}

	if !r.IsLoaded(name) {
		if r.IsLoading(name) {
			Logger().Warn("fontreg: font is still loading; wait for Load to finish before rendering",
				"name", name)
		} else {
			Logger().Warn("fontreg: font has not been loaded; call Load first or check the spelling",
				"name", name)
		}
		return SystemFamily
	}

	return native.FamilyName(namespacedName(session, name))
}

// isSystemFont reports whether name is one of the environment's system
// fonts. The comparison uses Unicode case folding: platform font lists are
// inconsistent about casing ("sans-serif" vs "Sans-Serif").
func (r *Registry) isSystemFont(name string) bool {
	folded := cases.Fold().String(name)
	for _, f := range r.env.SystemFonts() {
		if cases.Fold().String(f) == folded {
			return true
		}
	}
	return false
}
