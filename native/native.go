// Package native is the font registration layer of fontreg.
//
// The registry hands this package a session-namespaced family name and a
// local font file path; registration makes the font findable by renderers
// under the prefixed family name (see FamilyName). The Registrar interface
// abstracts the actual platform layer; the in-process Book implementation
// parses and indexes fonts itself using a pluggable parser backend.
package native

import "context"

// FamilyPrefix is the prefix applied to every registered family name.
// Renderers look fonts up under "FamilyPrefix-<session>-<name>".
const FamilyPrefix = "ExpoFont"

// FamilyName returns the full family name a renderer must use for a
// session-namespaced font name.
func FamilyName(namespaced string) string {
	return FamilyPrefix + "-" + namespaced
}

// Registrar registers font files for rendering. Implementations may fail;
// the registry propagates registration errors to all callers of the
// corresponding load.
type Registrar interface {
	// Register makes the font at path available under the given
	// session-namespaced family name. Registering the same family twice is
	// allowed and replaces the previous entry.
	Register(ctx context.Context, family, path string) error
}
