// Package fontreg provides a small cross-platform font registry for Go.
//
// # Overview
//
// fontreg resolves font assets, downloads them to local files, asks a native
// font book to register them under process-unique names, and tracks which
// fonts are loaded or loading. Concurrent requests for the same font share a
// single in-flight operation: for any font name at most one
// download+registration sequence runs at a time, and every caller observes
// the same outcome.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontreg"
//	    "github.com/gogpu/fontreg/asset"
//	)
//
//	// Register bundled font data once at startup (embed.FS works well here).
//	asset.RegisterFS("fonts", embeddedFonts)
//
//	// Create the process registry.
//	reg := fontreg.New()
//
//	// Load a font. Concurrent Load calls for the same name are deduplicated.
//	err := reg.Load(ctx, "Inter", fontreg.ModuleSource("fonts/Inter-Regular.ttf"))
//
//	// Ask for the render-safe family name. Never blocks, never fails.
//	family := reg.ResolveFamily("Inter")
//
// ResolveFamily returns the session-namespaced family the native layer has
// registered when the font is loaded, and a safe system fallback when it is
// not. Renderers can therefore call it on every draw without coordination.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Registry, Source, Environment, ResolveFamily
//   - asset: module-reference registry and download-to-disk asset handles
//   - native: the registration collaborator (Registrar interface) with an
//     in-process Book implementation backed by pluggable font parsers
//
// # Logging
//
// fontreg produces no log output by default. Call SetLogger to enable
// diagnostics, including the resolver's "font not loaded" hints.
package fontreg
