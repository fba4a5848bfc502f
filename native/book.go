package native

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

// Book is the in-process Registrar. Register parses the font file with the
// configured parser backend — rejecting files that are not fonts — and
// indexes it under the prefixed family name so renderers can look it up.
//
// Book is safe for concurrent use.
type Book struct {
	mu sync.RWMutex

	// entries maps the full prefixed family name to its registered font.
	entries map[string]*Entry

	parserName string
}

// Entry describes one registered font.
type Entry struct {
	// Family is the full family name renderers use (FamilyName output).
	Family string

	// Path is the local font file the entry was registered from.
	Path string

	// Font is the parsed font.
	Font ParsedFont
}

// BookOption configures a Book during creation.
type BookOption func(*Book)

// WithParser selects the parser backend by name ("gotext" or "ximage", or
// any name registered with RegisterParser). Unknown names fall back to the
// default backend.
func WithParser(name string) BookOption {
	return func(b *Book) {
		b.parserName = name
	}
}

// NewBook creates an empty Book using the default parser backend.
func NewBook(opts ...BookOption) *Book {
	b := &Book{
		entries:    make(map[string]*Entry),
		parserName: defaultParserName,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register implements Registrar. The font file at path is read and parsed;
// files the parser rejects fail registration. Registering an already
// registered family replaces the entry.
func (b *Book) Register(ctx context.Context, family, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G304 -- path comes from the asset layer's own cache.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("native: reading font file: %w", err)
	}

	parsed, err := getParser(b.parserName).Parse(data)
	if err != nil {
		return err
	}

	full := FamilyName(family)
	b.mu.Lock()
	b.entries[full] = &Entry{Family: full, Path: path, Font: parsed}
	b.mu.Unlock()

	logger().Debug("native: font registered",
		"family", full, "font", parsed.Name(), "upem", parsed.UnitsPerEm())
	return nil
}

// Lookup returns the entry registered under the full family name.
// The name must be the FamilyName output, exactly what ResolveFamily
// returns for a loaded font. Lookup falls back to a case-folded match,
// since renderers are often sloppy about family-name casing.
func (b *Book) Lookup(family string) (*Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if e, ok := b.entries[family]; ok {
		return e, true
	}

	folded := cases.Fold().String(family)
	for name, e := range b.entries {
		if cases.Fold().String(name) == folded {
			return e, true
		}
	}
	return nil, false
}

// Registered reports whether a font is registered under the family name.
func (b *Book) Registered(family string) bool {
	_, ok := b.Lookup(family)
	return ok
}

// Families returns all registered family names, sorted.
func (b *Book) Families() []string {
	b.mu.RLock()
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	b.mu.RUnlock()

	sort.Strings(names)
	return names
}
