package fontreg

import (
	"regexp"

	"github.com/gogpu/fontreg/native"
)

// Option configures a Registry during creation.
// Use functional options to customize Registry behavior.
//
// Example:
//
//	// Default registry: platform environment, in-process native book.
//	reg := fontreg.New()
//
//	// Custom native layer (dependency injection):
//	reg := fontreg.New(fontreg.WithRegistrar(myRegistrar))
type Option func(*config)

// config holds optional configuration for Registry creation.
type config struct {
	env         Environment
	registrar   native.Registrar
	systemFonts []string
	bundled     *regexp.Regexp
}

// WithEnvironment sets a custom environment for the Registry.
// When set, WithSystemFonts and WithBundledPattern are ignored; the injected
// environment is the single source of truth.
func WithEnvironment(env Environment) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithRegistrar sets the native registration collaborator.
// The default is an in-process [native.Book].
func WithRegistrar(r native.Registrar) Option {
	return func(c *config) {
		c.registrar = r
	}
}

// WithSystemFonts overrides the default environment's system font list.
// System fonts bypass the registry in ResolveFamily.
func WithSystemFonts(fonts []string) Option {
	return func(c *config) {
		c.systemFonts = fonts
	}
}

// WithBundledPattern sets the default environment's bundled-font name
// pattern. Names matching the pattern are assumed to be registered by the
// platform package itself and bypass the registry in ResolveFamily.
//
// Example:
//
//	// Fonts baked into the application bundle as "Bundled/<name>":
//	reg := fontreg.New(fontreg.WithBundledPattern(regexp.MustCompile(`^Bundled/`)))
func WithBundledPattern(pattern *regexp.Regexp) Option {
	return func(c *config) {
		c.bundled = pattern
	}
}
