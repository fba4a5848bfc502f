package native

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., go-text/typesetting vs golang.org/x/image/font/opentype).
//
// The default implementation uses go-text/typesetting.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the minimal view of a parsed font file that registration
// needs: enough to validate the file and describe it in diagnostics.
type ParsedFont interface {
	// Name returns the font family name recorded in the file.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int
}

// parserRegistry holds registered font parsers.
// The default parser is "gotext" (go-text/typesetting).
var parserRegistry = map[string]FontParser{
	"gotext": &gotextParser{},
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "gotext"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
