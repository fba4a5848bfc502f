package native

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("native: failed to parse font: %w", err)
	}
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Font,
// which is read-only and safe for concurrent use.
type gotextParsedFont struct {
	font *font.Font
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.font.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}
