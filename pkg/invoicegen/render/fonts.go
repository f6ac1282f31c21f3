// Package render produces the paginated PDF document for an invoice
// record: header band, bilingual metadata grid, the 10-column item table
// with patient/insurer super-headers, and the highlighted grand total.
package render

import "os"

// Font is the process-wide font configuration, resolved once at startup
// and treated as read-only afterwards.
type Font struct {
	// Family is the font family name registered with the PDF engine.
	Family string
	// Path is the TTF file to embed; empty when falling back to the
	// built-in core font.
	Path string
	// Unicode reports whether the font can shape non-Latin text.
	Unicode bool
}

// fontProbePaths are tried in order when no override is given. The local
// fonts directory wins so deployments can ship their own file.
var fontProbePaths = []string{
	"fonts/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
}

// ResolveFont probes for a unicode TTF, preferring the override path when
// set. When nothing is found it falls back to the built-in Helvetica;
// Arabic text will not render correctly in that case, but generation still
// succeeds.
func ResolveFont(override string) Font {
	paths := fontProbePaths
	if override != "" {
		paths = append([]string{override}, paths...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return Font{Family: "ArialUnicode", Path: p, Unicode: true}
		}
	}
	return Font{Family: "Helvetica"}
}
