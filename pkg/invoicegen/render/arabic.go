package render

import "github.com/01walid/goarabic"

// hasArabic reports whether s contains characters from the Arabic block.
func hasArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// shapeText prepares mixed-direction text for a left-to-right PDF engine:
// Arabic runs are converted to their contextual glyph forms and reversed
// for right-to-left display. Latin-only text passes through untouched.
func shapeText(s string) string {
	if !hasArabic(s) {
		return s
	}
	return goarabic.Reverse(goarabic.ToGlyph(s))
}
