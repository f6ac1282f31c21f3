// Package invoicegen converts hospital discharge invoice spreadsheets into
// structured invoice records.
package invoicegen

import "github.com/rockai-dev/invoicegen/pkg/invoicegen/parser"

// Options configures extraction behavior.
type Options struct {
	// LookaheadWindow is how many cells to scan right of a matched metadata
	// key phrase for its value. Zero means the default window.
	LookaheadWindow int
	// MaxItemRows caps how many rows below the header are scanned before
	// giving up on finding a grand-total terminator. Zero means unbounded.
	MaxItemRows int
	// Boilerplate seeds the hospital letterhead fields so an invoice sheet
	// missing them still renders sane values.
	Boilerplate parser.Boilerplate
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		LookaheadWindow: parser.DefaultLookahead,
		MaxItemRows:     10000,
		Boilerplate:     parser.DefaultBoilerplate(),
	}
}
