package gml

import (
	"errors"

	"github.com/katalvlaran/netgml/netlist"
)

// Shared sentinel errors. Wrap with fmt.Errorf("%w: detail", ...) at call
// sites; callers match with errors.Is.
var (
	// ErrNilWriter - WriteDesign received a nil destination.
	ErrNilWriter = errors.New("gml: nil writer")
	// ErrNilDesign - WriteDesign or WriteFile received a nil design.
	ErrNilDesign = errors.New("gml: nil design")
)

// Options tunes a single render. The zero value is the canonical default:
// every module, wire and cell included, sequential rendering, no
// compatibility toggles.
type Options struct {
	// IncludeAigModels is accepted for command-line compatibility and is
	// carried through unchanged. It does not alter the output.
	IncludeAigModels bool

	// CompatIntMode is accepted for command-line compatibility and is
	// carried through unchanged. It does not alter the output.
	CompatIntMode bool

	// Selection restricts which modules, wires and cells contribute to
	// the output. nil includes everything.
	Selection *netlist.Selection

	// Workers bounds how many modules render concurrently. Values below
	// two render sequentially. Output bytes are identical either way.
	Workers int
}

// DefaultOptions returns the canonical Options. Adjust fields on the
// returned value before passing it to WriteDesign.
func DefaultOptions() Options {
	return Options{}
}
