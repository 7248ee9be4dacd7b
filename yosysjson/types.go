package yosysjson

import "errors"

// Shared sentinel errors. Wrap with fmt.Errorf("%w: detail", ...) at
// call sites; callers match with errors.Is.
var (
	// ErrSyntax - the input is not well-formed JSON, or a value has the
	// wrong shape for its position.
	ErrSyntax = errors.New("yosysjson: malformed netlist")
	// ErrSchema - the input violates the embedded netlist schema.
	ErrSchema = errors.New("yosysjson: schema violation")
	// ErrBadBit - a bits array entry is neither a non-negative integer
	// net index nor one of the tokens "0", "1", "x", "z".
	ErrBadBit = errors.New("yosysjson: bad bit value")
	// ErrBadDirection - a port or pin direction is not one of input,
	// output, inout.
	ErrBadDirection = errors.New("yosysjson: bad direction")
	// ErrUnknownNet - a cell connection references a net index that no
	// port or netname declared.
	ErrUnknownNet = errors.New("yosysjson: unknown net index")
)
