// Package netlist defines the circuit model primitives: constant states,
// signal bits and vectors, wires, cells, and the sentinel errors shared
// by all container operations.
package netlist

import (
	"errors"
	"fmt"
)

// Sentinel errors for netlist construction.
var (
	// ErrNilWire indicates a nil *Wire was passed to AddWire.
	ErrNilWire = errors.New("netlist: wire is nil")

	// ErrNilCell indicates a nil *Cell was passed to AddCell.
	ErrNilCell = errors.New("netlist: cell is nil")

	// ErrNilModule indicates a nil *Module was passed to AddModule.
	ErrNilModule = errors.New("netlist: module is nil")

	// ErrEmptyName indicates an element with an empty name.
	ErrEmptyName = errors.New("netlist: name is empty")

	// ErrBadWidth indicates a wire width below 1.
	ErrBadWidth = errors.New("netlist: wire width must be at least 1")

	// ErrDuplicateWire indicates a wire name already present in the module.
	ErrDuplicateWire = errors.New("netlist: duplicate wire name")

	// ErrDuplicateCell indicates a cell name already present in the module.
	ErrDuplicateCell = errors.New("netlist: duplicate cell name")

	// ErrDuplicateModule indicates a module name already present in the design.
	ErrDuplicateModule = errors.New("netlist: duplicate module name")

	// ErrDuplicatePort indicates a port name registered twice.
	ErrDuplicatePort = errors.New("netlist: port already registered")

	// ErrUnknownWire indicates a port registration for a wire the module does not hold.
	ErrUnknownWire = errors.New("netlist: wire not found")

	// ErrNotAPort indicates a port registration for a wire without direction flags.
	ErrNotAPort = errors.New("netlist: wire has no port direction")

	// ErrWidthMismatch indicates Connect sides of differing bit counts.
	ErrWidthMismatch = errors.New("netlist: connection sides differ in width")
)

// State is one of the four constant signal values a bit can be tied to.
type State uint8

const (
	// S0 is constant logic low.
	S0 State = iota
	// S1 is constant logic high.
	S1
	// Sz is the high-impedance state.
	Sz
	// Sx is the undefined state. Any State outside the enum renders as Sx.
	Sx
)

// String returns the single-character token of the state: "0", "1", "z", "x".
func (s State) String() string {
	switch s {
	case S0:
		return "0"
	case S1:
		return "1"
	case Sz:
		return "z"
	default:
		return "x"
	}
}

// ParseState maps a constant token back to its State.
// The second result is false for anything but "0", "1", "z", "x".
func ParseState(tok string) (State, bool) {
	switch tok {
	case "0":
		return S0, true
	case "1":
		return S1, true
	case "z":
		return Sz, true
	case "x":
		return Sx, true
	default:
		return Sx, false
	}
}

// SigBit is the atomic unit of connectivity: either one bit of a wire
// (Wire non-nil, Offset the bit position in storage order) or a constant
// (Wire nil, Const set). SigBit is comparable and usable as a map key;
// wire identity is pointer identity.
type SigBit struct {
	// Wire is the owning wire, nil for constant bits.
	Wire *Wire

	// Offset is the bit position within Wire, counted in storage order.
	Offset int

	// Const is the constant value; meaningful only when Wire is nil.
	Const State
}

// WireBit returns the bit of w at the given storage offset.
func WireBit(w *Wire, offset int) SigBit {
	return SigBit{Wire: w, Offset: offset}
}

// ConstBit returns the singleton bit for a constant state.
func ConstBit(s State) SigBit {
	return SigBit{Const: s}
}

// IsConst reports whether the bit is one of the four constants.
func (b SigBit) IsConst() bool {
	return b.Wire == nil
}

// String renders the bit for diagnostics: "name[offset]" or the constant token.
func (b SigBit) String() string {
	if b.Wire == nil {
		return b.Const.String()
	}

	return fmt.Sprintf("%s[%d]", b.Wire.Name, b.Offset)
}

// SigSpec is an ordered vector of signal bits.
type SigSpec []SigBit

// ConstSpec builds a SigSpec from constant states, in argument order.
func ConstSpec(states ...State) SigSpec {
	spec := make(SigSpec, len(states))
	for i, s := range states {
		spec[i] = ConstBit(s)
	}

	return spec
}

// Wire is a named, possibly multi-bit signal. A wire carrying PortInput
// and/or PortOutput is a module port; both flags mean inout. Offset,
// Upto, and Signed retain the source-level indexing metadata; bit
// storage order is unaffected by them.
type Wire struct {
	// Name uniquely identifies the wire within its module.
	Name string

	// Width is the number of bits, at least 1.
	Width int

	// Offset is the source index of storage bit 0.
	Offset int

	// Upto marks source indexing as declared msb-first.
	Upto bool

	// Signed marks the wire as carrying a signed value.
	Signed bool

	// PortInput marks the wire as a module input port.
	PortInput bool

	// PortOutput marks the wire as a module output port.
	PortOutput bool

	// Hidden marks an auto-generated (non-user-visible) name.
	Hidden bool
}

// IsPort reports whether the wire carries any boundary direction.
func (w *Wire) IsPort() bool {
	return w.PortInput || w.PortOutput
}

// Direction returns the boundary direction of a port wire: "inout" when
// both flags are set, "input" or "output" otherwise. The input flag is
// checked first and a flag-less wire falls through to "output"; only
// call this for ports.
func (w *Wire) Direction() string {
	if w.PortInput {
		if w.PortOutput {
			return "inout"
		}

		return "input"
	}

	return "output"
}

// Bits returns all bits of the wire in storage order.
// Complexity: O(Width).
func (w *Wire) Bits() SigSpec {
	spec := make(SigSpec, w.Width)
	for i := 0; i < w.Width; i++ {
		spec[i] = WireBit(w, i)
	}

	return spec
}

// CellConn binds one named cell pin to a signal vector. Input and Output
// mirror the pin's declared direction; an inout pin sets both.
type CellConn struct {
	// Pin is the pin (port) name on the cell type.
	Pin string

	// Signal is the connected bit vector.
	Signal SigSpec

	// Input marks the pin as consuming its signal.
	Input bool

	// Output marks the pin as driving its signal.
	Output bool
}

// Cell is a typed instance with named pin connections in declaration order.
type Cell struct {
	// Name uniquely identifies the cell within its module.
	Name string

	// Type is the cell type name (primitive or sub-design).
	Type string

	// Hidden marks an auto-generated name.
	Hidden bool

	// Parameters holds raw parameter values keyed by parameter name.
	// The export pipeline carries them without interpretation.
	Parameters map[string]string

	// Conns lists pin bindings in declaration order.
	Conns []CellConn
}

// Connection is one internal alias pair: every bit of From is
// electrically the bit of To at the same position.
type Connection struct {
	From SigSpec
	To   SigSpec
}
