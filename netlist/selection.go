// This file declares Selection, the element filter consulted by the
// export pipeline. A nil *Selection or a nil predicate field includes
// everything, so callers never need a non-nil default.

package netlist

// Selection filters which design elements take part in an export.
// Each field is an independent predicate; leave it nil to include all
// elements of that kind.
type Selection struct {
	// Modules decides whether a module is exported at all.
	Modules func(*Module) bool

	// Wires decides whether a wire (and the port it may carry)
	// contributes nodes and edges.
	Wires func(*Module, *Wire) bool

	// Cells decides whether a cell contributes a node and edges.
	Cells func(*Module, *Cell) bool
}

// IncludesModule reports whether m is selected. Nil-safe.
func (s *Selection) IncludesModule(m *Module) bool {
	if s == nil || s.Modules == nil {
		return true
	}

	return s.Modules(m)
}

// IncludesWire reports whether w of module m is selected. Nil-safe.
func (s *Selection) IncludesWire(m *Module, w *Wire) bool {
	if s == nil || s.Wires == nil {
		return true
	}

	return s.Wires(m, w)
}

// IncludesCell reports whether c of module m is selected. Nil-safe.
func (s *Selection) IncludesCell(m *Module, c *Cell) bool {
	if s == nil || s.Cells == nil {
		return true
	}

	return s.Cells(m, c)
}
