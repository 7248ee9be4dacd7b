// This file declares Module and Design, the ordered containers of the
// circuit model, and their construction/query methods. Both preserve
// insertion order in every accessor; nothing is ever sorted.

package netlist

import "fmt"

// Module is one unit of circuit design: an ordered set of wires (some of
// which are ports), cells, internal alias connections, and the names of
// any process blocks that were never lowered to cells and wires.
//
// A Module is not safe for concurrent mutation; once construction is
// finished it may be read from any number of goroutines.
type Module struct {
	name string

	ports []string
	wires []*Wire
	cells []*Cell
	conns []Connection

	wireIdx map[string]*Wire
	cellIdx map[string]*Cell

	processes []string
}

// NewModule creates an empty module with the given name.
// Complexity: O(1).
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		wireIdx: make(map[string]*Wire),
		cellIdx: make(map[string]*Cell),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// AddWire appends w to the module's wire list.
// Returns ErrNilWire, ErrEmptyName, ErrBadWidth, or ErrDuplicateWire.
// Complexity: O(1).
func (m *Module) AddWire(w *Wire) error {
	if w == nil {
		return ErrNilWire
	}
	if w.Name == "" {
		return ErrEmptyName
	}
	if w.Width < 1 {
		return fmt.Errorf("%w: %q has width %d", ErrBadWidth, w.Name, w.Width)
	}
	if _, exists := m.wireIdx[w.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateWire, w.Name)
	}
	m.wireIdx[w.Name] = w
	m.wires = append(m.wires, w)

	return nil
}

// Wire returns the wire with the given name, or nil when absent.
// Complexity: O(1).
func (m *Module) Wire(name string) *Wire {
	return m.wireIdx[name]
}

// Wires returns all wires in declaration order. The slice is a copy;
// the wires themselves are shared.
// Complexity: O(W).
func (m *Module) Wires() []*Wire {
	out := make([]*Wire, len(m.wires))
	copy(out, m.wires)

	return out
}

// AddPort registers an existing wire as the next module port. The wire
// must already carry a direction flag.
// Returns ErrUnknownWire, ErrNotAPort, or ErrDuplicatePort.
// Complexity: O(P) for the duplicate scan.
func (m *Module) AddPort(name string) error {
	w, ok := m.wireIdx[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWire, name)
	}
	if !w.IsPort() {
		return fmt.Errorf("%w: %q", ErrNotAPort, name)
	}
	for _, p := range m.ports {
		if p == name {
			return fmt.Errorf("%w: %q", ErrDuplicatePort, name)
		}
	}
	m.ports = append(m.ports, name)

	return nil
}

// Ports returns the port names in registration order.
// Complexity: O(P).
func (m *Module) Ports() []string {
	out := make([]string, len(m.ports))
	copy(out, m.ports)

	return out
}

// AddCell appends c to the module's cell list.
// Returns ErrNilCell, ErrEmptyName, or ErrDuplicateCell.
// Complexity: O(1).
func (m *Module) AddCell(c *Cell) error {
	if c == nil {
		return ErrNilCell
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if _, exists := m.cellIdx[c.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCell, c.Name)
	}
	m.cellIdx[c.Name] = c
	m.cells = append(m.cells, c)

	return nil
}

// Cell returns the cell with the given name, or nil when absent.
// Complexity: O(1).
func (m *Module) Cell(name string) *Cell {
	return m.cellIdx[name]
}

// Cells returns all cells in declaration order. The slice is a copy;
// the cells themselves are shared.
// Complexity: O(C).
func (m *Module) Cells() []*Cell {
	out := make([]*Cell, len(m.cells))
	copy(out, m.cells)

	return out
}

// Connect records that every bit of from is electrically the bit of to
// at the same position. A zero-width pair is a no-op.
// Returns ErrWidthMismatch when the sides differ in bit count.
// Complexity: O(1) beyond the slice headers.
func (m *Module) Connect(from, to SigSpec) error {
	if len(from) != len(to) {
		return fmt.Errorf("%w: %d vs %d bits", ErrWidthMismatch, len(from), len(to))
	}
	if len(from) == 0 {
		return nil
	}
	m.conns = append(m.conns, Connection{From: from, To: to})

	return nil
}

// Connections returns the internal alias pairs in registration order.
// Complexity: O(K).
func (m *Module) Connections() []Connection {
	out := make([]Connection, len(m.conns))
	copy(out, m.conns)

	return out
}

// AddProcess records the name of an unconverted process block. Modules
// with processes have no bit-level connectivity and are rejected by the
// export pipeline.
func (m *Module) AddProcess(name string) {
	m.processes = append(m.processes, name)
}

// HasProcesses reports whether any process block was recorded.
func (m *Module) HasProcesses() bool {
	return len(m.processes) > 0
}

// Processes returns the recorded process names in registration order.
func (m *Module) Processes() []string {
	out := make([]string, len(m.processes))
	copy(out, m.processes)

	return out
}

// Design is an ordered collection of named modules.
type Design struct {
	modules []*Module
	modIdx  map[string]*Module
}

// NewDesign creates an empty design.
// Complexity: O(1).
func NewDesign() *Design {
	return &Design{modIdx: make(map[string]*Module)}
}

// AddModule appends m to the design.
// Returns ErrNilModule, ErrEmptyName, or ErrDuplicateModule.
// Complexity: O(1).
func (d *Design) AddModule(m *Module) error {
	if m == nil {
		return ErrNilModule
	}
	if m.name == "" {
		return ErrEmptyName
	}
	if _, exists := d.modIdx[m.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, m.name)
	}
	d.modIdx[m.name] = m
	d.modules = append(d.modules, m)

	return nil
}

// Module returns the module with the given name, or nil when absent.
// Complexity: O(1).
func (d *Design) Module(name string) *Module {
	return d.modIdx[name]
}

// Modules returns all modules in declaration order. The slice is a copy;
// the modules themselves are shared.
// Complexity: O(M).
func (d *Design) Modules() []*Module {
	out := make([]*Module, len(d.modules))
	copy(out, d.modules)

	return out
}
