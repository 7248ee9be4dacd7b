// Package netlist provides the in-memory circuit model consumed by the
// graph-export pipeline: designs, modules, wires, cells, signal bits,
// alias resolution, and element selection.
//
// What
//
//   - Design: an ordered collection of named Modules.
//   - Module: ordered wires, ports, cells, internal connections, and the
//     names of any unconverted process blocks.
//   - Wire: a named, possibly multi-bit signal; ports are wires carrying
//     a boundary direction (PortInput / PortOutput, both for inout).
//   - Cell: a typed instance with named pin connections (CellConn), each
//     pin carrying its own direction flags.
//   - SigBit / SigSpec: the atomic connectivity unit (one bit of a wire
//     or one of the four constant states S0, S1, Sz, Sx) and vectors
//     thereof.
//   - SigMap: resolves electrically-equivalent bits to one canonical
//     representative per equivalence class.
//   - Selection: nil-able predicates filtering modules, wires, and cells.
//
// Why
//
//   - A netlist's wires are not independent: internal connections alias
//     bits of one wire to bits of another or tie them to constants. Any
//     structural analysis must first collapse those aliases, which is
//     exactly what SigMap does.
//   - Declaration order of ports, wires, cells, and modules is preserved
//     verbatim by every accessor, because downstream output depends on it.
//
// Concurrency
//
//	A Design is meant to be fully constructed first and treated as
//	read-only afterwards. Read-only access is safe from any number of
//	goroutines; SigMap instances memoize internally and must not be
//	shared across goroutines.
//
// Errors
//
//   - ErrNilWire, ErrNilCell, ErrNilModule  - nil element passed to an Add method.
//   - ErrEmptyName                          - element name is the empty string.
//   - ErrBadWidth                           - wire width below 1.
//   - ErrDuplicateWire, ErrDuplicateCell, ErrDuplicateModule, ErrDuplicatePort
//   - ErrUnknownWire                        - port registration for an absent wire.
//   - ErrNotAPort                           - port registration for a direction-less wire.
//   - ErrWidthMismatch                      - Connect sides differ in bit count.
package netlist
