// Package netgraph turns one netlist module into a flat multigraph:
// one node per selected port and cell, one directed edge per resolved
// driver→consumer bit relation.
//
// What
//
//   - Build walks a module once and returns a Graph holding Nodes,
//     Edges, and the bit-identifier table (BitIDs).
//   - Bits are first canonicalized through netlist.SigMap, then assigned
//     a stable per-module identifier: constants map to the fixed tokens
//     "0", "1", "z", "x"; wire bits receive sequential integers starting
//     at 2 (0 and 1 are reserved against the constant tokens), lazily in
//     first-touch order.
//   - Node ids share one counter starting at 2: ports first in
//     registration order, then cells in declaration order. A port
//     advances the counter by its bit width, a cell by one, so node ids
//     are distinct and increasing but not dense.
//   - Every bit records which node ids drive it (source role) and which
//     consume it (target role), in insertion order, duplicates kept.
//   - Edges are generated per selected wire, per bit in storage order,
//     as the cross-join of the bit's sources and targets, suppressing
//     only a pair identical to the immediately previously emitted one.
//     The suppression slot resets at every wire. This is a deliberate
//     single-slot economy, not full multigraph deduplication.
//
// Role conventions
//
//	An input port drives internal logic, so its bits register as
//	sources; an output port consumes internal logic, so its bits
//	register as targets. An inout port registers as a source only;
//	the target role is a known gap kept for output compatibility.
//	Cell pins are the mirror image: input pins register as targets,
//	output pins as sources, and an inout pin registers as both.
//
// Determinism
//
//	One Build call performs one forward pass: Indexing (ports, cells)
//	then Emitting (wires), with no backtracking. All state is created
//	fresh per call, traversal follows stored declaration order, and the
//	connectivity index is only ever read by key, so repeated builds of
//	the same module yield identical graphs.
//
// Errors
//
//   - ErrNilModule  - Build received a nil module.
//   - ErrProcesses  - the module still holds process blocks; such
//     modules have no bit-level connectivity and fail fatally before
//     any node or edge is produced.
//
// Complexity (B = total signal bits, N = nodes, E = emitted edges)
//
//   - Time:   near O(B + E)
//   - Memory: O(B + N + E)
package netgraph
