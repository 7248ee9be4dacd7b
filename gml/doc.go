// Package gml renders a netlist design as a GML (Graph Modelling
// Language) multigraph, byte-stable across runs.
//
// What
//
//   - WriteDesign streams one graph container: a header with the
//     multigraph flag, then per module (in design declaration order) the
//     module's node records followed by its edge records, then the
//     closing bracket.
//   - WriteFile renders to memory first and creates the file only when
//     the whole design rendered cleanly, so a partial file never exists.
//   - Quote is the escaping helper producing double-quoted literals safe
//     for the line-oriented bracketed syntax.
//   - Options carries the selection filter, the module-level rendering
//     parallelism bound, and two reserved flags (IncludeAigModels,
//     CompatIntMode) that are accepted and carried without effect.
//
// Output stability
//
//	The emitted text is part of the package contract down to single
//	spaces and the missing final newline; downstream tooling diffs it.
//	Node and edge content comes from netgraph.Build, whose traversal
//	order is deterministic, and parallel rendering buffers each module
//	independently before concatenating in design order, so Workers
//	never changes a single byte.
//
// Failure semantics
//
//	A module holding process blocks fails the whole write: bytes
//	already flushed for prior modules remain, the failing module
//	contributes nothing, and the closing bracket is never written.
//	Writer errors surface immediately, wrapped; there is no retry.
//
// Usage
//
//	var buf bytes.Buffer
//	if err := gml.WriteDesign(&buf, design, gml.DefaultOptions()); err != nil {
//	    // handle netgraph.ErrProcesses or a writer failure
//	}
//
// Errors
//
//   - ErrNilWriter, ErrNilDesign  - nil arguments.
//   - netgraph.ErrProcesses       - passed through from the pipeline.
package gml
