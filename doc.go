// Package netgml turns synthesis netlists into flat GML multigraphs:
// bit-level connectivity in, diffable graph text out.
//
// 🚀 What is netgml?
//
//	A small pipeline of four subpackages that together implement a
//	netlist-to-GML exporter:
//		• netlist/   - the in-memory model: wires, cells, ports, bit aliasing
//		• netgraph/  - connectivity resolution: nodes, bit identifiers, edges
//		• gml/       - the byte-stable GML renderer
//		• yosysjson/ - the JSON interchange loader + CUE schema validation
//
// ✨ Why netgml?
//
//   - Deterministic output - the same design renders the same bytes, always
//   - Declaration order - modules, ports, wires and cells keep source order
//   - Bit-accurate - constants, aliases and multi-bit buses resolve per bit
//   - Tooling-ready - a cobra CLI (cmd/netgml) with YAML presets
//
// The flow, end to end:
//
//	JSON netlist ──▶ yosysjson.Load ──▶ netlist.Design ──▶ netgraph.Build ──▶ gml.WriteDesign
//
// Quick ASCII example (a two-input and gate):
//
//	x ──┐
//	    ├──[$and g1]── out
//	y ──┘
//
// Each port and cell becomes a GML node; every driver/consumer pair on
// an electrical net becomes one edge.
//
//	go get github.com/katalvlaran/netgml
package netgml
