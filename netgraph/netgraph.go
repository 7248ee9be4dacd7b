// Package netgraph builds the flat driver→consumer multigraph of one
// netlist module; see doc.go for the full pipeline contract.
package netgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/netgml/netlist"
)

// builder carries the per-module pipeline state: the alias resolver,
// the lazy bit-identifier table, both id counters, and the connectivity
// index. Everything here is created fresh for every Build call.
type builder struct {
	module *netlist.Module
	sel    *netlist.Selection
	sigmap *netlist.SigMap

	nextSigID  int
	nextNodeID int

	// sources and targets map a bit identifier to the node ids that
	// drive or consume it, in insertion order, duplicates kept.
	sources map[string][]int
	targets map[string][]int

	res *Graph
}

// Build runs the whole pipeline for one module: a single forward pass
// indexing ports then cells, followed by edge emission over wires.
// sel may be nil to include every element.
// Returns ErrNilModule for nil input and ErrProcesses (wrapped with the
// module name) when the module was never lowered to cells and wires;
// nothing is produced in either case.
// Complexity: near O(total bits + emitted edges).
func Build(m *netlist.Module, sel *netlist.Selection) (*Graph, error) {
	if m == nil {
		return nil, ErrNilModule
	}
	if m.HasProcesses() {
		return nil, fmt.Errorf("%w: %q", ErrProcesses, m.Name())
	}

	b := &builder{
		module:     m,
		sel:        sel,
		sigmap:     netlist.NewSigMap(m),
		nextSigID:  2, // 0 and 1 are reserved against the constant tokens
		nextNodeID: 2,
		sources:    make(map[string][]int),
		targets:    make(map[string][]int),
		res: &Graph{
			Module: m,
			BitIDs: make(map[netlist.SigBit]string),
		},
	}

	// Indexing, then Emitting; strictly forward, no transition back.
	b.indexPorts()
	b.indexCells()
	b.emitEdges()

	return b.res, nil
}

// identify canonicalizes bit and returns its identifier, assigning one
// on first touch: the fixed token for a constant, the next free integer
// otherwise.
func (b *builder) identify(bit netlist.SigBit) string {
	can := b.sigmap.Canonical(bit)
	if id, ok := b.res.BitIDs[can]; ok {
		return id
	}
	var id string
	if can.IsConst() {
		id = can.Const.String()
	} else {
		id = strconv.Itoa(b.nextSigID)
		b.nextSigID++
	}
	b.res.BitIDs[can] = id

	return id
}

// indexSignal identifies every bit of sig and records node against each
// identifier, as a source when asSource is set, as a target otherwise.
func (b *builder) indexSignal(sig netlist.SigSpec, node int, asSource bool) {
	for _, bit := range sig {
		id := b.identify(bit)
		if asSource {
			b.sources[id] = append(b.sources[id], node)
		} else {
			b.targets[id] = append(b.targets[id], node)
		}
	}
}

// indexPorts emits one node per selected port in registration order and
// indexes the port's bits. Input ports drive internal logic (source
// role); output ports consume it (target role). An inout port keeps the
// input flag set and lands in the source role only; the missing target
// role is a known gap preserved for output compatibility. The node
// counter advances by the port's bit width.
func (b *builder) indexPorts() {
	for _, name := range b.module.Ports() {
		w := b.module.Wire(name)
		if !b.sel.IncludesWire(b.module, w) {
			continue
		}
		b.res.Nodes = append(b.res.Nodes, Node{
			ID:    b.nextNodeID,
			Label: name,
			Type:  w.Direction(),
			Kind:  KindPort,
		})
		b.indexSignal(w.Bits(), b.nextNodeID, w.PortInput)
		b.nextNodeID += w.Width
	}
}

// indexCells emits one node per selected cell in declaration order and
// indexes each connection per its pin direction: input pins make the
// cell a consumer (target) of the signal, output pins a driver (source),
// and an inout pin registers both roles. The node counter advances by
// one per cell.
func (b *builder) indexCells() {
	for _, c := range b.module.Cells() {
		if !b.sel.IncludesCell(b.module, c) {
			continue
		}
		b.res.Nodes = append(b.res.Nodes, Node{
			ID:    b.nextNodeID,
			Label: c.Name,
			Type:  c.Type,
			Kind:  KindCell,
		})
		for _, conn := range c.Conns {
			if conn.Input {
				b.indexSignal(conn.Signal, b.nextNodeID, false)
			}
			if conn.Output {
				b.indexSignal(conn.Signal, b.nextNodeID, true)
			}
		}
		b.nextNodeID++
	}
}

// emitEdges cross-joins each bit's sources against its targets, per
// selected wire in declaration order, per bit in storage order. A pair
// equal to the immediately previously emitted one is suppressed; the
// slot resets at every wire. Identifying a bit here may still assign a
// fresh integer: wires no port or cell touched get identifiers too.
func (b *builder) emitEdges() {
	for _, w := range b.module.Wires() {
		if !b.sel.IncludesWire(b.module, w) {
			continue
		}
		prevSource, prevTarget := 0, 0
		for _, bit := range w.Bits() {
			id := b.identify(bit)
			for _, s := range b.sources[id] {
				for _, t := range b.targets[id] {
					if s == prevSource && t == prevTarget {
						continue
					}
					b.res.Edges = append(b.res.Edges, Edge{Source: s, Target: t})
					prevSource, prevTarget = s, t
				}
			}
		}
	}
}
