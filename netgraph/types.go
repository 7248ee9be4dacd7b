// Package netgraph defines the node/edge result types and sentinel
// errors of the module-to-multigraph pipeline.
package netgraph

import (
	"errors"

	"github.com/katalvlaran/netgml/netlist"
)

// Sentinel errors for graph construction.
var (
	// ErrNilModule is returned when Build receives a nil module.
	ErrNilModule = errors.New("netgraph: module is nil")

	// ErrProcesses is returned when a module still holds process blocks.
	// This is a fatal precondition: process blocks have no bit-level
	// connectivity, so nothing of the module is produced.
	ErrProcesses = errors.New("netgraph: module contains process blocks")
)

// NodeKind discriminates the two node variants.
type NodeKind uint8

const (
	// KindPort marks a node synthesized from a module port.
	KindPort NodeKind = iota
	// KindCell marks a node synthesized from a cell instance.
	KindCell
)

// String returns "port" or "cell".
func (k NodeKind) String() string {
	if k == KindPort {
		return "port"
	}

	return "cell"
}

// Node is one synthesized graph vertex. Ports and cells share the same
// shape and id space; Kind tells them apart. Nodes are immutable once
// built.
type Node struct {
	// ID is the unique node id within the module, ≥ 2.
	ID int

	// Label is the raw port or cell name, unquoted.
	Label string

	// Type is the port direction ("input", "output", "inout") or the
	// raw cell type name.
	Type string

	// Kind discriminates port nodes from cell nodes.
	Kind NodeKind
}

// Edge is one directed driver→consumer pair of node ids. Parallel edges
// between the same pair are legitimate; see the package documentation
// for the single-slot suppression rule.
type Edge struct {
	Source int
	Target int
}

// Graph is the flat connectivity graph of one module.
type Graph struct {
	// Module is the module the graph was built from.
	Module *netlist.Module

	// Nodes lists port nodes first, then cell nodes, in traversal order.
	Nodes []Node

	// Edges lists edges in emission order (wire order, bit order,
	// sources × targets).
	Edges []Edge

	// BitIDs maps each touched canonical bit to its identifier:
	// one of the constant tokens "0", "1", "z", "x", or a decimal
	// integer ≥ 2 assigned in first-touch order.
	BitIDs map[netlist.SigBit]string
}
