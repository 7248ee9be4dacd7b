// Package yosysjson loads synthesis netlists from the JSON interchange
// format into the in-memory model, preserving declaration order.
//
// What
//
//   - Load / LoadFile decode a JSON netlist into a netlist.Design:
//     ports become directed port wires, netnames become plain wires,
//     cells become typed instances with per-pin directions, and shared
//     net indices become internal alias connections so that the
//     downstream resolver sees one equivalence class per net.
//   - Validate checks raw JSON bytes against the embedded CUE schema
//     before any decoding, reporting every violation at once.
//
// Ordering
//
//	JSON objects carry their keys in file order and that order is
//	meaningful here: module, port, netname and cell sequences all
//	feed declaration-order traversals downstream. The decoder walks
//	tokens instead of unmarshaling into Go maps, which would shuffle
//	the keys.
//
// Net indexing
//
//	A bits array entry is either a non-negative net index or one of
//	the constant tokens "0", "1", "x", "z". The first wire bit seen
//	for a net index becomes the registry entry for that net; every
//	later occurrence is recorded as an alias connection against the
//	registry entry. Constant entries alias the wire bit to the
//	constant state.
//
// Errors
//
//   - ErrSyntax       - malformed JSON or a value of the wrong shape.
//   - ErrSchema       - Validate found schema violations.
//   - ErrBadBit       - a bits entry is neither a net index nor a token.
//   - ErrBadDirection - a direction is not input, output or inout.
//   - ErrUnknownNet   - a cell pin references a net index that no port
//     or netname declared.
package yosysjson
