package yosysjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/netgml/netlist"
)

// rawBit is one connectivity entry before net resolution: either a net
// index or a constant state.
type rawBit struct {
	net     int
	state   netlist.State
	isConst bool
}

// The raw* structs mirror the file structure with member order made
// explicit, since Go maps would shuffle it.
type rawPort struct {
	name      string
	direction string
	bits      []rawBit
	offset    int
	upto      bool
	signed    bool
}

type rawNet struct {
	name   string
	hidden bool
	bits   []rawBit
	offset int
	upto   bool
	signed bool
}

type rawConn struct {
	pin  string
	bits []rawBit
}

type rawCell struct {
	name       string
	hidden     bool
	typ        string
	parameters map[string]string
	pinDirs    map[string]string
	conns      []rawConn
}

type rawModule struct {
	name      string
	ports     []rawPort
	nets      []rawNet
	cells     []rawCell
	processes []string
}

type rawDesign struct {
	creator string
	modules []rawModule
}

// Leaf shapes for members whose internal order carries no meaning.
type portJSON struct {
	Direction string `json:"direction"`
	Bits      []any  `json:"bits"`
	Offset    int    `json:"offset"`
	Upto      int    `json:"upto"`
	Signed    int    `json:"signed"`
}

type netJSON struct {
	HideName int   `json:"hide_name"`
	Bits     []any `json:"bits"`
	Offset   int   `json:"offset"`
	Upto     int   `json:"upto"`
	Signed   int   `json:"signed"`
}

// decodeDesign walks the document token by token, keeping every object's
// member order. UseNumber keeps bits entries distinguishable: numbers
// arrive as json.Number, constant tokens as string.
func decodeDesign(r io.Reader) (*rawDesign, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	d := &rawDesign{}
	err := walkObject(dec, func(key string) error {
		switch key {
		case "creator":
			return decodeLeaf(dec, &d.creator)
		case "modules":
			return walkObject(dec, func(name string) error {
				m, err := decodeModule(dec, name)
				if err != nil {
					return fmt.Errorf("module %q: %w", name, err)
				}
				d.modules = append(d.modules, m)

				return nil
			})
		default:
			return skipValue(dec)
		}
	})
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after design: %v", ErrSyntax, tok)
	}

	return d, nil
}

func decodeModule(dec *json.Decoder, name string) (rawModule, error) {
	m := rawModule{name: name}
	err := walkObject(dec, func(key string) error {
		switch key {
		case "ports":
			return walkObject(dec, func(portName string) error {
				var leaf portJSON
				if err := decodeLeaf(dec, &leaf); err != nil {
					return err
				}
				bits, err := parseBits(leaf.Bits)
				if err != nil {
					return fmt.Errorf("port %q: %w", portName, err)
				}
				m.ports = append(m.ports, rawPort{
					name:      portName,
					direction: leaf.Direction,
					bits:      bits,
					offset:    leaf.Offset,
					upto:      leaf.Upto != 0,
					signed:    leaf.Signed != 0,
				})

				return nil
			})
		case "netnames":
			return walkObject(dec, func(netName string) error {
				var leaf netJSON
				if err := decodeLeaf(dec, &leaf); err != nil {
					return err
				}
				bits, err := parseBits(leaf.Bits)
				if err != nil {
					return fmt.Errorf("netname %q: %w", netName, err)
				}
				m.nets = append(m.nets, rawNet{
					name:   netName,
					hidden: leaf.HideName != 0,
					bits:   bits,
					offset: leaf.Offset,
					upto:   leaf.Upto != 0,
					signed: leaf.Signed != 0,
				})

				return nil
			})
		case "cells":
			return walkObject(dec, func(cellName string) error {
				c, err := decodeCell(dec, cellName)
				if err != nil {
					return err
				}
				m.cells = append(m.cells, c)

				return nil
			})
		case "processes":
			return walkObject(dec, func(procName string) error {
				m.processes = append(m.processes, procName)

				return skipValue(dec)
			})
		default:
			return skipValue(dec)
		}
	})

	return m, err
}

// decodeCell keeps the connections member order; it becomes the pin
// traversal order downstream.
func decodeCell(dec *json.Decoder, name string) (rawCell, error) {
	c := rawCell{name: name}
	err := walkObject(dec, func(key string) error {
		switch key {
		case "hide_name":
			var flag int
			if err := decodeLeaf(dec, &flag); err != nil {
				return err
			}
			c.hidden = flag != 0

			return nil
		case "type":
			return decodeLeaf(dec, &c.typ)
		case "parameters":
			var params map[string]json.RawMessage
			if err := decodeLeaf(dec, &params); err != nil {
				return err
			}
			c.parameters = stringifyParams(params)

			return nil
		case "port_directions":
			return decodeLeaf(dec, &c.pinDirs)
		case "connections":
			return walkObject(dec, func(pin string) error {
				var entries []any
				if err := decodeLeaf(dec, &entries); err != nil {
					return err
				}
				bits, err := parseBits(entries)
				if err != nil {
					return fmt.Errorf("cell %q pin %q: %w", name, pin, err)
				}
				c.conns = append(c.conns, rawConn{pin: pin, bits: bits})

				return nil
			})
		default:
			return skipValue(dec)
		}
	})

	return c, err
}

// parseBits converts one decoded bits array. Entries arrive as
// json.Number (net index) or string (constant token).
func parseBits(entries []any) ([]rawBit, error) {
	bits := make([]rawBit, 0, len(entries))
	for i, e := range entries {
		switch v := e.(type) {
		case json.Number:
			n, err := strconv.Atoi(v.String())
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: entry %d: %s", ErrBadBit, i, v)
			}
			bits = append(bits, rawBit{net: n})
		case string:
			st, ok := netlist.ParseState(v)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d: %q", ErrBadBit, i, v)
			}
			bits = append(bits, rawBit{state: st, isConst: true})
		default:
			return nil, fmt.Errorf("%w: entry %d: unexpected %T", ErrBadBit, i, e)
		}
	}

	return bits, nil
}

// stringifyParams keeps parameter values textual: JSON strings decode,
// anything else keeps its raw source text (integer parameters from
// compat-int emitters stay as digit strings).
func stringifyParams(params map[string]json.RawMessage) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = string(v)
		}
		out[k] = s
	}

	return out
}

// walkObject consumes one JSON object, invoking visit once per member in
// file order. The visitor must consume exactly the member's value.
func walkObject(dec *json.Decoder, visit func(key string) error) error {
	if err := expectDelim(dec, json.Delim('{')); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: object key %v", ErrSyntax, tok)
		}
		if err := visit(key); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %v, found %v", ErrSyntax, want, tok)
	}

	return nil
}

// skipValue consumes and discards the next value whole.
func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return nil
}

func decodeLeaf(dec *json.Decoder, dst any) error {
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return nil
}
