package yosysjson

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/netgml/netlist"
)

// Load decodes a JSON netlist from r into a Design. Ports register
// their wires first (in ports-section order), then the remaining
// netnames (in netnames-section order), then cells; that sequence is
// the declaration order every downstream traversal sees.
//
// Complexity: O(total bits + wires + cells) over the whole document.
func Load(r io.Reader) (*netlist.Design, error) {
	raw, err := decodeDesign(r)
	if err != nil {
		return nil, err
	}

	design := netlist.NewDesign()
	for _, rm := range raw.modules {
		m, err := buildModule(rm)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", rm.name, err)
		}
		if err := design.AddModule(m); err != nil {
			return nil, err
		}
	}

	return design, nil
}

// LoadFile opens path and loads it.
func LoadFile(path string) (*netlist.Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yosysjson: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// netRegistry maps net indices to the first wire bit that claimed them.
type netRegistry map[int]netlist.SigBit

// register binds a wire's bits to their net entries. The first sighting
// of a net index claims it; every later sighting becomes an alias
// connection on the module, and constant entries tie the wire bit to
// the constant state.
func (reg netRegistry) register(m *netlist.Module, w *netlist.Wire, bits []rawBit) error {
	for i, b := range bits {
		wb := netlist.WireBit(w, i)
		if b.isConst {
			if err := m.Connect(netlist.SigSpec{wb}, netlist.ConstSpec(b.state)); err != nil {
				return err
			}

			continue
		}
		first, seen := reg[b.net]
		switch {
		case !seen:
			reg[b.net] = wb
		case first == wb:
			// A name listed twice over the same storage; nothing to alias.
		default:
			if err := m.Connect(netlist.SigSpec{wb}, netlist.SigSpec{first}); err != nil {
				return err
			}
		}
	}

	return nil
}

// resolve turns a cell pin's bits into a SigSpec against the registry.
func (reg netRegistry) resolve(bits []rawBit) (netlist.SigSpec, error) {
	sig := make(netlist.SigSpec, 0, len(bits))
	for i, b := range bits {
		if b.isConst {
			sig = append(sig, netlist.ConstBit(b.state))

			continue
		}
		wb, ok := reg[b.net]
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: net %d", ErrUnknownNet, i, b.net)
		}
		sig = append(sig, wb)
	}

	return sig, nil
}

// parseDirection maps the three accepted direction strings onto the
// input/output flag pair; inout sets both.
func parseDirection(dir string) (input, output bool, err error) {
	switch dir {
	case "input":
		return true, false, nil
	case "output":
		return false, true, nil
	case "inout":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("%w: %q", ErrBadDirection, dir)
	}
}

func buildModule(rm rawModule) (*netlist.Module, error) {
	m := netlist.NewModule(rm.name)
	reg := netRegistry{}

	for _, rp := range rm.ports {
		in, out, err := parseDirection(rp.direction)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", rp.name, err)
		}
		w := &netlist.Wire{
			Name:       rp.name,
			Width:      len(rp.bits),
			Offset:     rp.offset,
			Upto:       rp.upto,
			Signed:     rp.signed,
			PortInput:  in,
			PortOutput: out,
		}
		if err := m.AddWire(w); err != nil {
			return nil, err
		}
		if err := m.AddPort(rp.name); err != nil {
			return nil, err
		}
		if err := reg.register(m, w, rp.bits); err != nil {
			return nil, err
		}
	}

	// A netname sharing a port's name describes the same storage; any
	// other name adds a plain wire.
	for _, rn := range rm.nets {
		w := m.Wire(rn.name)
		switch {
		case w == nil:
			w = &netlist.Wire{
				Name:   rn.name,
				Width:  len(rn.bits),
				Offset: rn.offset,
				Upto:   rn.upto,
				Signed: rn.signed,
				Hidden: rn.hidden,
			}
			if err := m.AddWire(w); err != nil {
				return nil, err
			}
		case w.Width != len(rn.bits):
			return nil, fmt.Errorf("%w: netname %q: %d bits for %d-bit wire",
				ErrSyntax, rn.name, len(rn.bits), w.Width)
		}
		if err := reg.register(m, w, rn.bits); err != nil {
			return nil, err
		}
	}

	for _, rc := range rm.cells {
		conns := make([]netlist.CellConn, 0, len(rc.conns))
		for _, pc := range rc.conns {
			sig, err := reg.resolve(pc.bits)
			if err != nil {
				return nil, fmt.Errorf("cell %q pin %q: %w", rc.name, pc.pin, err)
			}
			var in, out bool
			if dir, ok := rc.pinDirs[pc.pin]; ok {
				if in, out, err = parseDirection(dir); err != nil {
					return nil, fmt.Errorf("cell %q pin %q: %w", rc.name, pc.pin, err)
				}
			}
			conns = append(conns, netlist.CellConn{
				Pin:    pc.pin,
				Signal: sig,
				Input:  in,
				Output: out,
			})
		}
		cell := &netlist.Cell{
			Name:       rc.name,
			Type:       rc.typ,
			Hidden:     rc.hidden,
			Parameters: rc.parameters,
			Conns:      conns,
		}
		if err := m.AddCell(cell); err != nil {
			return nil, err
		}
	}

	for _, p := range rm.processes {
		m.AddProcess(p)
	}

	return m, nil
}
