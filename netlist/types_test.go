package netlist_test

import (
	"testing"

	"github.com/katalvlaran/netgml/netlist"
)

// TestState_String verifies the four constant tokens and the undefined fallback.
func TestState_String(t *testing.T) {
	cases := []struct {
		state netlist.State
		want  string
	}{
		{netlist.S0, "0"},
		{netlist.S1, "1"},
		{netlist.Sz, "z"},
		{netlist.Sx, "x"},
		{netlist.State(200), "x"}, // out-of-enum values render as undefined
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q; want %q", tc.state, got, tc.want)
		}
	}
}

// TestParseState verifies the token round-trip and rejection of other strings.
func TestParseState(t *testing.T) {
	for _, tok := range []string{"0", "1", "z", "x"} {
		s, ok := netlist.ParseState(tok)
		if !ok {
			t.Fatalf("ParseState(%q) not recognized", tok)
		}
		if got := s.String(); got != tok {
			t.Errorf("ParseState(%q).String() = %q; want %q", tok, got, tok)
		}
	}
	for _, tok := range []string{"", "2", "X", "Z", "01"} {
		if _, ok := netlist.ParseState(tok); ok {
			t.Errorf("ParseState(%q) accepted; want rejection", tok)
		}
	}
}

// TestSigBit_Identity verifies constant/wire discrimination and map-key behavior.
func TestSigBit_Identity(t *testing.T) {
	w := &netlist.Wire{Name: "data", Width: 2}
	wb := netlist.WireBit(w, 1)
	cb := netlist.ConstBit(netlist.S1)

	if wb.IsConst() {
		t.Error("WireBit reported IsConst")
	}
	if !cb.IsConst() {
		t.Error("ConstBit did not report IsConst")
	}
	if got, want := wb.String(), "data[1]"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got, want := cb.String(), "1"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	// Same wire and offset must be the same map key; constants are singletons.
	seen := map[netlist.SigBit]int{}
	seen[netlist.WireBit(w, 1)]++
	seen[wb]++
	seen[netlist.ConstBit(netlist.S1)]++
	seen[cb]++
	if seen[wb] != 2 || seen[cb] != 2 {
		t.Errorf("map keys not shared: %v", seen)
	}
}

// TestWire_Direction verifies the flag decision tree, input first.
func TestWire_Direction(t *testing.T) {
	cases := []struct {
		in, out bool
		want    string
	}{
		{true, false, "input"},
		{false, true, "output"},
		{true, true, "inout"},
	}
	for _, tc := range cases {
		w := &netlist.Wire{Name: "p", Width: 1, PortInput: tc.in, PortOutput: tc.out}
		if got := w.Direction(); got != tc.want {
			t.Errorf("Direction(in=%v,out=%v) = %q; want %q", tc.in, tc.out, got, tc.want)
		}
		if !w.IsPort() {
			t.Errorf("IsPort(in=%v,out=%v) = false; want true", tc.in, tc.out)
		}
	}
	if (&netlist.Wire{Name: "n", Width: 1}).IsPort() {
		t.Error("flag-less wire reported IsPort")
	}
}

// TestWire_Bits verifies storage-order expansion.
func TestWire_Bits(t *testing.T) {
	w := &netlist.Wire{Name: "bus", Width: 3}
	bits := w.Bits()
	if len(bits) != 3 {
		t.Fatalf("len(Bits()) = %d; want 3", len(bits))
	}
	for i, b := range bits {
		if b.Wire != w || b.Offset != i {
			t.Errorf("Bits()[%d] = %v; want bus[%d]", i, b, i)
		}
	}
}

// TestConstSpec verifies argument-order construction.
func TestConstSpec(t *testing.T) {
	spec := netlist.ConstSpec(netlist.S1, netlist.S0, netlist.Sz)
	want := []string{"1", "0", "z"}
	if len(spec) != len(want) {
		t.Fatalf("len = %d; want %d", len(spec), len(want))
	}
	for i, b := range spec {
		if !b.IsConst() || b.String() != want[i] {
			t.Errorf("spec[%d] = %v; want const %s", i, b, want[i])
		}
	}
}
