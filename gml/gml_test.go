package gml_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netgml/gml"
	"github.com/katalvlaran/netgml/netgraph"
	"github.com/katalvlaran/netgml/netlist"
)

// andGateGML is the full expected rendering of the and-gate fixture.
// Trailing blanks and the bare closing bracket are intentional.
const andGateGML = "graph [\n" +
	"    multigraph 1\n" +
	"          node [  id  2    label  \"x\" \n" +
	"              type\t\"input\"\n" +
	"          ]\n" +
	"          node [  id  3    label  \"y\" \n" +
	"              type\t\"input\"\n" +
	"          ]\n" +
	"          node [  id  4    label  \"out\" \n" +
	"              type\t\"output\"\n" +
	"          ]\n" +
	"          node [  id  6    label  \"g1\" \n" +
	"              type\t\"$and\"\n" +
	"          ]\n" +
	"          edge [    source  2    target  6    ] \n" +
	"          edge [    source  3    target  6    ] \n" +
	"          edge [    source  6    target  4    ] \n" +
	"]"

const emptyGML = "graph [\n    multigraph 1\n]"

// WriteSuite exercises WriteDesign and WriteFile end to end.
type WriteSuite struct {
	suite.Suite
}

func TestWriteSuite(t *testing.T) {
	suite.Run(t, new(WriteSuite))
}

// andGateModule assembles a two-input and gate with a constant-tied
// second output bit under the given module name.
func andGateModule(r *require.Assertions, name string) *netlist.Module {
	m := netlist.NewModule(name)

	x := &netlist.Wire{Name: "x", Width: 1, PortInput: true}
	y := &netlist.Wire{Name: "y", Width: 1, PortInput: true}
	out := &netlist.Wire{Name: "out", Width: 2, PortOutput: true}
	r.NoError(m.AddWire(x))
	r.NoError(m.AddWire(y))
	r.NoError(m.AddWire(out))
	r.NoError(m.AddPort("x"))
	r.NoError(m.AddPort("y"))
	r.NoError(m.AddPort("out"))

	gate := &netlist.Cell{
		Name: "g1",
		Type: "$and",
		Conns: []netlist.CellConn{
			{Pin: "A", Signal: x.Bits(), Input: true},
			{Pin: "B", Signal: y.Bits(), Input: true},
			{Pin: "Y", Signal: netlist.SigSpec{netlist.WireBit(out, 0)}, Output: true},
		},
	}
	r.NoError(m.AddCell(gate))
	r.NoError(m.Connect(
		netlist.SigSpec{netlist.WireBit(out, 1)},
		netlist.ConstSpec(netlist.S0),
	))

	return m
}

// procModule builds a module that still carries a process block.
func procModule(r *require.Assertions, name string) *netlist.Module {
	m := netlist.NewModule(name)
	m.AddProcess("$proc$" + name + ".v:5$1")
	r.NoError(m.AddWire(&netlist.Wire{Name: "q", Width: 1, PortOutput: true}))
	r.NoError(m.AddPort("q"))

	return m
}

func (s *WriteSuite) TestAndGateBytes() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "and2")))

	var buf bytes.Buffer
	r.NoError(gml.WriteDesign(&buf, d, gml.DefaultOptions()))
	r.Equal(andGateGML, buf.String())
}

func (s *WriteSuite) TestEmptyDesign() {
	r := s.Require()

	var buf bytes.Buffer
	r.NoError(gml.WriteDesign(&buf, netlist.NewDesign(), gml.DefaultOptions()))
	r.Equal(emptyGML, buf.String())
}

func (s *WriteSuite) TestNilWriter() {
	err := gml.WriteDesign(nil, netlist.NewDesign(), gml.DefaultOptions())
	s.Require().ErrorIs(err, gml.ErrNilWriter)
}

func (s *WriteSuite) TestNilDesign() {
	var buf bytes.Buffer
	err := gml.WriteDesign(&buf, nil, gml.DefaultOptions())
	s.Require().ErrorIs(err, gml.ErrNilDesign)
	s.Require().Zero(buf.Len())
}

// TestProcessAbort pins the partial-output contract: the clean module
// before the failing one stays, the bracket never closes.
func (s *WriteSuite) TestProcessAbort() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "and2")))
	r.NoError(d.AddModule(procModule(r, "seq")))

	var buf bytes.Buffer
	err := gml.WriteDesign(&buf, d, gml.DefaultOptions())
	r.ErrorIs(err, netgraph.ErrProcesses)
	r.ErrorContains(err, "seq")

	want := andGateGML[:len(andGateGML)-1] // everything but the footer
	r.Equal(want, buf.String())
}

func (s *WriteSuite) TestModuleSelection() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "keep")))
	r.NoError(d.AddModule(andGateModule(r, "drop")))

	opts := gml.DefaultOptions()
	opts.Selection = &netlist.Selection{
		Modules: func(m *netlist.Module) bool { return m.Name() == "keep" },
	}

	var buf bytes.Buffer
	r.NoError(gml.WriteDesign(&buf, d, opts))
	r.Equal(andGateGML, buf.String())
}

// TestParallelMatchesSequential renders the same design with and
// without workers and demands identical bytes.
func (s *WriteSuite) TestParallelMatchesSequential() {
	r := s.Require()

	d := netlist.NewDesign()
	for i := 0; i < 6; i++ {
		r.NoError(d.AddModule(andGateModule(r, fmt.Sprintf("blk_%d", i))))
	}

	var sequential bytes.Buffer
	r.NoError(gml.WriteDesign(&sequential, d, gml.DefaultOptions()))

	parallel := gml.DefaultOptions()
	parallel.Workers = 4
	var concurrent bytes.Buffer
	r.NoError(gml.WriteDesign(&concurrent, d, parallel))

	r.Equal(sequential.String(), concurrent.String())
}

// TestParallelFailureKeepsOrder checks that a mid-design failure under
// workers still reports and truncates at the earliest failed module.
func (s *WriteSuite) TestParallelFailureKeepsOrder() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "first")))
	r.NoError(d.AddModule(procModule(r, "broken")))
	r.NoError(d.AddModule(andGateModule(r, "last")))

	opts := gml.DefaultOptions()
	opts.Workers = 3

	var buf bytes.Buffer
	err := gml.WriteDesign(&buf, d, opts)
	r.ErrorIs(err, netgraph.ErrProcesses)
	r.ErrorContains(err, "broken")
	// Exactly the clean module ahead of the failure is flushed; the
	// module past it contributes nothing even though it rendered.
	r.Equal(andGateGML[:len(andGateGML)-1], buf.String())
}

func (s *WriteSuite) TestReservedFlagsNoEffect() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "and2")))

	opts := gml.DefaultOptions()
	opts.IncludeAigModels = true
	opts.CompatIntMode = true

	var buf bytes.Buffer
	r.NoError(gml.WriteDesign(&buf, d, opts))
	r.Equal(andGateGML, buf.String())
}

func (s *WriteSuite) TestWriteFile() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(andGateModule(r, "and2")))

	path := filepath.Join(s.T().TempDir(), "and2.gml")
	r.NoError(gml.WriteFile(path, d, gml.DefaultOptions()))

	data, err := os.ReadFile(path)
	r.NoError(err)
	r.Equal(andGateGML, string(data))
}

// TestWriteFileKeepsFilesystemClean verifies no partial file appears
// when rendering fails.
func (s *WriteSuite) TestWriteFileKeepsFilesystemClean() {
	r := s.Require()

	d := netlist.NewDesign()
	r.NoError(d.AddModule(procModule(r, "seq")))

	path := filepath.Join(s.T().TempDir(), "seq.gml")
	err := gml.WriteFile(path, d, gml.DefaultOptions())
	r.ErrorIs(err, netgraph.ErrProcesses)

	_, statErr := os.Stat(path)
	r.True(os.IsNotExist(statErr))
}
