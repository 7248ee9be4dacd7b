package gml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netgml/netgraph"
	"github.com/katalvlaran/netgml/netlist"
)

// Layout constants. Exact spacing, including the trailing blank on node
// and edge lines and the missing newline after the closing bracket, is
// part of the output contract.
const (
	headerText   = "graph [\n    multigraph 1\n"
	footerText   = "]"
	nodeOpenFmt  = "          node [  id  %d    label  %s \n"
	portTypeFmt  = "              type\t\"%s\"\n"
	cellTypeFmt  = "              type\t%s\n"
	nodeClose    = "          ]\n"
	edgeFmt      = "          edge [    source  %d    target  %d    ] \n"
	filePermMode = 0o644
)

// renderResult holds one module's rendered bytes, or the reason it
// produced none.
type renderResult struct {
	buf *bytes.Buffer
	err error
}

// WriteDesign renders every selected module of d to w in declaration
// order. On a module failure, bytes already written for earlier modules
// stay in w, the failing module contributes nothing, and the closing
// bracket is omitted; the returned error is the first failure in design
// order regardless of opts.Workers.
//
// Complexity: O(total nodes + total edges) time; each module's text is
// buffered until its turn in the in-order flush.
func WriteDesign(w io.Writer, d *netlist.Design, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if d == nil {
		return ErrNilDesign
	}

	var mods []*netlist.Module
	for _, m := range d.Modules() {
		if opts.Selection.IncludesModule(m) {
			mods = append(mods, m)
		}
	}

	if _, err := io.WriteString(w, headerText); err != nil {
		return fmt.Errorf("gml: write header: %w", err)
	}

	results := renderAll(mods, opts)
	for _, r := range results {
		if r.err != nil {
			return r.err
		}
		if _, err := w.Write(r.buf.Bytes()); err != nil {
			return fmt.Errorf("gml: write module: %w", err)
		}
	}

	if _, err := io.WriteString(w, footerText); err != nil {
		return fmt.Errorf("gml: write footer: %w", err)
	}

	return nil
}

// WriteFile renders d to memory and creates path only when the whole
// design rendered cleanly. A failing render leaves the filesystem
// untouched.
func WriteFile(path string, d *netlist.Design, opts Options) error {
	var buf bytes.Buffer
	if err := WriteDesign(&buf, d, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePermMode); err != nil {
		return fmt.Errorf("gml: %w", err)
	}

	return nil
}

// renderAll fills one slot per module. Sequential mode stops at the
// first failure; parallel mode renders every module and leaves ordering
// decisions to the caller's in-order walk, which reaches the earliest
// failed slot before any later one.
func renderAll(mods []*netlist.Module, opts Options) []renderResult {
	results := make([]renderResult, len(mods))
	if opts.Workers > 1 && len(mods) > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for i, m := range mods {
			g.Go(func() error {
				buf, err := renderModule(m, opts.Selection)
				results[i] = renderResult{buf: buf, err: err}

				return err
			})
		}
		// Per-slot errors drive the outcome; Wait only synchronizes.
		_ = g.Wait()

		return results
	}

	for i, m := range mods {
		buf, err := renderModule(m, opts.Selection)
		results[i] = renderResult{buf: buf, err: err}
		if err != nil {
			return results[:i+1]
		}
	}

	return results
}

// renderModule resolves one module through netgraph.Build and prints its
// node records followed by its edge records.
func renderModule(m *netlist.Module, sel *netlist.Selection) (*bytes.Buffer, error) {
	g, err := netgraph.Build(m, sel)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	for _, n := range g.Nodes {
		fmt.Fprintf(buf, nodeOpenFmt, n.ID, Quote(n.Label))
		if n.Kind == netgraph.KindPort {
			fmt.Fprintf(buf, portTypeFmt, n.Type)
		} else {
			fmt.Fprintf(buf, cellTypeFmt, Quote(n.Type))
		}
		buf.WriteString(nodeClose)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(buf, edgeFmt, e.Source, e.Target)
	}

	return buf, nil
}
