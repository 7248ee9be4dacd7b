package yosysjson_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netgml/yosysjson"
)

// ExampleLoad decodes a one-inverter netlist and walks the resulting
// model in declaration order.
func ExampleLoad() {
	const src = `{
	  "modules": {
	    "inv": {
	      "ports": {
	        "a": { "direction": "input",  "bits": [2] },
	        "y": { "direction": "output", "bits": [3] }
	      },
	      "cells": {
	        "u0": {
	          "type": "$not",
	          "port_directions": { "A": "input", "Y": "output" },
	          "connections": { "A": [2], "Y": [3] }
	        }
	      }
	    }
	  }
	}`

	d, err := yosysjson.Load(strings.NewReader(src))
	if err != nil {
		fmt.Println("load failed:", err)

		return
	}

	m := d.Module("inv")
	fmt.Println("module:", m.Name())
	for _, name := range m.Ports() {
		w := m.Wire(name)
		fmt.Printf("port %s %s width %d\n", w.Direction(), name, w.Width)
	}
	for _, c := range m.Cells() {
		fmt.Printf("cell %s type %s pins %d\n", c.Name, c.Type, len(c.Conns))
	}

	// Output:
	// module: inv
	// port input a width 1
	// port output y width 1
	// cell u0 type $not pins 2
}
