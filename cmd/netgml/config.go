package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netgml/netlist"
)

// Config presets export behavior from a YAML file. Command-line flags
// take precedence over every field here.
type Config struct {
	// Workers bounds concurrent module rendering.
	Workers int `yaml:"workers"`
	// Strict runs the schema check before loading.
	Strict bool `yaml:"strict"`
	// SkipHidden drops auto-named wires and cells from the output.
	SkipHidden bool `yaml:"skip_hidden"`
}

// loadConfig reads the YAML file at cfgPath. An empty path or an empty
// file yields the zero Config; unknown keys are rejected so typos do
// not pass silently.
func loadConfig(cfgPath string) (Config, error) {
	var cfg Config
	if cfgPath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", cfgPath, err)
	}

	return cfg, nil
}

// buildSelection turns the --select globs and the --skip-hidden switch
// into a selection filter; nil means everything renders.
func buildSelection(globs []string, skipHidden bool) (*netlist.Selection, error) {
	for _, g := range globs {
		if _, err := path.Match(g, ""); err != nil {
			return nil, fmt.Errorf("bad --select pattern %q: %w", g, err)
		}
	}
	if len(globs) == 0 && !skipHidden {
		return nil, nil
	}

	sel := &netlist.Selection{}
	if len(globs) > 0 {
		patterns := append([]string(nil), globs...)
		sel.Modules = func(m *netlist.Module) bool {
			for _, g := range patterns {
				if ok, _ := path.Match(g, m.Name()); ok {
					return true
				}
			}

			return false
		}
	}
	if skipHidden {
		sel.Wires = func(_ *netlist.Module, w *netlist.Wire) bool { return !w.Hidden }
		sel.Cells = func(_ *netlist.Module, c *netlist.Cell) bool { return !c.Hidden }
	}

	return sel, nil
}
