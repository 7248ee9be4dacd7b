// Command netgml converts JSON netlists into GML multigraph files.
//
// Usage:
//
//	netgml export design.json -o design.gml
//	netgml export - < design.json > design.gml
//	netgml export design.json --select 'cpu_*' --skip-hidden --workers 4
//	netgml validate design.json
//
// A YAML config file may preset workers, strict and skip_hidden;
// command-line flags win over the file:
//
//	netgml export design.json --config netgml.yaml
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgml/gml"
	"github.com/katalvlaran/netgml/yosysjson"
)

var (
	rootCmd = &cobra.Command{
		Use:   "netgml",
		Short: "Convert JSON netlists to GML graphs",
		Long: `netgml loads a synthesis netlist in the JSON interchange format,
resolves bit-level connectivity, and writes a flat GML multigraph:
one node per module port and cell, one edge per driver/consumer pair.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export [netlist.json]",
		Short: "Render a JSON netlist as a GML multigraph",
		Long: `Reads the given JSON netlist (or standard input when the argument
is "-") and writes GML to --output, or to standard output when no
output file is given. Modules render in declaration order; module
names can be filtered with repeatable --select glob patterns.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	validateCmd = &cobra.Command{
		Use:   "validate [netlist.json]",
		Short: "Check a JSON netlist against the schema without converting",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	configPath string
	verbose    bool

	outputPath  string
	includeAig  bool
	compatInt   bool
	selectGlobs []string
	skipHidden  bool
	strict      bool
	workers     int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write GML to this file instead of stdout")
	exportCmd.Flags().BoolVar(&includeAig, "aig", false, "accept netlists carrying AIG models")
	exportCmd.Flags().BoolVar(&compatInt, "compat-int", false, "accept integer-typed parameter values")
	exportCmd.Flags().StringArrayVar(&selectGlobs, "select", nil, "render only modules matching this glob (repeatable)")
	exportCmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "drop auto-named wires and cells")
	exportCmd.Flags().BoolVar(&strict, "strict", false, "validate against the schema before loading")
	exportCmd.Flags().IntVar(&workers, "workers", 0, "modules rendered concurrently (0 or 1 = sequential)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the whole netlist source, from the file at path or
// from standard input when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// applyConfigDefaults overlays file-provided values onto every flag the
// user left untouched; changed reports whether a flag was set explicitly.
func applyConfigDefaults(cfg Config, changed func(name string) bool) {
	if !changed("workers") {
		workers = cfg.Workers
	}
	if !changed("strict") {
		strict = cfg.Strict
	}
	if !changed("skip-hidden") {
		skipHidden = cfg.SkipHidden
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg, cmd.Flags().Changed)

	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	if strict {
		if err := yosysjson.Validate(data); err != nil {
			return err
		}
		slog.Debug("schema check passed", slog.String("input", args[0]))
	}

	design, err := yosysjson.Load(bytes.NewReader(data))
	if err != nil {
		return err
	}
	var wires, cells int
	for _, m := range design.Modules() {
		wires += len(m.Wires())
		cells += len(m.Cells())
	}
	slog.Debug("netlist loaded",
		slog.String("input", args[0]),
		slog.Int("modules", len(design.Modules())),
		slog.Int("wires", wires),
		slog.Int("cells", cells))

	sel, err := buildSelection(selectGlobs, skipHidden)
	if err != nil {
		return err
	}
	opts := gml.Options{
		IncludeAigModels: includeAig,
		CompatIntMode:    compatInt,
		Selection:        sel,
		Workers:          workers,
	}

	if outputPath == "" {
		return gml.WriteDesign(os.Stdout, design, opts)
	}
	if err := gml.WriteFile(outputPath, design, opts); err != nil {
		return err
	}
	slog.Debug("gml written", slog.String("output", outputPath))

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	if err := yosysjson.Validate(data); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])

	return nil
}
