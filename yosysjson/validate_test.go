package yosysjson_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netgml/yosysjson"
)

// TestValidate_Accepts covers documents that must pass the schema.
func TestValidate_Accepts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "and_gate", src: andGateJSON},
		{name: "minimal", src: `{"modules":{}}`},
		{name: "empty_module", src: `{"modules":{"m":{}}}`},
		{name: "const_bits", src: `{"modules":{"m":{"ports":{"v":{"direction":"output","bits":["0","1","x","z"]}}}}}`},
		{name: "metadata", src: `{"creator":"tool","modules":{"m":{"attributes":{"top":1},"memories":{"ram":{}}}}}`},
		{name: "aig_models", src: `{"modules":{},"models":{"$and":{}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := yosysjson.Validate([]byte(tc.src)); err != nil {
				t.Errorf("Validate(%s) = %v; want nil", tc.name, err)
			}
		})
	}
}

// TestValidate_Rejects covers schema violations; each must surface
// ErrSchema, not a decode failure.
func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "missing_modules", src: `{"creator":"tool"}`},
		{name: "bad_direction", src: `{"modules":{"m":{"ports":{"a":{"direction":"up","bits":[2]}}}}}`},
		{name: "missing_direction", src: `{"modules":{"m":{"ports":{"a":{"bits":[2]}}}}}`},
		{name: "bad_token", src: `{"modules":{"m":{"ports":{"a":{"direction":"input","bits":["q"]}}}}}`},
		{name: "negative_net", src: `{"modules":{"m":{"ports":{"a":{"direction":"input","bits":[-3]}}}}}`},
		{name: "unknown_member", src: `{"modules":{"m":{"bogus":1}}}`},
		{name: "cell_without_type", src: `{"modules":{"m":{"cells":{"c":{"connections":{"A":[2]}}}}}}`},
		{name: "top_level_array", src: `[1, 2]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := yosysjson.Validate([]byte(tc.src))
			if !errors.Is(err, yosysjson.ErrSchema) {
				t.Errorf("Validate(%s) = %v; want ErrSchema", tc.name, err)
			}
		})
	}
}

// TestValidate_SyntaxError distinguishes unparseable input from schema
// violations.
func TestValidate_SyntaxError(t *testing.T) {
	err := yosysjson.Validate([]byte(`{"modules": `))
	if !errors.Is(err, yosysjson.ErrSyntax) {
		t.Errorf("Validate(truncated) = %v; want ErrSyntax", err)
	}
}
