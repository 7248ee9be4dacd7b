package yosysjson

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// Validate checks raw JSON bytes against the embedded netlist schema.
// Valid JSON is valid CUE, so the data compiles directly and unifies
// with the #Netlist definition; every violation is collected into the
// returned error rather than stopping at the first.
//
// A schema pass does not guarantee a loadable design (net indices may
// still dangle), but a schema failure pinpoints the offending path,
// which the loader's shape errors cannot.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes([]byte(schemaSource))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("%w: compiling schema: %v", ErrSchema, err)
	}
	def := schema.LookupPath(cue.ParsePath("#Netlist"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("%w: looking up #Netlist: %v", ErrSchema, err)
	}

	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if err := def.Unify(value).Validate(); err != nil {
		details := make([]string, 0, 4)
		for _, e := range cueerrors.Errors(err) {
			details = append(details, e.Error())
		}

		return fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
	}

	return nil
}
