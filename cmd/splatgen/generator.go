// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-autosplat/hwy"
)

// opNames maps each kind to the base name shared by its vector operator
// (Add), lane operator (AddLane) and scalar operator (AddScalar).
var opNames = map[hwy.Kind]string{
	hwy.KindAdd:    "add",
	hwy.KindSub:    "sub",
	hwy.KindMul:    "mul",
	hwy.KindDiv:    "div",
	hwy.KindRem:    "rem",
	hwy.KindBitAnd: "and",
	hwy.KindBitOr:  "or",
	hwy.KindBitXor: "xor",
	hwy.KindShl:    "shl",
	hwy.KindShr:    "shr",
}

// OpSpec describes one generated vector-scalar operator.
type OpSpec struct {
	Kind       hwy.Kind
	Name       string // exported base name, e.g. "Add"
	Constraint string // element constraint, "Lanes" or "Integers"
}

// Generator emits the XxxScalar wrappers for a set of operator kinds.
type Generator struct {
	Package string
	Kinds   []hwy.Kind
}

const splatTemplate = `// Code generated by splatgen. DO NOT EDIT.

package {{.Package}}
{{range .Ops}}
// {{.Name}}Scalar is {{.Name}} with s broadcast to every lane of v.
func {{.Name}}Scalar[T {{.Constraint}}, N LaneCount](v Vec[T, N], s T) Vec[T, N] {
	return splatRHS(v, s, {{.Name}}[T, N], {{.Name}}Lane[T])
}
{{end}}`

var tmpl = template.Must(template.New("splat").Parse(splatTemplate))

// Specs returns the operator specs for the generator's kinds, in kind order.
// An empty kind list selects every kind.
func (g *Generator) Specs() ([]OpSpec, error) {
	kinds := g.Kinds
	if len(kinds) == 0 {
		kinds = hwy.Kinds()
	}
	if bad, ok := lo.Find(kinds, func(k hwy.Kind) bool { return !k.Valid() }); ok {
		return nil, fmt.Errorf("%w: %d", hwy.ErrInvalidKind, bad)
	}
	kinds = lo.Uniq(kinds)
	slices.Sort(kinds)

	title := cases.Title(language.Und)
	specs := lo.Map(kinds, func(k hwy.Kind, _ int) OpSpec {
		constraint := "Lanes"
		if k.IntegerOnly() {
			constraint = "Integers"
		}
		return OpSpec{Kind: k, Name: title.String(opNames[k]), Constraint: constraint}
	})
	return specs, nil
}

// Generate renders and formats the generated source.
func (g *Generator) Generate() ([]byte, error) {
	specs, err := g.Specs()
	if err != nil {
		return nil, err
	}

	pkg := g.Package
	if pkg == "" {
		pkg = "hwy"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package string
		Ops     []OpSpec
	}{pkg, specs}); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := imports.Process("splat_ops_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// WriteFile generates the source and writes it to path.
func (g *Generator) WriteFile(path string) error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
