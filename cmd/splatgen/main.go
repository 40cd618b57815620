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

// Command splatgen generates the vector-scalar operators of package hwy.
//
// Each generated XxxScalar function broadcasts its scalar operand and calls
// the vector operator Xxx through the shared splatRHS combinator.
//
// Usage:
//
//	splatgen --output splat_ops_gen.go
//	splatgen --output ops.go --kinds add,mul
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/splatgen --output splat_ops_gen.go --package hwy
package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-autosplat/hwy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output    string
		pkg       string
		kindNames []string
	)

	cmd := &cobra.Command{
		Use:           "splatgen",
		Short:         "Generate vector-scalar operators that broadcast the scalar operand",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := parseKinds(kindNames)
			if err != nil {
				return err
			}
			gen := &Generator{Package: pkg, Kinds: kinds}

			if output == "" || output == "-" {
				src, err := gen.Generate()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := gen.WriteFile(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&pkg, "package", "hwy", "Package clause of the generated file")
	cmd.Flags().StringSliceVar(&kindNames, "kinds", nil, "Comma-separated operator kinds: add, sub, mul, div, rem, and, or, xor, shl, shr (default: all)")
	return cmd
}

func parseKinds(names []string) ([]hwy.Kind, error) {
	kinds := make([]hwy.Kind, 0, len(names))
	for _, name := range lo.Compact(names) {
		k, err := hwy.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
