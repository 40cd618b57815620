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

package hwy

//go:generate go run ../cmd/splatgen --output splat_ops_gen.go --package hwy

// SplatOp is a binary operator whose right-hand operand is a scalar that is
// broadcast to every lane.
type SplatOp[T Lanes, N LaneCount] func(v Vec[T, N], s T) Vec[T, N]

// splatRHS evaluates vop(v, Splat(s)).
//
// sop is never called. Taking it as an argument means a vector-scalar
// operator can only be instantiated for a T that has the matching lane
// operator, which keeps vop(Splat(a), Splat(b)) == Splat(sop(a, b))
// meaningful for every instantiation. All XxxScalar functions go through here.
func splatRHS[T Lanes, N LaneCount](v Vec[T, N], s T, vop func(a, b Vec[T, N]) Vec[T, N], sop func(a, b T) T) Vec[T, N] {
	return vop(v, Splat[T, N](s))
}

// Derive returns the scalar right-hand form of vop, for callers that pick
// operators at run time. It fails if either operator is missing, so a
// half-specified operator never reaches a computation.
func Derive[T Lanes, N LaneCount](vop VectorOp[T, N], sop LaneOp[T]) (SplatOp[T, N], error) {
	if vop == nil {
		return nil, ErrMissingVectorOp
	}
	if sop == nil {
		return nil, ErrMissingLaneOp
	}
	return func(v Vec[T, N], s T) Vec[T, N] {
		return splatRHS(v, s, vop, sop)
	}, nil
}
