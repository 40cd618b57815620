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

import vecmath "github.com/cwbudde/algo-vecmath"

// This file provides the pure Go implementations of the vector-vector
// operators. Each one applies the matching lane operator from lane_ops.go to
// every lane, so Op(Splat(a), Splat(b)) == Splat(OpLane(a, b)) holds by
// construction. Unless the scalar dispatch level is in effect, the float64
// Add and Mul paths hand the lanes to algo-vecmath, whose kernels compute the
// same IEEE 754 results per lane.

// VectorOp is a lane-wise binary operator over two vectors.
type VectorOp[T Lanes, N LaneCount] func(a, b Vec[T, N]) Vec[T, N]

// Load creates a vector from the first N elements of src.
// Lanes past the end of src are zero.
func Load[T Lanes, N LaneCount](src []T) Vec[T, N] {
	data := make([]T, laneCount[N]())
	copy(data, src)
	return Vec[T, N]{data: data}
}

// Store writes a vector's lanes to dst, up to len(dst).
func Store[T Lanes, N LaneCount](v Vec[T, N], dst []T) {
	n := min(len(dst), laneCount[N]())
	for i := range n {
		dst[i] = v.at(i)
	}
}

// Splat creates a vector with all lanes set to the same value.
func Splat[T Lanes, N LaneCount](value T) Vec[T, N] {
	data := make([]T, laneCount[N]())
	for i := range data {
		data[i] = value
	}
	return Vec[T, N]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes, N LaneCount]() Vec[T, N] {
	return Vec[T, N]{data: make([]T, laneCount[N]())}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
// Lane values wrap for narrow integer types.
func Iota[T Lanes, N LaneCount]() Vec[T, N] {
	data := make([]T, laneCount[N]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T, N]{data: data}
}

// vecmathEnabled reports whether float64 kernels may leave pure Go.
// HWY_NO_SIMD turns them off.
func vecmathEnabled() bool {
	return currentLevel != DispatchScalar
}

func binaryOp[T Lanes, N LaneCount](a, b Vec[T, N], op func(x, y T) T) Vec[T, N] {
	result := make([]T, laneCount[N]())
	for i := range result {
		result[i] = op(a.at(i), b.at(i))
	}
	return Vec[T, N]{data: result}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	var zero T
	if _, ok := any(zero).(float64); ok && vecmathEnabled() {
		dst := make([]float64, laneCount[N]())
		vecmath.AddBlock(dst, any(a.view()).([]float64), any(b.view()).([]float64))
		return Vec[T, N]{data: any(dst).([]T)}
	}
	return binaryOp(a, b, AddLane[T])
}

// Sub performs element-wise subtraction. Integer lanes wrap on overflow.
func Sub[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, SubLane[T])
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	var zero T
	if _, ok := any(zero).(float64); ok && vecmathEnabled() {
		dst := make([]float64, laneCount[N]())
		vecmath.MulBlock(dst, any(a.view()).([]float64), any(b.view()).([]float64))
		return Vec[T, N]{data: any(dst).([]T)}
	}
	return binaryOp(a, b, MulLane[T])
}

// Div performs element-wise division.
//
// Float lanes follow IEEE 754 (x/0 is ±Inf or NaN). For integer lanes a zero
// divisor in any lane panics with a runtime divide error, and the most
// negative value divided by -1 wraps to itself.
func Div[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, DivLane[T])
}

// Rem computes the element-wise remainder of truncated division.
// The result has the sign of the dividend. Float lanes follow math.Mod
// (x rem 0 is NaN); an integer zero divisor panics.
func Rem[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, RemLane[T])
}

// And performs element-wise bitwise AND.
func And[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, AndLane[T])
}

// Or performs element-wise bitwise OR.
func Or[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, OrLane[T])
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, XorLane[T])
}

// Shl shifts each lane of a left by the matching lane of b.
// Shift amounts are taken modulo the lane bit width.
func Shl[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, ShlLane[T])
}

// Shr shifts each lane of a right by the matching lane of b.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
// Shift amounts are taken modulo the lane bit width.
func Shr[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return binaryOp(a, b, ShrLane[T])
}
