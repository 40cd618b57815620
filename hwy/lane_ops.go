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

import (
	"math"
	"unsafe"
)

// Lane operators: the single-element counterparts of the vector operators.
// A lane operator and its vector operator share semantics, including the
// edge cases (wrapping overflow, divide-by-zero panics, shift wrapping).

// LaneOp is a binary operator over two scalars of the same type.
type LaneOp[T Lanes] func(a, b T) T

// AddLane returns a + b.
func AddLane[T Lanes](a, b T) T { return a + b }

// SubLane returns a - b.
func SubLane[T Lanes](a, b T) T { return a - b }

// MulLane returns a * b.
func MulLane[T Lanes](a, b T) T { return a * b }

// DivLane returns a / b. An integer zero divisor panics.
func DivLane[T Lanes](a, b T) T { return a / b }

// RemLane returns the remainder of a / b truncated toward zero. The result
// has the sign of a. Float lanes use math.Mod, so x rem 0 is NaN; an integer
// zero divisor panics.
func RemLane[T Lanes](a, b T) T {
	switch {
	case isFloat[T]():
		return T(math.Mod(float64(a), float64(b)))
	case isSigned[T]():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// AndLane returns a & b.
func AndLane[T Integers](a, b T) T { return a & b }

// OrLane returns a | b.
func OrLane[T Integers](a, b T) T { return a | b }

// XorLane returns a ^ b.
func XorLane[T Integers](a, b T) T { return a ^ b }

// ShlLane returns a << (b mod bits), where bits is the width of T.
func ShlLane[T Integers](a, b T) T {
	return a << shiftAmount(b)
}

// ShrLane returns a >> (b mod bits), where bits is the width of T.
// Signed values shift arithmetically.
func ShrLane[T Integers](a, b T) T {
	return a >> shiftAmount(b)
}

// shiftAmount masks b to the bit width of T. Negative amounts wrap the same
// way as their two's complement bit pattern.
func shiftAmount[T Integers](b T) uint {
	bits := uint(unsafe.Sizeof(b)) * 8
	return uint(b) & (bits - 1)
}

func isFloat[T Lanes]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

func isSigned[T Lanes]() bool {
	var zero T
	return zero-1 < 0
}
