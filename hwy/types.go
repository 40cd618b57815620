// Package hwy provides fixed-width portable vectors and lane-wise operators,
// including scalar right-hand operands that are broadcast across all lanes.
//
// Every binary operator exists in three forms that always agree lane by lane:
//
//	hwy.Add(a, b)        // Vec[T, N] + Vec[T, N]
//	hwy.AddLane(x, y)    // T + T
//	hwy.AddScalar(a, y)  // Vec[T, N] + T, same as hwy.Add(a, hwy.Splat[T, N](y))
//
// Basic usage:
//
//	import "github.com/ajroetker/go-autosplat/hwy"
//
//	v := hwy.Load[int32, hwy.X4]([]int32{1, 2, 3, 4})
//	r := hwy.AddScalar(v, 10) // [11 12 13 14]
//
//	out := make([]int32, 4)
//	r.Store(out)
package hwy

import (
	"fmt"
	"strings"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector of exactly N lanes of type T.
//
// Vec values are immutable: every operation returns a new vector and never
// writes to its operands. The zero value is the all-zero vector.
// Use Load, Splat, Zero or Iota to build one.
type Vec[T Lanes, N LaneCount] struct {
	// data holds the lanes. A nil slice stands for all lanes zero.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T, N]) NumLanes() int {
	return laneCount[N]()
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec[T, N]) Lane(i int) T {
	if i < 0 || i >= laneCount[N]() {
		panic(fmt.Sprintf("hwy: lane %d out of range [0, %d)", i, laneCount[N]()))
	}
	return v.at(i)
}

// Data returns a copy of the lanes as a slice.
func (v Vec[T, N]) Data() []T {
	out := make([]T, laneCount[N]())
	copy(out, v.data)
	return out
}

// Store writes the vector's lanes to dst, up to len(dst).
// This is the method form of the hwy.Store function.
func (v Vec[T, N]) Store(dst []T) {
	Store(v, dst)
}

// Equal reports whether v and o hold the same value in every lane.
// Float lanes compare with ==, so a NaN lane is never equal.
func (v Vec[T, N]) Equal(o Vec[T, N]) bool {
	for i := range laneCount[N]() {
		if v.at(i) != o.at(i) {
			return false
		}
	}
	return true
}

func (v Vec[T, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range laneCount[N]() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// view returns the lanes without copying when the backing slice is complete.
// Callers must not write to the result.
func (v Vec[T, N]) view() []T {
	if len(v.data) == laneCount[N]() {
		return v.data
	}
	return v.Data()
}

// at returns lane i, treating a missing backing slice as zeros.
func (v Vec[T, N]) at(i int) T {
	if i < len(v.data) {
		return v.data[i]
	}
	var zero T
	return zero
}
