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

// MaxLaneCount is the largest supported number of lanes in a Vec.
const MaxLaneCount = 64

// LaneCount is the constraint for the lane-count parameter of Vec.
//
// Its type set is closed: only the tags below are supported lane counts, so
// a Vec with any other width does not compile.
//
// Usage:
//
//	var v hwy.Vec[float32, hwy.X8]
//	n := hwy.LaneCountOf[hwy.X8]() // 8
type LaneCount interface {
	X1 | X2 | X4 | X8 | X16 | X32 | X64

	// Count returns the number of lanes.
	Count() int

	// Name returns a short name for the lane count ("x4", "x16", etc.)
	Name() string
}

// X1 selects a single-lane vector.
type X1 struct{}

// Count returns 1.
func (X1) Count() int { return 1 }

// Name returns "x1".
func (X1) Name() string { return "x1" }

// X2 selects 2 lanes.
type X2 struct{}

// Count returns 2.
func (X2) Count() int { return 2 }

// Name returns "x2".
func (X2) Name() string { return "x2" }

// X4 selects 4 lanes (128 bits of float32 or int32).
type X4 struct{}

// Count returns 4.
func (X4) Count() int { return 4 }

// Name returns "x4".
func (X4) Name() string { return "x4" }

// X8 selects 8 lanes (256 bits of float32 or int32).
type X8 struct{}

// Count returns 8.
func (X8) Count() int { return 8 }

// Name returns "x8".
func (X8) Name() string { return "x8" }

// X16 selects 16 lanes (512 bits of float32 or int32).
type X16 struct{}

// Count returns 16.
func (X16) Count() int { return 16 }

// Name returns "x16".
func (X16) Name() string { return "x16" }

// X32 selects 32 lanes.
type X32 struct{}

// Count returns 32.
func (X32) Count() int { return 32 }

// Name returns "x32".
func (X32) Name() string { return "x32" }

// X64 selects 64 lanes, the widest supported vector.
type X64 struct{}

// Count returns 64.
func (X64) Count() int { return 64 }

// Name returns "x64".
func (X64) Name() string { return "x64" }

// LaneCountOf returns the number of lanes selected by the tag N.
func LaneCountOf[N LaneCount]() int {
	return laneCount[N]()
}

func laneCount[N LaneCount]() int {
	var n N
	return n.Count()
}

// SupportedLaneCount reports whether n is a lane count that has a tag:
// a power of two between 1 and MaxLaneCount.
func SupportedLaneCount(n int) bool {
	return n >= 1 && n <= MaxLaneCount && n&(n-1) == 0
}
