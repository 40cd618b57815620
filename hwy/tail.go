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

// ProcessWithTail walks a slice of length size in steps of N lanes.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of N
//
// Example:
//
//	hwy.ProcessWithTail[hwy.X8](len(data),
//	    func(offset int) {
//	        v := hwy.Load[float32, hwy.X8](data[offset:])
//	        hwy.MulScalar(v, 2).Store(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.Load[float32, hwy.X8](data[offset : offset+count])
//	        hwy.MulScalar(v, 2).Store(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail[N LaneCount](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := laneCount[N]()

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ApplyScalar computes dst[i] = op(src[i], s) over a whole slice, N lanes at
// a time. op is usually one of the XxxScalar functions. The tail is loaded
// with zero padding and only the live lanes are stored, so the padding never
// reaches dst. dst must be at least as long as src.
func ApplyScalar[T Lanes, N LaneCount](dst, src []T, s T, op func(v Vec[T, N], s T) Vec[T, N]) {
	if len(dst) < len(src) {
		panic("hwy: ApplyScalar dst shorter than src")
	}
	ProcessWithTail[N](len(src),
		func(offset int) {
			op(Load[T, N](src[offset:]), s).Store(dst[offset:])
		},
		func(offset, count int) {
			op(Load[T, N](src[offset:offset+count]), s).Store(dst[offset : offset+count])
		},
	)
}

// AlignedSize rounds up size to the next multiple of N.
// This is useful for allocating buffers that are processed N lanes at a time.
func AlignedSize[N LaneCount](size int) int {
	lanes := laneCount[N]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of N.
func IsAligned[N LaneCount](size int) bool {
	return size%laneCount[N]() == 0
}
