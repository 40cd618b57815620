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
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// OpEntry is a registered operator: the vector form, its lane form, and the
// scalar right-hand form derived from them.
type OpEntry[T Lanes, N LaneCount] struct {
	// Kind is the operator this entry implements.
	Kind Kind

	// Vector computes the operator over two vectors.
	Vector VectorOp[T, N]

	// Lane computes the operator over two scalars.
	Lane LaneOp[T]

	// Splat computes Vector(v, Splat(s)).
	Splat SplatOp[T, N]
}

// OpTable maps operator kinds to operators for one element type and lane
// count, for call sites that only know the kind at run time.
//
// Register checks that both the vector and the lane operator are present
// before the entry becomes visible, so Lookup never returns a partial entry.
// An OpTable is safe for concurrent use.
type OpTable[T Lanes, N LaneCount] struct {
	mu      sync.RWMutex
	entries map[Kind]OpEntry[T, N]
}

// NewOpTable returns an empty table.
func NewOpTable[T Lanes, N LaneCount]() *OpTable[T, N] {
	return &OpTable[T, N]{entries: make(map[Kind]OpEntry[T, N])}
}

// Register adds the operator for kind. It fails, leaving the table
// unchanged, if kind is not valid, if vop or sop is nil, or if kind is
// already registered.
func (t *OpTable[T, N]) Register(kind Kind, vop VectorOp[T, N], sop LaneOp[T]) error {
	if err := t.register(kind, vop, sop); err != nil {
		Logger().Warn("hwy: operator rejected",
			slog.String("kind", kind.String()),
			slog.String("lanes", laneName[N]()),
			slog.String("error", err.Error()))
		return err
	}
	Logger().Debug("hwy: operator registered",
		slog.String("kind", kind.String()),
		slog.String("lanes", laneName[N]()))
	return nil
}

func (t *OpTable[T, N]) register(kind Kind, vop VectorOp[T, N], sop LaneOp[T]) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	splat, err := Derive(vop, sop)
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.entries == nil {
		t.entries = make(map[Kind]OpEntry[T, N])
	}
	if _, ok := t.entries[kind]; ok {
		return fmt.Errorf("%s: %w", kind, ErrDuplicateKind)
	}
	t.entries[kind] = OpEntry[T, N]{Kind: kind, Vector: vop, Lane: sop, Splat: splat}
	return nil
}

// Lookup returns the entry for kind, if registered.
func (t *OpTable[T, N]) Lookup(kind Kind) (OpEntry[T, N], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[kind]
	return e, ok
}

// Splat applies the registered operator for kind to v and s broadcast.
func (t *OpTable[T, N]) Splat(kind Kind, v Vec[T, N], s T) (Vec[T, N], error) {
	e, ok := t.Lookup(kind)
	if !ok {
		return Vec[T, N]{}, fmt.Errorf("%s: %w", kind, ErrNotRegistered)
	}
	return e.Splat(v, s), nil
}

// Kinds returns the registered kinds in declaration order.
func (t *OpTable[T, N]) Kinds() []Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	kinds := make([]Kind, 0, len(t.entries))
	for k := range t.entries {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ArithmeticTable returns a table with Add, Sub, Mul, Div and Rem registered.
// These are the operators every lane type supports.
func ArithmeticTable[T Lanes, N LaneCount]() *OpTable[T, N] {
	t := NewOpTable[T, N]()
	registerArithmetic(t)
	return t
}

// IntegerTable returns a table with all ten operators registered.
func IntegerTable[T Integers, N LaneCount]() *OpTable[T, N] {
	t := NewOpTable[T, N]()
	registerArithmetic(t)
	t.mustRegister(KindBitAnd, And[T, N], AndLane[T])
	t.mustRegister(KindBitOr, Or[T, N], OrLane[T])
	t.mustRegister(KindBitXor, Xor[T, N], XorLane[T])
	t.mustRegister(KindShl, Shl[T, N], ShlLane[T])
	t.mustRegister(KindShr, Shr[T, N], ShrLane[T])
	return t
}

func registerArithmetic[T Lanes, N LaneCount](t *OpTable[T, N]) {
	t.mustRegister(KindAdd, Add[T, N], AddLane[T])
	t.mustRegister(KindSub, Sub[T, N], SubLane[T])
	t.mustRegister(KindMul, Mul[T, N], MulLane[T])
	t.mustRegister(KindDiv, Div[T, N], DivLane[T])
	t.mustRegister(KindRem, Rem[T, N], RemLane[T])
}

// mustRegister is for the built-in tables, where a failure is a programming error.
func (t *OpTable[T, N]) mustRegister(kind Kind, vop VectorOp[T, N], sop LaneOp[T]) {
	if err := t.Register(kind, vop, sop); err != nil {
		panic(err)
	}
}

func laneName[N LaneCount]() string {
	var n N
	return n.Name()
}
