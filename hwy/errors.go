package hwy

import "errors"

var (
	// ErrInvalidKind is returned for an operator kind outside the defined set.
	ErrInvalidKind = errors.New("hwy: invalid operator kind")

	// ErrMissingVectorOp is returned when an operator is registered without
	// its vector-vector implementation.
	ErrMissingVectorOp = errors.New("hwy: missing vector operator")

	// ErrMissingLaneOp is returned when an operator is registered without
	// its same-type lane implementation.
	ErrMissingLaneOp = errors.New("hwy: missing lane operator")

	// ErrDuplicateKind is returned when a kind is registered twice in one table.
	ErrDuplicateKind = errors.New("hwy: operator kind already registered")

	// ErrNotRegistered is returned when a table has no operator for a kind.
	ErrNotRegistered = errors.New("hwy: operator kind not registered")
)
