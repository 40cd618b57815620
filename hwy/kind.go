package hwy

import (
	"fmt"
	"strings"
)

// Kind identifies one of the binary lane-wise operators.
type Kind uint8

const (
	// KindAdd is element-wise addition.
	KindAdd Kind = iota

	// KindSub is element-wise subtraction.
	KindSub

	// KindMul is element-wise multiplication.
	KindMul

	// KindDiv is element-wise division.
	KindDiv

	// KindRem is the element-wise remainder of truncated division.
	KindRem

	// KindBitAnd is element-wise bitwise AND (integers only).
	KindBitAnd

	// KindBitOr is element-wise bitwise OR (integers only).
	KindBitOr

	// KindBitXor is element-wise bitwise XOR (integers only).
	KindBitXor

	// KindShl is element-wise left shift (integers only).
	KindShl

	// KindShr is element-wise right shift (integers only).
	KindShr

	numKinds
)

// String returns a human-readable name for the operator kind.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMul:
		return "mul"
	case KindDiv:
		return "div"
	case KindRem:
		return "rem"
	case KindBitAnd:
		return "bitand"
	case KindBitOr:
		return "bitor"
	case KindBitXor:
		return "bitxor"
	case KindShl:
		return "shl"
	case KindShr:
		return "shr"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// IntegerOnly reports whether the operator is only defined for integer lanes.
// Add, Sub, Mul, Div and Rem are defined for every lane type.
func (k Kind) IntegerOnly() bool {
	return k >= KindBitAnd && k < numKinds
}

// Kinds returns all operator kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := range numKinds {
		kinds = append(kinds, k)
	}
	return kinds
}

// kindAliases are the operator names used by the generated functions.
var kindAliases = map[string]Kind{
	"and": KindBitAnd,
	"or":  KindBitOr,
	"xor": KindBitXor,
}

// ParseKind returns the kind whose String form equals s, ignoring case.
// The function names "and", "or" and "xor" are accepted for the bitwise kinds.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}
