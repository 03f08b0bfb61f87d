package ir

import "fmt"

// Intrinsic identifies one operation of the abstract intrinsic
// vocabulary. The set is closed: every backend carries a spelling table
// keyed by these values, and a request outside a backend's table
// surfaces ErrUnmappedVocabulary rather than leaking a foreign name
// into generated text.
type Intrinsic uint8

const (
	// Saturate clamps to [0, 1].
	Saturate Intrinsic = iota
	// Lerp is linear interpolation lerp(a, b, t).
	Lerp
	// Frac is the fractional part.
	Frac
	// Rsqrt is the reciprocal square root.
	Rsqrt
	// Atan2 is the two-argument arctangent atan2(y, x).
	Atan2
	// Ddx is the screen-space X derivative (fragment stage only).
	Ddx
	// Ddy is the screen-space Y derivative (fragment stage only).
	Ddy
	// PackHalf2 packs a float2 into a uint as two half floats.
	PackHalf2
	// UnpackHalf2 unpacks a uint holding two half floats into a float2.
	UnpackHalf2
	// FloatBitsToUint reinterprets float bits as uint.
	FloatBitsToUint
	// FloatBitsToInt reinterprets float bits as int.
	FloatBitsToInt
	// UintBitsToFloat reinterprets uint bits as float.
	UintBitsToFloat
	// IntBitsToFloat reinterprets int bits as float.
	IntBitsToFloat

	numIntrinsics
)

var intrinsicNames = [numIntrinsics]string{
	Saturate:        "saturate",
	Lerp:            "lerp",
	Frac:            "frac",
	Rsqrt:           "rsqrt",
	Atan2:           "atan2",
	Ddx:             "ddx",
	Ddy:             "ddy",
	PackHalf2:       "packHalf2",
	UnpackHalf2:     "unpackHalf2",
	FloatBitsToUint: "floatBitsToUint",
	FloatBitsToInt:  "floatBitsToInt",
	UintBitsToFloat: "uintBitsToFloat",
	IntBitsToFloat:  "intBitsToFloat",
}

var intrinsicArity = [numIntrinsics]int{
	Saturate:        1,
	Lerp:            3,
	Frac:            1,
	Rsqrt:           1,
	Atan2:           2,
	Ddx:             1,
	Ddy:             1,
	PackHalf2:       1,
	UnpackHalf2:     1,
	FloatBitsToUint: 1,
	FloatBitsToInt:  1,
	UintBitsToFloat: 1,
	IntBitsToFloat:  1,
}

// String returns the abstract intrinsic name.
func (i Intrinsic) String() string {
	if i >= numIntrinsics {
		return fmt.Sprintf("intrinsic(%d)", uint8(i))
	}
	return intrinsicNames[i]
}

// Arity returns the argument count the intrinsic requires.
func (i Intrinsic) Arity() int {
	if i >= numIntrinsics {
		return 0
	}
	return intrinsicArity[i]
}

// IsValid reports whether i names a known intrinsic.
func (i Intrinsic) IsValid() bool {
	return i < numIntrinsics
}

// Intrinsics returns all intrinsics in declaration order.
func Intrinsics() []Intrinsic {
	out := make([]Intrinsic, numIntrinsics)
	for i := range out {
		out[i] = Intrinsic(i)
	}
	return out
}

// ParseIntrinsic maps an abstract intrinsic name back to its value.
func ParseIntrinsic(name string) (Intrinsic, error) {
	for i, n := range intrinsicNames {
		if n == name {
			return Intrinsic(i), nil
		}
	}
	return 0, NewError(ErrInvalidShader, fmt.Sprintf("unknown intrinsic %q", name))
}
