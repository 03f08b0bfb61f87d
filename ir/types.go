package ir

import "fmt"

// ScalarKind represents the scalar component kinds shared by every
// dialect.
type ScalarKind uint8

const (
	ScalarFloat ScalarKind = iota
	ScalarInt
	ScalarUint
	ScalarBool

	numScalarKinds
)

// String returns the abstract spelling of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "float"
	case ScalarInt:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Type is an abstract scalar or vector type. Every dialect can spell
// every valid Type; bodies obtain the spelling through Vocab.Spell.
type Type struct {
	// Kind is the component kind.
	Kind ScalarKind

	// Count is the component count, 1 through 4. 1 means scalar.
	Count uint8
}

// Abstract type shorthands.
var (
	Float  = Type{ScalarFloat, 1}
	Float2 = Type{ScalarFloat, 2}
	Float3 = Type{ScalarFloat, 3}
	Float4 = Type{ScalarFloat, 4}
	Int    = Type{ScalarInt, 1}
	Int2   = Type{ScalarInt, 2}
	Int3   = Type{ScalarInt, 3}
	Int4   = Type{ScalarInt, 4}
	Uint   = Type{ScalarUint, 1}
	Uint2  = Type{ScalarUint, 2}
	Uint3  = Type{ScalarUint, 3}
	Uint4  = Type{ScalarUint, 4}
	Bool   = Type{ScalarBool, 1}
	Bool2  = Type{ScalarBool, 2}
	Bool3  = Type{ScalarBool, 3}
	Bool4  = Type{ScalarBool, 4}
)

// IsValid reports whether t is a representable abstract type.
func (t Type) IsValid() bool {
	return t.Kind < numScalarKinds && t.Count >= 1 && t.Count <= 4
}

// String returns the abstract spelling, e.g. "float3" or "uint".
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("type(%d,%d)", t.Kind, t.Count)
	}
	if t.Count == 1 {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s%d", t.Kind, t.Count)
}

// Size returns the byte size of one value in block storage. All
// component kinds occupy four bytes.
func (t Type) Size() uint32 {
	return 4 * uint32(t.Count)
}

// Align returns the portable block alignment: scalars align to 4,
// two-component vectors to 8, wider vectors to 16.
func (t Type) Align() uint32 {
	switch t.Count {
	case 1:
		return 4
	case 2:
		return 8
	default:
		return 16
	}
}

// ParseType maps an abstract spelling such as "float3" back to a Type.
func ParseType(s string) (Type, error) {
	kinds := []ScalarKind{ScalarFloat, ScalarInt, ScalarUint, ScalarBool}
	for _, k := range kinds {
		name := k.String()
		if s == name {
			return Type{k, 1}, nil
		}
		if len(s) == len(name)+1 && s[:len(name)] == name {
			switch s[len(name)] {
			case '2':
				return Type{k, 2}, nil
			case '3':
				return Type{k, 3}, nil
			case '4':
				return Type{k, 4}, nil
			}
		}
	}
	return Type{}, NewError(ErrInvalidShader, fmt.Sprintf("unknown type %q", s))
}
