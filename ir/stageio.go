package ir

// IODirection tells whether a stage interface slot is consumed or
// produced by the entry point.
type IODirection uint8

const (
	DirIn IODirection = iota
	DirOut
)

// String returns "in" or "out".
func (d IODirection) String() string {
	if d == DirOut {
		return "out"
	}
	return "in"
}

// SystemValue identifies a pipeline-provided or pipeline-consumed
// value. SysNone marks a linked slot matched by location between
// stages instead.
type SystemValue uint8

const (
	// SysNone marks a linked slot.
	SysNone SystemValue = iota

	// SysPosition is the clip-space position, a vertex output.
	SysPosition

	// SysFragCoord is the window-space fragment coordinate, a
	// fragment input. Its W component follows the portable
	// convention (reciprocal of clip-space W).
	SysFragCoord

	// SysVertexIndex is the vertex index, a vertex input.
	SysVertexIndex

	// SysInstanceIndex is the instance index, a vertex input.
	SysInstanceIndex

	// SysFragDepth is the explicit fragment depth, a fragment output.
	SysFragDepth

	// SysGlobalInvocationID is the global invocation coordinate, a
	// compute input.
	SysGlobalInvocationID

	numSystemValues
)

// String returns the system value name as used in manifests.
func (v SystemValue) String() string {
	switch v {
	case SysNone:
		return "none"
	case SysPosition:
		return "position"
	case SysFragCoord:
		return "frag_coord"
	case SysVertexIndex:
		return "vertex_index"
	case SysInstanceIndex:
		return "instance_index"
	case SysFragDepth:
		return "frag_depth"
	case SysGlobalInvocationID:
		return "global_invocation_id"
	default:
		return "unknown"
	}
}

// ParseSystemValue maps a manifest system value name to its value.
func ParseSystemValue(name string) (SystemValue, error) {
	for v := SysPosition; v < numSystemValues; v++ {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, NewError(ErrInvalidShader, "unknown system value \""+name+"\"")
}

// systemValueType is the required declared type per system value.
var systemValueType = [numSystemValues]Type{
	SysPosition:           Float4,
	SysFragCoord:          Float4,
	SysVertexIndex:        Uint,
	SysInstanceIndex:      Uint,
	SysFragDepth:          Float,
	SysGlobalInvocationID: Uint3,
}

// Type returns the type a slot carrying this system value must declare.
func (v SystemValue) Type() Type {
	if v == SysNone || v >= numSystemValues {
		return Type{}
	}
	return systemValueType[v]
}

// Placement returns the stage and direction the system value is valid
// in.
func (v SystemValue) Placement() (Stage, IODirection) {
	switch v {
	case SysPosition:
		return StageVertex, DirOut
	case SysFragCoord:
		return StageFragment, DirIn
	case SysVertexIndex, SysInstanceIndex:
		return StageVertex, DirIn
	case SysFragDepth:
		return StageFragment, DirOut
	case SysGlobalInvocationID:
		return StageCompute, DirIn
	default:
		return StageVertex, DirIn
	}
}

// StageIO declares one slot of the stage interface.
type StageIO struct {
	// Name is the identifier the body reads or writes.
	Name string

	// Type is the slot's abstract type. Slots carrying a system value
	// must declare that value's fixed type.
	Type Type

	// Dir is the slot direction.
	Dir IODirection

	// Location is the link coordinate for linked slots. Locations are
	// unique per direction. Ignored for system value slots.
	Location uint32

	// System marks the slot as pipeline-provided or pipeline-consumed.
	// SysNone means the slot links between stages by location.
	System SystemValue
}

// Linked reports whether the slot links by location.
func (io StageIO) Linked() bool {
	return io.System == SysNone
}

// Flat reports whether the slot needs a flat (non-interpolated)
// qualifier in the given stage. Integer-kind slots never interpolate,
// and every dialect hangs the qualifier on the fragment-side input;
// vertex attributes and outputs carry nothing.
func (io StageIO) Flat(stage Stage) bool {
	return io.Linked() && stage == StageFragment && io.Dir == DirIn &&
		io.Type.Kind != ScalarFloat
}
