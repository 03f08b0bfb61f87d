// Package dialect enumerates the shading dialects shadergen can emit
// and records the per-dialect facts the rest of the module consults.
//
// The enumeration is closed: adding a dialect means adding a Descriptor
// row here and a backend package, never editing call sites. Everything
// that differs between dialects in a way that changes generated text is
// a field on Descriptor, so behavior divergence stays declarative and
// greppable in one place.
package dialect

import "fmt"

// Dialect identifies one target shading language family.
type Dialect uint8

const (
	// GLSL is the Vulkan-flavored GLSL dialect (explicit set/binding
	// decorations, combined texture-samplers, gl_* builtins).
	GLSL Dialect = iota
	// HLSL is the D3D-flavored dialect (register/space bindings,
	// split textures and samplers, SV_* semantics).
	HLSL
	// MSL is the Metal-flavored dialect (argument slot bindings,
	// split textures and samplers, [[attribute]] syntax).
	MSL

	numDialects
)

// All returns every supported dialect in declaration order.
// The order is stable and used by multi-target rendering.
func All() []Dialect {
	return []Dialect{GLSL, HLSL, MSL}
}

// IsValid reports whether d names a supported dialect.
func (d Dialect) IsValid() bool {
	return d < numDialects
}

func (d Dialect) String() string {
	switch d {
	case GLSL:
		return "glsl"
	case HLSL:
		return "hlsl"
	case MSL:
		return "msl"
	default:
		return fmt.Sprintf("dialect(%d)", uint8(d))
	}
}

// FileExt returns the conventional source file extension, without dot.
func (d Dialect) FileExt() string {
	switch d {
	case HLSL:
		return "hlsl"
	case MSL:
		return "metal"
	default:
		return "glsl"
	}
}

// Parse maps a user-facing dialect name (as accepted on command lines
// and in manifests) to its Dialect value.
func Parse(name string) (Dialect, error) {
	switch name {
	case "glsl":
		return GLSL, nil
	case "hlsl":
		return HLSL, nil
	case "msl", "metal":
		return MSL, nil
	}
	return 0, fmt.Errorf("unknown dialect %q (want glsl, hlsl or msl)", name)
}

// BindingModel describes how a dialect spells resource binding
// coordinates.
type BindingModel uint8

const (
	// BindSetBinding is the (set, binding) pair model.
	BindSetBinding BindingModel = iota
	// BindRegisterSpace is the (register type, index, space) model.
	BindRegisterSpace
	// BindArgumentSlot is the per-class argument slot model
	// ([[texture(n)]], [[sampler(n)]], [[buffer(n)]]).
	BindArgumentSlot
)

// Descriptor is the static fact row for one dialect. Rows are plain
// data: resolving a descriptor never allocates and never fails for a
// valid Dialect.
type Descriptor struct {
	// CombinedTextureSampler reports whether the dialect declares a
	// sampled texture and its sampler as one object. When false, a
	// combined resource is decomposed into a texture/sampler pair.
	CombinedTextureSampler bool

	// Bindings selects the binding coordinate model.
	Bindings BindingModel

	// FetchUsesSampler reports whether texel fetch (unfiltered,
	// integer-coordinate loads) still consumes a sampler binding.
	FetchUsesSampler bool

	// FragCoordWInverse reports whether the dialect's native fragment
	// coordinate carries the reciprocal of the portable W convention
	// and therefore needs a fix-up on entry.
	FragCoordWInverse bool

	// ScreenYDown reports whether the dialect's clip-space Y axis
	// points the opposite way from the portable convention, requiring
	// a flip of the position output after the body runs.
	ScreenYDown bool

	// PushOffsetsGlobal reports whether push-constant member offsets
	// are emitted as authored (global across the whole push range) or
	// rebased so the block's first usable byte is offset zero.
	PushOffsetsGlobal bool
}

var descriptors = [numDialects]Descriptor{
	GLSL: {
		CombinedTextureSampler: true,
		Bindings:               BindSetBinding,
		FetchUsesSampler:       true,
		FragCoordWInverse:      false,
		ScreenYDown:            true,
		PushOffsetsGlobal:      true,
	},
	HLSL: {
		CombinedTextureSampler: false,
		Bindings:               BindRegisterSpace,
		FetchUsesSampler:       false,
		FragCoordWInverse:      true,
		ScreenYDown:            false,
		PushOffsetsGlobal:      false,
	},
	MSL: {
		CombinedTextureSampler: false,
		Bindings:               BindArgumentSlot,
		FetchUsesSampler:       false,
		FragCoordWInverse:      false,
		ScreenYDown:            false,
		PushOffsetsGlobal:      false,
	},
}

// Descriptor returns the fact row for d. It panics if d is not a
// valid dialect; callers obtain Dialect values from this package or
// from Parse, both of which only produce valid ones.
func (d Dialect) Descriptor() Descriptor {
	if !d.IsValid() {
		panic(fmt.Sprintf("dialect: no descriptor for %s", d))
	}
	return descriptors[d]
}
