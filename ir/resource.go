package ir

// ResourceKind classifies a declared resource.
type ResourceKind uint8

const (
	// KindCombined is a texture and its sampler declared as one
	// logical object. Dialects that keep the two split receive a
	// synthesized texture/sampler pair sharing the combined
	// resource's binding coordinates.
	KindCombined ResourceKind = iota

	// KindTexture is a standalone sampled texture.
	KindTexture

	// KindSampler is a standalone sampler state.
	KindSampler

	// KindFetch is a texture accessed only by integer-coordinate
	// texel fetch. Dialects whose fetch path needs no sampler declare
	// a bare texture; the combined dialect declares it as a combined
	// object, so at runtime the slot must still be fed a sampler
	// there even though filtering is never applied.
	KindFetch

	numResourceKinds
)

// String returns the kind name as used in manifests.
func (k ResourceKind) String() string {
	switch k {
	case KindCombined:
		return "combined"
	case KindTexture:
		return "texture"
	case KindSampler:
		return "sampler"
	case KindFetch:
		return "fetch"
	default:
		return "unknown"
	}
}

// ParseResourceKind maps a manifest kind name to its ResourceKind.
func ParseResourceKind(name string) (ResourceKind, error) {
	switch name {
	case "combined":
		return KindCombined, nil
	case "texture":
		return KindTexture, nil
	case "sampler":
		return KindSampler, nil
	case "fetch":
		return KindFetch, nil
	}
	return 0, NewError(ErrInvalidShader, "unknown resource kind \""+name+"\"")
}

// SetBinding is a (set, binding) coordinate pair.
type SetBinding struct {
	Set     uint32
	Binding uint32
}

// RegisterType is the register class letter of a register coordinate.
type RegisterType uint8

const (
	// RegisterB is the constant buffer register class.
	RegisterB RegisterType = iota
	// RegisterT is the shader resource (texture) register class.
	RegisterT
	// RegisterS is the sampler register class.
	RegisterS
	// RegisterU is the unordered access register class.
	RegisterU
)

// String returns the register class letter.
func (t RegisterType) String() string {
	switch t {
	case RegisterB:
		return "b"
	case RegisterT:
		return "t"
	case RegisterS:
		return "s"
	case RegisterU:
		return "u"
	default:
		return "?"
	}
}

// ParseRegisterType maps a manifest register class letter to its type.
func ParseRegisterType(name string) (RegisterType, error) {
	switch name {
	case "b":
		return RegisterB, nil
	case "t":
		return RegisterT, nil
	case "s":
		return RegisterS, nil
	case "u":
		return RegisterU, nil
	}
	return 0, NewError(ErrInvalidShader, "unknown register class \""+name+"\" (want b, t, s or u)")
}

// Register is a (register class, index, space) coordinate triple.
type Register struct {
	Type  RegisterType
	Index uint32
	Space uint32
}

// Slot is a per-class argument slot index. The class is implied by the
// declaration it binds: texture slots for textures, sampler slots for
// samplers, buffer slots for blocks.
type Slot struct {
	Index uint32
}

// Resource declares one texture or sampler with its per-dialect
// binding coordinates. Coordinates for every dialect a shader will be
// rendered to must be supplied up front; rendering fails with
// ErrMissingBinding otherwise.
type Resource struct {
	// Name is the logical name the body uses in vocabulary calls.
	Name string

	// Kind classifies the resource.
	Kind ResourceKind

	// Texel is the sampled texel type. Ignored for KindSampler.
	Texel Type

	// SetBinding holds the (set, binding) coordinates.
	SetBinding *SetBinding

	// Register holds the (register, space) coordinates. A combined
	// resource supplies its texture register; the synthesized sampler
	// reuses the index and space in the sampler class.
	Register *Register

	// Slot holds the argument slot index. A combined resource's
	// synthesized pair reuses the index in both the texture and
	// sampler classes.
	Slot *Slot
}

// SplitTextureName returns the identifier of the texture half when a
// combined resource is decomposed for a split-model dialect. Every
// declaration and call site derives the name through this function,
// never by concatenating inline.
func SplitTextureName(name string) string {
	return "texture_" + name
}

// SplitSamplerName returns the identifier of the sampler half when a
// combined resource is decomposed for a split-model dialect.
func SplitSamplerName(name string) string {
	return "sampler_" + name
}
