package ir

// BlockMember declares one member of a constant block.
type BlockMember struct {
	// Name is the member name the body uses in Vocab.Uniform calls.
	// Member names share one namespace across all blocks of a shader.
	Name string

	// Type is the member's abstract type.
	Type Type

	// Count is the array element count. Zero means the member is not
	// an array. Array members must use four-component element types
	// so every dialect sees the same 16-byte element stride.
	Count uint32

	// Offset optionally pins the member at an explicit byte offset.
	// When nil the layout resolver places the member. Explicit
	// offsets must respect the portable alignment rules and may only
	// grow the layout, never reorder it.
	Offset *uint32
}

// Block declares a uniform constant block with per-dialect binding
// coordinates.
type Block struct {
	// Name is the block name. It names the block type in generated
	// text; members are accessed through Vocab.Uniform by member name.
	Name string

	// Members are laid out by the portable layout rules in order.
	Members []BlockMember

	// Capacity optionally bounds the block's byte size. Zero means
	// unbounded. Layout resolution fails with ErrLayoutOverflow when
	// the resolved span exceeds a non-zero capacity.
	Capacity uint32

	// SetBinding holds the (set, binding) coordinates.
	SetBinding *SetBinding

	// Register holds the constant buffer register coordinates.
	Register *Register

	// Slot holds the buffer argument slot.
	Slot *Slot
}

// PushBlock declares the push-constant range visible to one entry
// point. The dialect with native push constants needs no coordinates;
// the others bind the range like a small constant buffer.
type PushBlock struct {
	// Name is the block name.
	Name string

	// Members are laid out starting at BaseOffset. Authored offsets
	// are global across the whole push-constant area; dialects that
	// address the range block-locally have them rebased at render
	// time.
	Members []BlockMember

	// BaseOffset is the first byte of this stage's range within the
	// push-constant area. Must be a multiple of four.
	BaseOffset uint32

	// Capacity optionally bounds the range's byte size (measured from
	// BaseOffset). Zero means unbounded.
	Capacity uint32

	// Register holds the constant buffer register the range is bound
	// to on the register-space dialect.
	Register *Register

	// Slot holds the buffer argument slot on the slot dialect.
	Slot *Slot
}
