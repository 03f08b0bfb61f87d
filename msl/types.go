// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// spellType returns the MSL spelling of an abstract type.
func spellType(t ir.Type) (string, error) {
	var base string
	switch t.Kind {
	case ir.ScalarFloat:
		base = "float"
	case ir.ScalarInt:
		base = "int"
	case ir.ScalarUint:
		base = "uint"
	case ir.ScalarBool:
		base = "bool"
	default:
		return "", &ir.Error{
			Kind:    ir.ErrUnmappedVocabulary,
			Dialect: "msl",
			Message: fmt.Sprintf("no spelling for type %s", t),
		}
	}
	if t.Count == 1 {
		return base, nil
	}
	return fmt.Sprintf("%s%d", base, t.Count), nil
}

// memberType returns the spelling used inside block structs. Two- and
// three-component vectors take their packed forms: the natural float3
// occupies 16 bytes here, which would break the portable rule that a
// scalar may pack into a vec3's trailing bytes.
func memberType(t ir.Type) (string, error) {
	spell, err := spellType(t)
	if err != nil {
		return "", err
	}
	if t.Count == 2 || t.Count == 3 {
		return "packed_" + spell, nil
	}
	return spell, nil
}

// textureType returns the texture2d parameter type carrying the texel
// scalar kind, e.g. "texture2d<float>".
func textureType(texel ir.Type) (string, error) {
	switch texel.Kind {
	case ir.ScalarFloat:
		return "texture2d<float>", nil
	case ir.ScalarInt:
		return "texture2d<int>", nil
	case ir.ScalarUint:
		return "texture2d<uint>", nil
	}
	return "", &ir.Error{
		Kind:    ir.ErrUnmappedVocabulary,
		Dialect: "msl",
		Message: fmt.Sprintf("no texture type for %s texels", texel),
	}
}

// ioAttribute returns the [[...]] attribute for a stage interface slot.
// Linked vertex inputs are pipeline attributes, varyings link by
// [[user(locnN)]] on both sides, fragment outputs are color
// attachments. Integer varyings carry flat interpolation on the
// fragment side.
func ioAttribute(stage ir.Stage, io ir.StageIO) string {
	if io.Linked() {
		switch {
		case stage == ir.StageVertex && io.Dir == ir.DirIn:
			return fmt.Sprintf("[[attribute(%d)]]", io.Location)
		case stage == ir.StageFragment && io.Dir == ir.DirOut:
			return fmt.Sprintf("[[color(%d)]]", io.Location)
		case io.Flat(stage):
			return fmt.Sprintf("[[user(locn%d), flat]]", io.Location)
		default:
			return fmt.Sprintf("[[user(locn%d)]]", io.Location)
		}
	}
	switch io.System {
	case ir.SysPosition, ir.SysFragCoord:
		return "[[position]]"
	case ir.SysVertexIndex:
		return "[[vertex_id]]"
	case ir.SysInstanceIndex:
		return "[[instance_id]]"
	case ir.SysFragDepth:
		return "[[depth(any)]]"
	case ir.SysGlobalInvocationID:
		return "[[thread_position_in_grid]]"
	default:
		return ""
	}
}
