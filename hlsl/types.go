// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// spellType returns the HLSL spelling of an abstract type.
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
			Dialect: "hlsl",
			Message: fmt.Sprintf("no spelling for type %s", t),
		}
	}
	if t.Count == 1 {
		return base, nil
	}
	return fmt.Sprintf("%s%d", base, t.Count), nil
}

// textureType returns the Texture2D declaration type carrying the
// texel type, e.g. "Texture2D<float4>".
func textureType(texel ir.Type) (string, error) {
	spell, err := spellType(texel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Texture2D<%s>", spell), nil
}

// semantic returns the parameter semantic for a stage interface slot.
func semantic(stage ir.Stage, io ir.StageIO) string {
	if io.Linked() {
		if stage == ir.StageFragment && io.Dir == ir.DirOut {
			return fmt.Sprintf("SV_Target%d", io.Location)
		}
		return fmt.Sprintf("TEXCOORD%d", io.Location)
	}
	switch io.System {
	case ir.SysPosition, ir.SysFragCoord:
		return "SV_Position"
	case ir.SysVertexIndex:
		return "SV_VertexID"
	case ir.SysInstanceIndex:
		return "SV_InstanceID"
	case ir.SysFragDepth:
		return "SV_Depth"
	case ir.SysGlobalInvocationID:
		return "SV_DispatchThreadID"
	default:
		return ""
	}
}
