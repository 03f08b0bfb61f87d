// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// spellType returns the GLSL spelling of an abstract type.
func spellType(t ir.Type) (string, error) {
	if t.Count == 1 {
		switch t.Kind {
		case ir.ScalarFloat:
			return "float", nil
		case ir.ScalarInt:
			return "int", nil
		case ir.ScalarUint:
			return "uint", nil
		case ir.ScalarBool:
			return "bool", nil
		}
	} else {
		var prefix string
		switch t.Kind {
		case ir.ScalarFloat:
			prefix = "vec"
		case ir.ScalarInt:
			prefix = "ivec"
		case ir.ScalarUint:
			prefix = "uvec"
		case ir.ScalarBool:
			prefix = "bvec"
		}
		if prefix != "" {
			return fmt.Sprintf("%s%d", prefix, t.Count), nil
		}
	}
	return "", &ir.Error{
		Kind:    ir.ErrUnmappedVocabulary,
		Dialect: "glsl",
		Message: fmt.Sprintf("no spelling for type %s", t),
	}
}

// combinedType returns the combined texture-sampler type for a texel
// kind, e.g. sampler2D for float texels.
func combinedType(texel ir.Type) (string, error) {
	switch texel.Kind {
	case ir.ScalarFloat:
		return "sampler2D", nil
	case ir.ScalarInt:
		return "isampler2D", nil
	case ir.ScalarUint:
		return "usampler2D", nil
	}
	return "", &ir.Error{
		Kind:    ir.ErrUnmappedVocabulary,
		Dialect: "glsl",
		Message: fmt.Sprintf("no combined sampler type for %s texels", texel),
	}
}

// textureType returns the standalone texture type for a texel kind.
func textureType(texel ir.Type) (string, error) {
	switch texel.Kind {
	case ir.ScalarFloat:
		return "texture2D", nil
	case ir.ScalarInt:
		return "itexture2D", nil
	case ir.ScalarUint:
		return "utexture2D", nil
	}
	return "", &ir.Error{
		Kind:    ir.ErrUnmappedVocabulary,
		Dialect: "glsl",
		Message: fmt.Sprintf("no texture type for %s texels", texel),
	}
}
