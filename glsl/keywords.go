// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// glslKeywords holds GLSL reserved words plus the built-in function
// names generated code calls. Declared identifiers may not use any of
// them: bodies reference declarations by their plain names, so a
// collision cannot be escaped after the fact.
var glslKeywords = map[string]struct{}{
	// Basic types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},

	// Vector types
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},

	// Matrix types
	"mat2": {}, "mat3": {}, "mat4": {},

	// Opaque types
	"sampler": {}, "sampler2D": {}, "isampler2D": {}, "usampler2D": {},
	"texture2D": {}, "itexture2D": {}, "utexture2D": {},
	"image2D": {}, "sampler3D": {}, "samplerCube": {}, "sampler2DArray": {},

	// Storage and layout qualifiers
	"attribute": {}, "const": {}, "uniform": {}, "varying": {}, "buffer": {},
	"shared": {}, "coherent": {}, "volatile": {}, "restrict": {}, "readonly": {},
	"writeonly": {}, "layout": {}, "centroid": {}, "flat": {}, "smooth": {},
	"noperspective": {}, "patch": {}, "sample": {}, "invariant": {}, "precise": {},
	"in": {}, "out": {}, "inout": {}, "precision": {}, "highp": {}, "mediump": {},
	"lowp": {}, "subroutine": {},

	// Control flow
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {}, "switch": {},
	"case": {}, "default": {}, "if": {}, "else": {}, "discard": {}, "return": {},
	"true": {}, "false": {}, "struct": {},

	// Reserved for future use
	"common": {}, "partition": {}, "active": {}, "asm": {}, "class": {},
	"union": {}, "enum": {}, "typedef": {}, "template": {}, "this": {},
	"resource": {}, "goto": {}, "inline": {}, "noinline": {}, "public": {},
	"static": {}, "extern": {}, "external": {}, "interface": {}, "long": {},
	"short": {}, "half": {}, "fixed": {}, "unsigned": {}, "superp": {},
	"input": {}, "output": {}, "filter": {}, "sizeof": {}, "cast": {},
	"namespace": {}, "using": {},

	// Built-in functions generated code calls
	"texture": {}, "textureLod": {}, "textureGather": {}, "texelFetch": {},
	"mix": {}, "clamp": {}, "fract": {}, "inversesqrt": {}, "atan": {},
	"dFdx": {}, "dFdy": {}, "packHalf2x16": {}, "unpackHalf2x16": {},
	"floatBitsToUint": {}, "floatBitsToInt": {}, "uintBitsToFloat": {},
	"intBitsToFloat": {}, "main": {},
}

// isReserved reports whether name may not be used as a declared
// identifier in generated GLSL. The gl_ prefix is reserved wholesale.
func isReserved(name string) bool {
	if strings.HasPrefix(name, "gl_") {
		return true
	}
	_, ok := glslKeywords[name]
	return ok
}
