// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// hlslKeywords holds HLSL reserved words plus the built-in function
// and type names generated code relies on. Declared identifiers may
// not use any of them.
var hlslKeywords = map[string]struct{}{
	// Basic and vector types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "dword": {}, "half": {},
	"float": {}, "double": {},
	"bool2": {}, "bool3": {}, "bool4": {},
	"int2": {}, "int3": {}, "int4": {},
	"uint2": {}, "uint3": {}, "uint4": {},
	"float2": {}, "float3": {}, "float4": {},
	"float2x2": {}, "float3x3": {}, "float4x4": {},

	// Object types
	"Texture1D": {}, "Texture2D": {}, "Texture3D": {}, "TextureCube": {},
	"Texture2DArray": {}, "Texture2DMS": {}, "SamplerState": {},
	"SamplerComparisonState": {}, "Buffer": {}, "ByteAddressBuffer": {},
	"StructuredBuffer": {}, "RWTexture2D": {}, "RWBuffer": {},
	"RWStructuredBuffer": {}, "RWByteAddressBuffer": {},
	"AppendStructuredBuffer": {}, "ConsumeStructuredBuffer": {},

	// Storage and modifier keywords
	"cbuffer": {}, "tbuffer": {}, "register": {}, "packoffset": {},
	"extern": {}, "precise": {}, "shared": {}, "groupshared": {},
	"static": {}, "uniform": {}, "volatile": {}, "const": {},
	"row_major": {}, "column_major": {}, "snorm": {}, "unorm": {},
	"in": {}, "out": {}, "inout": {}, "inline": {},
	"nointerpolation": {}, "linear": {}, "centroid": {}, "noperspective": {},
	"sample": {}, "globallycoherent": {},

	// Control flow
	"break": {}, "continue": {}, "discard": {}, "do": {}, "for": {},
	"if": {}, "else": {}, "switch": {}, "case": {}, "default": {},
	"while": {}, "return": {}, "true": {}, "false": {},
	"struct": {}, "typedef": {}, "namespace": {}, "interface": {},
	"class": {}, "template": {}, "this": {},

	// Built-in functions generated code calls
	"saturate": {}, "lerp": {}, "frac": {}, "rsqrt": {}, "atan2": {},
	"ddx": {}, "ddy": {}, "f32tof16": {}, "f16tof32": {},
	"asuint": {}, "asint": {}, "asfloat": {}, "main": {},
}

// isReserved reports whether name may not be used as a declared
// identifier in generated HLSL.
func isReserved(name string) bool {
	_, ok := hlslKeywords[name]
	return ok
}
