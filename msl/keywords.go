// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

// mslKeywords holds C++ keywords, Metal address spaces and types, and
// the metal namespace functions generated code calls (the prelude opens
// the namespace, so bare names bind to it). Declared identifiers may
// not use any of them.
var mslKeywords = map[string]struct{}{
	// C++ keywords
	"alignas": {}, "alignof": {}, "auto": {}, "bool": {}, "break": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"constexpr": {}, "continue": {}, "decltype": {}, "default": {},
	"delete": {}, "do": {}, "double": {}, "else": {}, "enum": {},
	"explicit": {}, "extern": {}, "false": {}, "float": {}, "for": {},
	"friend": {}, "goto": {}, "if": {}, "inline": {}, "int": {},
	"long": {}, "mutable": {}, "namespace": {}, "new": {}, "noexcept": {},
	"nullptr": {}, "operator": {}, "private": {}, "protected": {},
	"public": {}, "register": {}, "return": {}, "short": {}, "signed": {},
	"sizeof": {}, "static": {}, "struct": {}, "switch": {}, "template": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typedef": {},
	"typeid": {}, "typename": {}, "union": {}, "unsigned": {}, "using": {},
	"virtual": {}, "void": {}, "volatile": {}, "while": {},

	// Metal stage and address space keywords
	"vertex": {}, "fragment": {}, "kernel": {},
	"constant": {}, "device": {}, "threadgroup": {}, "thread": {},
	"ray_data": {}, "object_data": {},

	// Metal types
	"half": {}, "uchar": {}, "ushort": {}, "uint": {}, "ulong": {},
	"size_t": {}, "ptrdiff_t": {},
	"bool2": {}, "bool3": {}, "bool4": {},
	"int2": {}, "int3": {}, "int4": {},
	"uint2": {}, "uint3": {}, "uint4": {},
	"float2": {}, "float3": {}, "float4": {},
	"half2": {}, "half3": {}, "half4": {},
	"float2x2": {}, "float3x3": {}, "float4x4": {},
	"packed_float2": {}, "packed_float3": {}, "packed_float4": {},
	"packed_int2": {}, "packed_int3": {}, "packed_int4": {},
	"packed_uint2": {}, "packed_uint3": {}, "packed_uint4": {},
	"sampler": {}, "texture1d": {}, "texture2d": {}, "texture3d": {},
	"texturecube": {}, "texture2d_array": {}, "depth2d": {},
	"metal": {}, "simd": {}, "access": {}, "level": {},

	// Built-in functions generated code calls
	"saturate": {}, "mix": {}, "fract": {}, "rsqrt": {}, "atan2": {},
	"dfdx": {}, "dfdy": {}, "as_type": {}, "main": {},
}

// isReserved reports whether name may not be used as a declared
// identifier in generated MSL.
func isReserved(name string) bool {
	_, ok := mslKeywords[name]
	return ok
}
