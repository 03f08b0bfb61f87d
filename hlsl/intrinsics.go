// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// intrinsicSpellings maps abstract intrinsics to HLSL call renderers.
//
// The half-pair conversions have no single HLSL intrinsic and expand
// to f32tof16/f16tof32 compositions. The bit casts all collapse onto
// asuint/asint/asfloat; the abstract vocabulary keeps them apart so
// the narrower names of the other dialects stay expressible.
var intrinsicSpellings = map[ir.Intrinsic]func(args []string) string{
	ir.Saturate: func(a []string) string { return fmt.Sprintf("saturate(%s)", a[0]) },
	ir.Lerp:     func(a []string) string { return fmt.Sprintf("lerp(%s, %s, %s)", a[0], a[1], a[2]) },
	ir.Frac:     func(a []string) string { return fmt.Sprintf("frac(%s)", a[0]) },
	ir.Rsqrt:    func(a []string) string { return fmt.Sprintf("rsqrt(%s)", a[0]) },
	ir.Atan2:    func(a []string) string { return fmt.Sprintf("atan2(%s, %s)", a[0], a[1]) },
	ir.Ddx:      func(a []string) string { return fmt.Sprintf("ddx(%s)", a[0]) },
	ir.Ddy:      func(a []string) string { return fmt.Sprintf("ddy(%s)", a[0]) },

	ir.PackHalf2: func(a []string) string {
		return fmt.Sprintf("(f32tof16((%s).x) | (f32tof16((%s).y) << 16u))", a[0], a[0])
	},
	ir.UnpackHalf2: func(a []string) string {
		return fmt.Sprintf("float2(f16tof32((%s) & 0xFFFFu), f16tof32((%s) >> 16u))", a[0], a[0])
	},

	ir.FloatBitsToUint: func(a []string) string { return fmt.Sprintf("asuint(%s)", a[0]) },
	ir.FloatBitsToInt:  func(a []string) string { return fmt.Sprintf("asint(%s)", a[0]) },
	ir.UintBitsToFloat: func(a []string) string { return fmt.Sprintf("asfloat(%s)", a[0]) },
	ir.IntBitsToFloat:  func(a []string) string { return fmt.Sprintf("asfloat(%s)", a[0]) },
}

func spellIntrinsic(i ir.Intrinsic, args []string) (string, error) {
	spell, ok := intrinsicSpellings[i]
	if !ok {
		return "", &ir.Error{
			Kind:    ir.ErrUnmappedVocabulary,
			Dialect: "hlsl",
			Entity:  i.String(),
			Message: "intrinsic has no HLSL spelling",
		}
	}
	return spell(args), nil
}
