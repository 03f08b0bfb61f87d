// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// intrinsicSpellings maps abstract intrinsics to MSL call renderers.
//
// There is no native half-pair packer; a half2 conversion reinterpreted
// through as_type covers it. The bit casts go through as_type as well,
// instantiated at the scalar types the abstract operations are defined
// on.
var intrinsicSpellings = map[ir.Intrinsic]func(args []string) string{
	ir.Saturate: func(a []string) string { return fmt.Sprintf("saturate(%s)", a[0]) },
	ir.Lerp:     func(a []string) string { return fmt.Sprintf("mix(%s, %s, %s)", a[0], a[1], a[2]) },
	ir.Frac:     func(a []string) string { return fmt.Sprintf("fract(%s)", a[0]) },
	ir.Rsqrt:    func(a []string) string { return fmt.Sprintf("rsqrt(%s)", a[0]) },
	ir.Atan2:    func(a []string) string { return fmt.Sprintf("atan2(%s, %s)", a[0], a[1]) },
	ir.Ddx:      func(a []string) string { return fmt.Sprintf("dfdx(%s)", a[0]) },
	ir.Ddy:      func(a []string) string { return fmt.Sprintf("dfdy(%s)", a[0]) },

	ir.PackHalf2:   func(a []string) string { return fmt.Sprintf("as_type<uint>(half2(%s))", a[0]) },
	ir.UnpackHalf2: func(a []string) string { return fmt.Sprintf("float2(as_type<half2>(%s))", a[0]) },

	ir.FloatBitsToUint: func(a []string) string { return fmt.Sprintf("as_type<uint>(%s)", a[0]) },
	ir.FloatBitsToInt:  func(a []string) string { return fmt.Sprintf("as_type<int>(%s)", a[0]) },
	ir.UintBitsToFloat: func(a []string) string { return fmt.Sprintf("as_type<float>(%s)", a[0]) },
	ir.IntBitsToFloat:  func(a []string) string { return fmt.Sprintf("as_type<float>(%s)", a[0]) },
}

func spellIntrinsic(i ir.Intrinsic, args []string) (string, error) {
	spell, ok := intrinsicSpellings[i]
	if !ok {
		return "", &ir.Error{
			Kind:    ir.ErrUnmappedVocabulary,
			Dialect: "msl",
			Entity:  i.String(),
			Message: "intrinsic has no MSL spelling",
		}
	}
	return spell(args), nil
}
