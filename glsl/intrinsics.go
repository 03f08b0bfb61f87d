// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// intrinsicSpellings maps abstract intrinsics to GLSL call renderers.
// Arity is checked before dispatch, so renderers index args freely.
var intrinsicSpellings = map[ir.Intrinsic]func(args []string) string{
	ir.Saturate: func(a []string) string { return fmt.Sprintf("clamp(%s, 0.0, 1.0)", a[0]) },
	ir.Lerp:     func(a []string) string { return fmt.Sprintf("mix(%s, %s, %s)", a[0], a[1], a[2]) },
	ir.Frac:     func(a []string) string { return fmt.Sprintf("fract(%s)", a[0]) },
	ir.Rsqrt:    func(a []string) string { return fmt.Sprintf("inversesqrt(%s)", a[0]) },
	ir.Atan2:    func(a []string) string { return fmt.Sprintf("atan(%s, %s)", a[0], a[1]) },
	ir.Ddx:      func(a []string) string { return fmt.Sprintf("dFdx(%s)", a[0]) },
	ir.Ddy:      func(a []string) string { return fmt.Sprintf("dFdy(%s)", a[0]) },

	ir.PackHalf2:   func(a []string) string { return fmt.Sprintf("packHalf2x16(%s)", a[0]) },
	ir.UnpackHalf2: func(a []string) string { return fmt.Sprintf("unpackHalf2x16(%s)", a[0]) },

	ir.FloatBitsToUint: func(a []string) string { return fmt.Sprintf("floatBitsToUint(%s)", a[0]) },
	ir.FloatBitsToInt:  func(a []string) string { return fmt.Sprintf("floatBitsToInt(%s)", a[0]) },
	ir.UintBitsToFloat: func(a []string) string { return fmt.Sprintf("uintBitsToFloat(%s)", a[0]) },
	ir.IntBitsToFloat:  func(a []string) string { return fmt.Sprintf("intBitsToFloat(%s)", a[0]) },
}

func spellIntrinsic(i ir.Intrinsic, args []string) (string, error) {
	spell, ok := intrinsicSpellings[i]
	if !ok {
		return "", &ir.Error{
			Kind:    ir.ErrUnmappedVocabulary,
			Dialect: "glsl",
			Entity:  i.String(),
			Message: "intrinsic has no GLSL spelling",
		}
	}
	return spell(args), nil
}
