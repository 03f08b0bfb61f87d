// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// registerAnnotation formats a register binding annotation, e.g.
// "register(t2, space0)". Shader Model 5.0 predates register spaces
// and drops the space term.
func registerAnnotation(r *ir.Register, sm ShaderModel) string {
	if !sm.SupportsSpaces() {
		return fmt.Sprintf("register(%s%d)", r.Type, r.Index)
	}
	return fmt.Sprintf("register(%s%d, space%d)", r.Type, r.Index, r.Space)
}

// samplerRegister derives the sampler-class register for a combined
// resource from its texture register: same index, same space, s class.
func samplerRegister(r *ir.Register) *ir.Register {
	return &ir.Register{Type: ir.RegisterS, Index: r.Index, Space: r.Space}
}

// packOffset formats a packoffset annotation for a byte offset. Block
// layout keeps members from straddling registers, so the offset always
// lands on a component boundary of register offset/16.
func packOffset(offset uint32) string {
	reg := offset / 16
	component := offset % 16 / 4
	if component == 0 {
		return fmt.Sprintf("packoffset(c%d)", reg)
	}
	return fmt.Sprintf("packoffset(c%d.%c)", reg, "xyzw"[component])
}
