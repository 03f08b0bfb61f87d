// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package msl

import (
	"testing"

	"github.com/gogpu/shadergen/ir"
)

// TestMSLCompilesWithXcrun feeds generated source to the real Metal
// compiler. It covers the whole declaration surface: split combined
// resources, a padded constant block, push constants, stage IO structs
// and vocabulary calls in the body.
func TestMSLCompilesWithXcrun(t *testing.T) {
	vertex := &ir.Shader{
		Name:  "tri",
		Stage: ir.StageVertex,
		Blocks: []ir.Block{{
			Name: "Camera",
			Members: []ir.BlockMember{
				{Name: "viewport", Type: ir.Float4},
				{Name: "zoom", Type: ir.Float},
			},
			Slot: &ir.Slot{Index: 0},
		}},
		IO: []ir.StageIO{
			{Name: "position", Type: ir.Float2, Dir: ir.DirIn, Location: 0},
			{Name: "tint", Type: ir.Float4, Dir: ir.DirIn, Location: 1},
			{Name: "shade", Type: ir.Float4, Dir: ir.DirOut, Location: 0},
			{Name: "clip", Type: ir.Float4, Dir: ir.DirOut, System: ir.SysPosition},
		},
		Body: func(v *ir.Vocab) (string, error) {
			return "    shade = tint;\n" +
				"    clip = " + v.Spell(ir.Float4) + "(position * " + v.Uniform("zoom") + ", 0.0, 1.0);\n", nil
		},
	}

	fragment := &ir.Shader{
		Name:  "shadefs",
		Stage: ir.StageFragment,
		Resources: []ir.Resource{{
			Name:  "albedo",
			Kind:  ir.KindCombined,
			Texel: ir.Float4,
			Slot:  &ir.Slot{Index: 0},
		}},
		IO: []ir.StageIO{
			{Name: "shade", Type: ir.Float4, Dir: ir.DirIn, Location: 0},
			{Name: "color", Type: ir.Float4, Dir: ir.DirOut, Location: 0},
		},
		Body: func(v *ir.Vocab) (string, error) {
			return "    color = " + v.Intrinsic(ir.Saturate, v.Sample("albedo", "shade.xy")) + ";\n", nil
		},
	}

	for _, s := range []*ir.Shader{vertex, fragment} {
		source, _, err := Compile(s, DefaultOptions())
		if err != nil {
			t.Fatalf("Compile(%s): %v", s.Name, err)
		}
		verifyMSLWithXcrun(t, source)
	}
}
