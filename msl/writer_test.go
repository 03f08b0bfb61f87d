// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"strings"
	"testing"

	"github.com/gogpu/shadergen/ir"
)

// Assembly is a strict four-section machine. Driving it out of order
// must fail loudly instead of emitting half a shader.
func TestWriterSectionOrder(t *testing.T) {
	opts := DefaultOptions()

	t.Run("signature before bindings", func(t *testing.T) {
		w := newWriter(spriteVertex(), &opts)
		err := w.writeSignature()
		if !ir.IsKind(err, ir.ErrMalformedAssembly) {
			t.Errorf("want ErrMalformedAssembly, got %v", err)
		}
	})

	t.Run("bindings twice", func(t *testing.T) {
		w := newWriter(spriteVertex(), &opts)
		if err := w.writeBindings(); err != nil {
			t.Fatal(err)
		}
		err := w.writeBindings()
		if !ir.IsKind(err, ir.ErrMalformedAssembly) {
			t.Errorf("want ErrMalformedAssembly, got %v", err)
		}
	})

	t.Run("close without body", func(t *testing.T) {
		w := newWriter(spriteVertex(), &opts)
		if err := w.writeBindings(); err != nil {
			t.Fatal(err)
		}
		if err := w.writeSignature(); err != nil {
			t.Fatal(err)
		}
		err := w.closeEntry()
		if !ir.IsKind(err, ir.ErrMalformedAssembly) {
			t.Errorf("want ErrMalformedAssembly, got %v", err)
		}
	})
}

func TestSpellTypeTable(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
	}{
		{ir.Float, "float"},
		{ir.Float2, "float2"},
		{ir.Float3, "float3"},
		{ir.Float4, "float4"},
		{ir.Int, "int"},
		{ir.Int2, "int2"},
		{ir.Uint, "uint"},
		{ir.Uint3, "uint3"},
		{ir.Bool, "bool"},
		{ir.Bool4, "bool4"},
	}
	for _, tt := range tests {
		got, err := spellType(tt.typ)
		if err != nil {
			t.Fatalf("spellType(%s): %v", tt.typ, err)
		}
		if got != tt.want {
			t.Errorf("spellType(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

// Distinct abstract types must never collapse to one spelling.
func TestSpellTypeInjective(t *testing.T) {
	seen := map[string]ir.Type{}
	for _, k := range []ir.ScalarKind{ir.ScalarFloat, ir.ScalarInt, ir.ScalarUint, ir.ScalarBool} {
		for c := uint8(1); c <= 4; c++ {
			typ := ir.Type{Kind: k, Count: c}
			got, err := spellType(typ)
			if err != nil {
				t.Fatalf("spellType(%s): %v", typ, err)
			}
			if prev, dup := seen[got]; dup {
				t.Errorf("spelling %q used by both %s and %s", got, prev, typ)
			}
			seen[got] = typ
		}
	}
}

// Wide vectors take packed spellings inside block structs; everything
// else keeps its parameter spelling.
func TestMemberTypePacked(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
	}{
		{ir.Float, "float"},
		{ir.Float2, "packed_float2"},
		{ir.Float3, "packed_float3"},
		{ir.Float4, "float4"},
		{ir.Int3, "packed_int3"},
		{ir.Uint4, "uint4"},
	}
	for _, tt := range tests {
		got, err := memberType(tt.typ)
		if err != nil {
			t.Fatalf("memberType(%s): %v", tt.typ, err)
		}
		if got != tt.want {
			t.Errorf("memberType(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestIntrinsicSpellings(t *testing.T) {
	tests := []struct {
		intr ir.Intrinsic
		args []string
		want string
	}{
		{ir.Saturate, []string{"x"}, "saturate(x)"},
		{ir.Lerp, []string{"a", "b", "t"}, "mix(a, b, t)"},
		{ir.Frac, []string{"x"}, "fract(x)"},
		{ir.Rsqrt, []string{"x"}, "rsqrt(x)"},
		{ir.Atan2, []string{"y", "x"}, "atan2(y, x)"},
		{ir.Ddx, []string{"p"}, "dfdx(p)"},
		{ir.Ddy, []string{"p"}, "dfdy(p)"},
		{ir.PackHalf2, []string{"v"}, "as_type<uint>(half2(v))"},
		{ir.UnpackHalf2, []string{"u"}, "float2(as_type<half2>(u))"},
		{ir.FloatBitsToUint, []string{"f"}, "as_type<uint>(f)"},
		{ir.FloatBitsToInt, []string{"f"}, "as_type<int>(f)"},
		{ir.UintBitsToFloat, []string{"u"}, "as_type<float>(u)"},
		{ir.IntBitsToFloat, []string{"i"}, "as_type<float>(i)"},
	}
	for _, tt := range tests {
		got, err := spellIntrinsic(tt.intr, tt.args)
		if err != nil {
			t.Fatalf("spellIntrinsic(%s): %v", tt.intr, err)
		}
		if got != tt.want {
			t.Errorf("spellIntrinsic(%s) = %q, want %q", tt.intr, got, tt.want)
		}
	}
	if len(tests) != len(ir.Intrinsics()) {
		t.Errorf("spelling table test covers %d of %d intrinsics", len(tests), len(ir.Intrinsics()))
	}
}

func TestIsReserved(t *testing.T) {
	for _, word := range []string{"kernel", "vertex", "constant", "float4", "packed_float3", "sampler", "as_type", "main"} {
		if !isReserved(word) {
			t.Errorf("%q should be reserved", word)
		}
	}
	for _, word := range []string{"albedo", "uv", "color", "params", "Texture2D"} {
		if isReserved(word) {
			t.Errorf("%q should not be reserved", word)
		}
	}
}

// Binding parameters buffered by the bindings section join the
// parameter list with exactly count-1 separators.
func TestWriterParameterSeparators(t *testing.T) {
	source, _ := compile(t, litFragment())

	start := strings.Index(source, "fragment lit_Output lit(")
	end := strings.Index(source, ") {")
	if start < 0 || end < 0 || end < start {
		t.Fatalf("no entry header found in:\n%s", source)
	}
	// stage_in + buffer + texture + sampler = 4 parameters, 3 separators.
	if got := strings.Count(source[start:end], ",\n    "); got != 3 {
		t.Errorf("entry parameter list has %d separators, want 3", got)
	}
}
