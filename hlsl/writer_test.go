// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
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

// Block layout keeps members from straddling registers, so every
// portable offset lands on a component boundary of a c register.
func TestPackOffset(t *testing.T) {
	tests := []struct {
		offset uint32
		want   string
	}{
		{0, "packoffset(c0)"},
		{4, "packoffset(c0.y)"},
		{8, "packoffset(c0.z)"},
		{12, "packoffset(c0.w)"},
		{16, "packoffset(c1)"},
		{20, "packoffset(c1.y)"},
		{64, "packoffset(c4)"},
		{76, "packoffset(c4.w)"},
	}
	for _, tt := range tests {
		if got := packOffset(tt.offset); got != tt.want {
			t.Errorf("packOffset(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestRegisterAnnotation(t *testing.T) {
	texture := &ir.Register{Type: ir.RegisterT, Index: 2}
	if got := registerAnnotation(texture, ShaderModel5_1); got != "register(t2, space0)" {
		t.Errorf("SM 5.1 annotation = %q", got)
	}
	if got := registerAnnotation(texture, ShaderModel5_0); got != "register(t2)" {
		t.Errorf("SM 5.0 annotation = %q", got)
	}

	spaced := &ir.Register{Type: ir.RegisterB, Index: 1, Space: 3}
	if got := registerAnnotation(spaced, ShaderModel5_1); got != "register(b1, space3)" {
		t.Errorf("spaced annotation = %q", got)
	}
}

// A combined resource's sampler register mirrors its texture register:
// same index, same space, s class.
func TestSamplerRegister(t *testing.T) {
	got := samplerRegister(&ir.Register{Type: ir.RegisterT, Index: 7, Space: 2})
	if got.Type != ir.RegisterS || got.Index != 7 || got.Space != 2 {
		t.Errorf("samplerRegister = %s%d space%d, want s7 space2", got.Type, got.Index, got.Space)
	}
}

func TestSemanticTable(t *testing.T) {
	tests := []struct {
		name  string
		stage ir.Stage
		io    ir.StageIO
		want  string
	}{
		{"vertex attribute", ir.StageVertex, ir.StageIO{Dir: ir.DirIn, Location: 0}, "TEXCOORD0"},
		{"vertex varying", ir.StageVertex, ir.StageIO{Dir: ir.DirOut, Location: 3}, "TEXCOORD3"},
		{"fragment varying", ir.StageFragment, ir.StageIO{Dir: ir.DirIn, Location: 1}, "TEXCOORD1"},
		{"render target", ir.StageFragment, ir.StageIO{Dir: ir.DirOut, Location: 1}, "SV_Target1"},
		{"position", ir.StageVertex, ir.StageIO{Dir: ir.DirOut, System: ir.SysPosition}, "SV_Position"},
		{"frag coord", ir.StageFragment, ir.StageIO{Dir: ir.DirIn, System: ir.SysFragCoord}, "SV_Position"},
		{"vertex index", ir.StageVertex, ir.StageIO{Dir: ir.DirIn, System: ir.SysVertexIndex}, "SV_VertexID"},
		{"instance index", ir.StageVertex, ir.StageIO{Dir: ir.DirIn, System: ir.SysInstanceIndex}, "SV_InstanceID"},
		{"frag depth", ir.StageFragment, ir.StageIO{Dir: ir.DirOut, System: ir.SysFragDepth}, "SV_Depth"},
		{"dispatch id", ir.StageCompute, ir.StageIO{Dir: ir.DirIn, System: ir.SysGlobalInvocationID}, "SV_DispatchThreadID"},
	}
	for _, tt := range tests {
		if got := semantic(tt.stage, tt.io); got != tt.want {
			t.Errorf("%s: semantic = %q, want %q", tt.name, got, tt.want)
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
		{ir.Lerp, []string{"a", "b", "t"}, "lerp(a, b, t)"},
		{ir.Frac, []string{"x"}, "frac(x)"},
		{ir.Rsqrt, []string{"x"}, "rsqrt(x)"},
		{ir.Atan2, []string{"y", "x"}, "atan2(y, x)"},
		{ir.Ddx, []string{"p"}, "ddx(p)"},
		{ir.Ddy, []string{"p"}, "ddy(p)"},
		{ir.PackHalf2, []string{"v"}, "(f32tof16((v).x) | (f32tof16((v).y) << 16u))"},
		{ir.UnpackHalf2, []string{"u"}, "float2(f16tof32((u) & 0xFFFFu), f16tof32((u) >> 16u))"},
		{ir.FloatBitsToUint, []string{"f"}, "asuint(f)"},
		{ir.FloatBitsToInt, []string{"f"}, "asint(f)"},
		{ir.UintBitsToFloat, []string{"u"}, "asfloat(u)"},
		{ir.IntBitsToFloat, []string{"i"}, "asfloat(i)"},
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

func TestProfile(t *testing.T) {
	tests := []struct {
		stage ir.Stage
		model ShaderModel
		want  string
	}{
		{ir.StageVertex, ShaderModel5_1, "vs_5_1"},
		{ir.StageFragment, ShaderModel5_1, "ps_5_1"},
		{ir.StageCompute, ShaderModel5_1, "cs_5_1"},
		{ir.StageVertex, ShaderModel5_0, "vs_5_0"},
		{ir.StageFragment, ShaderModel6_0, "ps_6_0"},
	}
	for _, tt := range tests {
		if got := Profile(tt.stage, tt.model); got != tt.want {
			t.Errorf("Profile(%s, %s) = %q, want %q", tt.stage, tt.model, got, tt.want)
		}
	}
	if got := ShaderModel5_1.String(); got != "SM 5.1" {
		t.Errorf("String = %q, want SM 5.1", got)
	}
}

func TestIsReserved(t *testing.T) {
	for _, word := range []string{"sample", "cbuffer", "register", "float4", "Texture2D", "saturate", "main"} {
		if !isReserved(word) {
			t.Errorf("%q should be reserved", word)
		}
	}
	for _, word := range []string{"albedo", "uv", "color", "params", "texture2d"} {
		if isReserved(word) {
			t.Errorf("%q should not be reserved", word)
		}
	}
}
