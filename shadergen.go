// Package shadergen renders abstract shader descriptions into shading
// language source text.
//
// shadergen generates source for multiple target dialects from one
// description:
//   - GLSL: Vulkan-flavored GLSL 450 (set/binding decorations)
//   - HLSL: Shader Model 5.x (register/space bindings, SV_* semantics)
//   - MSL: Metal Shading Language 2.x (argument slot bindings)
//
// A shader is declared once as an ir.Shader: its resources, constant
// blocks, push constants and stage interface, plus an opaque body. The
// declarations are rendered in each dialect's native grammar; the body
// travels verbatim, with an ir.Vocab supplying the dialect spellings of
// types, intrinsics and resource accesses so one body renders
// everywhere.
//
// Example usage:
//
//	shader := &ir.Shader{
//	    Name:  "blit",
//	    Stage: ir.StageFragment,
//	    // resources, blocks, IO ...
//	    Body: func(v *ir.Vocab) (string, error) {
//	        return "    color = " + v.Sample("src", "uv") + ";\n", nil
//	    },
//	}
//	source, info, err := shadergen.Render(shader, dialect.HLSL, shadergen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For single-dialect use the backend packages are available directly:
//
//	source, info, err := msl.Compile(shader, msl.DefaultOptions())
//
// Rendering is pure: no global state, and identical inputs produce
// byte-identical output. On any error nothing is emitted.
//
// Resources of kind ir.KindFetch carry an authoring contract on
// dialects whose texel fetch still consumes a sampler: the texture is
// declared as a combined object at its own coordinates, and the
// pipeline is expected to feed it the reserved default sampler
// (sampler slot 0), which the author must leave unallocated. shadergen
// does not verify that.
package shadergen

import (
	"fmt"

	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/hlsl"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/msl"
)

// Options carries the per-dialect generation options. Zero values
// select each backend's defaults.
type Options struct {
	// GLSL configures the GLSL backend (language version).
	GLSL glsl.Options

	// HLSL configures the HLSL backend (target Shader Model).
	HLSL hlsl.Options

	// MSL configures the MSL backend (language version).
	MSL msl.Options
}

// DefaultOptions returns the default options of every backend.
func DefaultOptions() Options {
	return Options{
		GLSL: glsl.DefaultOptions(),
		HLSL: hlsl.DefaultOptions(),
		MSL:  msl.DefaultOptions(),
	}
}

// Render renders one shader description into one dialect's source
// text. Returns the source, render info (resolved bindings, offsets
// and split resources), or an error. Nothing is returned on error.
func Render(shader *ir.Shader, d dialect.Dialect, opts Options) (string, ir.Info, error) {
	switch d {
	case dialect.GLSL:
		return glsl.Compile(shader, opts.GLSL)
	case dialect.HLSL:
		return hlsl.Compile(shader, opts.HLSL)
	case dialect.MSL:
		return msl.Compile(shader, opts.MSL)
	default:
		return "", ir.Info{}, &ir.Error{
			Kind:    ir.ErrInvalidShader,
			Message: fmt.Sprintf("unknown dialect %s", d),
		}
	}
}

// Rendered is one dialect's output of a RenderAll call.
type Rendered struct {
	// Source is the generated source text.
	Source string

	// Info reports the resolved bindings, offsets and split resources.
	Info ir.Info
}

// RenderAll renders the shader into every dialect. Dialects render
// independently in dialect.All order; the first failure aborts and
// returns only the error, which names the failing dialect.
func RenderAll(shader *ir.Shader, opts Options) (map[dialect.Dialect]Rendered, error) {
	out := make(map[dialect.Dialect]Rendered, len(dialect.All()))
	for _, d := range dialect.All() {
		source, info, err := Render(shader, d, opts)
		if err != nil {
			return nil, err
		}
		out[d] = Rendered{Source: source, Info: info}
	}
	return out, nil
}
