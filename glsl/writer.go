// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/ir"
)

// assemblyStage tracks entry point assembly order. Sections must run
// bindings, signature, body, close; the writer refuses anything else.
type assemblyStage uint8

const (
	stageBindings assemblyStage = iota
	stageSignature
	stageBody
	stageClose
	stageDone
)

// Writer generates GLSL source text for one shader.
type Writer struct {
	shader  *ir.Shader
	options *Options
	desc    dialect.Descriptor

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Next expected assembly section
	stage assemblyStage

	info ir.Info
}

// newWriter creates a new GLSL writer.
func newWriter(shader *ir.Shader, options *Options) *Writer {
	return &Writer{
		shader:  shader,
		options: options,
		desc:    dialect.GLSL.Descriptor(),
		info: ir.Info{
			Dialect:    "glsl",
			EntryPoint: "main",
			Bindings:   make(map[string]string),
			Offsets:    make(map[string]uint32),
			Spans:      make(map[string]uint32),
		},
	}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// advance asserts the writer is at the expected section and moves on.
func (w *Writer) advance(section assemblyStage, name string) error {
	if w.stage != section {
		return &ir.Error{
			Kind:    ir.ErrMalformedAssembly,
			Dialect: "glsl",
			Message: fmt.Sprintf("%s section rendered out of order", name),
		}
	}
	w.stage++
	return nil
}

// writeBindings emits the version directive, constant blocks, the
// push-constant block and resource declarations.
func (w *Writer) writeBindings() error {
	if err := w.advance(stageBindings, "bindings"); err != nil {
		return err
	}

	w.writeLine("#version %s", w.options.LangVersion)

	for i := range w.shader.Blocks {
		b := &w.shader.Blocks[i]
		if b.SetBinding == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "glsl",
				Entity:  b.Name,
				Message: "no (set, binding) coordinates",
			}
		}
		w.writeLine("")
		header := fmt.Sprintf("layout(set = %d, binding = %d, std140) uniform %s {",
			b.SetBinding.Set, b.SetBinding.Binding, b.Name)
		if err := w.writeBlock(b.Name, header, b.Members, 0, b.Capacity); err != nil {
			return err
		}
		w.info.Bindings[b.Name] = fmt.Sprintf("set = %d, binding = %d", b.SetBinding.Set, b.SetBinding.Binding)
	}

	if p := w.shader.Push; p != nil {
		w.writeLine("")
		header := fmt.Sprintf("layout(push_constant, std430) uniform %s {", p.Name)
		if err := w.writeBlock(p.Name, header, p.Members, p.BaseOffset, p.Capacity); err != nil {
			return err
		}
		w.info.Bindings[p.Name] = "push_constant"
	}

	first := true
	for i := range w.shader.Resources {
		r := &w.shader.Resources[i]
		if r.SetBinding == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "glsl",
				Entity:  r.Name,
				Message: "no (set, binding) coordinates",
			}
		}
		typ, err := declaredType(r)
		if err != nil {
			return err
		}
		if first {
			w.writeLine("")
			first = false
		}
		w.writeLine("layout(set = %d, binding = %d) uniform %s %s;",
			r.SetBinding.Set, r.SetBinding.Binding, typ, r.Name)
		w.info.Bindings[r.Name] = fmt.Sprintf("set = %d, binding = %d", r.SetBinding.Set, r.SetBinding.Binding)
	}
	return nil
}

// declaredType picks the uniform declaration type for a resource. The
// dialect combines textures and samplers, so both combined and fetch
// resources declare sampler2D variants.
func declaredType(r *ir.Resource) (string, error) {
	switch r.Kind {
	case ir.KindCombined, ir.KindFetch:
		return combinedType(r.Texel)
	case ir.KindTexture:
		return textureType(r.Texel)
	default:
		return "sampler", nil
	}
}

func (w *Writer) writeBlock(name, header string, members []ir.BlockMember, base, capacity uint32) error {
	resolved, span, err := ir.ResolveLayout(members, base, capacity)
	if err != nil {
		return err
	}
	w.writeLine("%s", header)
	w.pushIndent()
	for _, m := range resolved {
		spell, err := spellType(m.Type)
		if err != nil {
			return err
		}
		suffix := ""
		if m.Count > 0 {
			suffix = fmt.Sprintf("[%d]", m.Count)
		}
		w.writeLine("layout(offset = %d) %s %s%s;", m.Offset, spell, m.Name, suffix)
		w.info.Offsets[name+"."+m.Name] = m.Offset
	}
	w.popIndent()
	w.writeLine("};")
	w.info.Spans[name] = span
	return nil
}

// writeSignature emits linked IO declarations, the compute workgroup
// layout and the entry point header. System values contribute nothing
// here; they surface as locals in the body prologue.
func (w *Writer) writeSignature() error {
	if err := w.advance(stageSignature, "signature"); err != nil {
		return err
	}

	wrote := false
	for _, io := range w.shader.IO {
		if !io.Linked() {
			continue
		}
		spell, err := spellType(io.Type)
		if err != nil {
			return err
		}
		flat := ""
		if io.Flat(w.shader.Stage) {
			flat = "flat "
		}
		if !wrote {
			w.writeLine("")
			wrote = true
		}
		w.writeLine("layout(location = %d) %s%s %s %s;", io.Location, flat, io.Dir, spell, io.Name)
	}

	if w.shader.Stage == ir.StageCompute {
		wg := w.shader.WorkgroupOrDefault()
		w.writeLine("")
		w.writeLine("layout(local_size_x = %d, local_size_y = %d, local_size_z = %d) in;",
			wg[0], wg[1], wg[2])
	}

	w.writeLine("")
	w.writeLine("void main() {")
	return nil
}

// writeBody materializes system values as locals, then inserts the
// authored body verbatim.
func (w *Writer) writeBody() error {
	if err := w.advance(stageBody, "body"); err != nil {
		return err
	}

	w.pushIndent()
	for _, io := range w.shader.IO {
		if io.Linked() {
			continue
		}
		switch io.System {
		case ir.SysFragCoord:
			// gl_FragCoord.w already carries the portable convention.
			w.writeLine("vec4 %s = gl_FragCoord;", io.Name)
		case ir.SysVertexIndex:
			w.writeLine("uint %s = uint(gl_VertexID);", io.Name)
		case ir.SysInstanceIndex:
			w.writeLine("uint %s = uint(gl_InstanceID);", io.Name)
		case ir.SysGlobalInvocationID:
			w.writeLine("uvec3 %s = gl_GlobalInvocationID;", io.Name)
		case ir.SysPosition:
			w.writeLine("vec4 %s;", io.Name)
		case ir.SysFragDepth:
			w.writeLine("float %s;", io.Name)
		}
	}
	w.popIndent()

	vocab := ir.NewVocab(w.shader, vocabFuncs())
	text, err := w.shader.Body(vocab)
	if err != nil {
		return err
	}
	if err := vocab.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return &ir.Error{
			Kind:    ir.ErrMalformedAssembly,
			Dialect: "glsl",
			Message: "entry point body is empty",
		}
	}
	w.out.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		w.out.WriteByte('\n')
	}
	return nil
}

// closeEntry copies system outputs into their builtins, applies the
// clip-space Y flip and closes the entry point.
func (w *Writer) closeEntry() error {
	if err := w.advance(stageClose, "close"); err != nil {
		return err
	}

	w.pushIndent()
	for _, io := range w.shader.IO {
		if io.Linked() || io.Dir != ir.DirOut {
			continue
		}
		switch io.System {
		case ir.SysPosition:
			w.writeLine("gl_Position = %s;", io.Name)
			if w.desc.ScreenYDown {
				w.writeLine("gl_Position.y = -gl_Position.y;")
			}
		case ir.SysFragDepth:
			w.writeLine("gl_FragDepth = %s;", io.Name)
		}
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

func vocabFuncs() ir.VocabFuncs {
	return ir.VocabFuncs{
		Spell:       spellType,
		Intrinsic:   spellIntrinsic,
		Sample:      sampleCall,
		SampleLevel: sampleLevelCall,
		Gather:      gatherCall,
		Fetch:       fetchCall,
		Uniform:     uniformAccess,
	}
}
