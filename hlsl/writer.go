// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

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

// Writer generates HLSL source text for one shader.
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

// newWriter creates a new HLSL writer.
func newWriter(shader *ir.Shader, options *Options) *Writer {
	return &Writer{
		shader:  shader,
		options: options,
		desc:    dialect.HLSL.Descriptor(),
		info: ir.Info{
			Dialect:    "hlsl",
			EntryPoint: "main",
			Bindings:   make(map[string]string),
			Offsets:    make(map[string]uint32),
			Spans:      make(map[string]uint32),
		},
	}
}

// String returns the generated HLSL source code.
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

// separate writes a blank line between declaration groups. Nothing is
// written at the very top of the file, HLSL has no version directive.
func (w *Writer) separate() {
	if w.out.Len() > 0 {
		w.writeLine("")
	}
}

// register formats a register annotation under the target model.
func (w *Writer) register(r *ir.Register) string {
	return registerAnnotation(r, w.options.Model)
}

// advance asserts the writer is at the expected section and moves on.
func (w *Writer) advance(section assemblyStage, name string) error {
	if w.stage != section {
		return &ir.Error{
			Kind:    ir.ErrMalformedAssembly,
			Dialect: "hlsl",
			Message: fmt.Sprintf("%s section rendered out of order", name),
		}
	}
	w.stage++
	return nil
}

// writeBindings emits constant buffers and the split texture and
// sampler declarations.
func (w *Writer) writeBindings() error {
	if err := w.advance(stageBindings, "bindings"); err != nil {
		return err
	}

	for i := range w.shader.Blocks {
		b := &w.shader.Blocks[i]
		if b.Register == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "hlsl",
				Entity:  b.Name,
				Message: "no register binding",
			}
		}
		w.separate()
		header := fmt.Sprintf("cbuffer %s : %s {", b.Name, w.register(b.Register))
		if err := w.writeBlock(b.Name, header, b.Members, 0, b.Capacity); err != nil {
			return err
		}
		w.info.Bindings[b.Name] = w.register(b.Register)
	}

	// Push constants become an ordinary cbuffer fed by root constants.
	// Authored offsets are global; packoffset counts from the buffer
	// start, so members rebase onto the base offset.
	if p := w.shader.Push; p != nil {
		if p.Register == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "hlsl",
				Entity:  p.Name,
				Message: "no register binding",
			}
		}
		w.separate()
		header := fmt.Sprintf("cbuffer %s : %s {", p.Name, w.register(p.Register))
		if err := w.writeBlock(p.Name, header, p.Members, p.BaseOffset, p.Capacity); err != nil {
			return err
		}
		w.info.Bindings[p.Name] = w.register(p.Register)
	}

	first := true
	for i := range w.shader.Resources {
		r := &w.shader.Resources[i]
		if r.Register == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "hlsl",
				Entity:  r.Name,
				Message: "no register binding",
			}
		}
		if first {
			w.separate()
			first = false
		}
		if err := w.writeResource(r); err != nil {
			return err
		}
	}
	return nil
}

// writeResource declares one resource. Combined resources split into a
// texture and a sampler sharing the register index across the t and s
// classes. Fetch resources stay a bare texture, Load needs no sampler.
func (w *Writer) writeResource(r *ir.Resource) error {
	switch r.Kind {
	case ir.KindCombined:
		texture, sampler := ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name)
		typ, err := textureType(r.Texel)
		if err != nil {
			return err
		}
		sreg := samplerRegister(r.Register)
		w.writeLine("%s %s : %s;", typ, texture, w.register(r.Register))
		w.writeLine("SamplerState %s : %s;", sampler, w.register(sreg))
		w.info.Bindings[texture] = w.register(r.Register)
		w.info.Bindings[sampler] = w.register(sreg)
		w.info.SplitResources = append(w.info.SplitResources, r.Name)
	case ir.KindTexture, ir.KindFetch:
		typ, err := textureType(r.Texel)
		if err != nil {
			return err
		}
		w.writeLine("%s %s : %s;", typ, r.Name, w.register(r.Register))
		w.info.Bindings[r.Name] = w.register(r.Register)
	case ir.KindSampler:
		w.writeLine("SamplerState %s : %s;", r.Name, w.register(r.Register))
		w.info.Bindings[r.Name] = w.register(r.Register)
	}
	return nil
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
		w.writeLine("%s %s%s : %s;", spell, m.Name, suffix, packOffset(m.Offset-base))
		w.info.Offsets[name+"."+m.Name] = m.Offset
	}
	w.popIndent()
	w.writeLine("};")
	w.info.Spans[name] = span
	return nil
}

// rawFragCoord reports whether a slot arrives carrying clip-space w
// and needs the reciprocal fix before the body runs. The parameter
// then takes an underscore-prefixed raw name and the body prologue
// rebuilds the slot under its authored name.
func (w *Writer) rawFragCoord(io ir.StageIO) bool {
	return io.System == ir.SysFragCoord && w.desc.FragCoordWInverse
}

// writeSignature emits the compute thread-group attribute and the
// entry point header. All stage interface slots travel as parameters;
// outputs are out parameters the body writes directly.
func (w *Writer) writeSignature() error {
	if err := w.advance(stageSignature, "signature"); err != nil {
		return err
	}

	params := make([]string, 0, len(w.shader.IO))
	for _, io := range w.shader.IO {
		spell, err := spellType(io.Type)
		if err != nil {
			return err
		}
		name := io.Name
		if w.rawFragCoord(io) {
			name = "_" + io.Name
		}
		var prefix string
		switch {
		case io.Dir == ir.DirOut:
			prefix = "out "
		case io.Flat(w.shader.Stage):
			prefix = "nointerpolation "
		}
		params = append(params, fmt.Sprintf("%s%s %s : %s", prefix, spell, name, semantic(w.shader.Stage, io)))
	}

	w.separate()
	if w.shader.Stage == ir.StageCompute {
		wg := w.shader.WorkgroupOrDefault()
		w.writeLine("[numthreads(%d, %d, %d)]", wg[0], wg[1], wg[2])
	}
	w.writeLine("void main(%s) {", strings.Join(params, ", "))
	return nil
}

// writeBody fixes up raw system parameters, then inserts the authored
// body verbatim.
func (w *Writer) writeBody() error {
	if err := w.advance(stageBody, "body"); err != nil {
		return err
	}

	w.pushIndent()
	for _, io := range w.shader.IO {
		if !w.rawFragCoord(io) {
			continue
		}
		// SV_Position delivers clip-space w; the portable slot wants
		// its reciprocal.
		w.writeLine("float4 %s = float4(_%s.xyz, 1.0 / _%s.w);", io.Name, io.Name, io.Name)
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
			Dialect: "hlsl",
			Message: "entry point body is empty",
		}
	}
	w.out.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		w.out.WriteByte('\n')
	}
	return nil
}

// closeEntry closes the entry point. Outputs leave through out
// parameters, so nothing is copied, and D3D clip space already has Y
// up so positions pass through untouched.
func (w *Writer) closeEntry() error {
	if err := w.advance(stageClose, "close"); err != nil {
		return err
	}
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
