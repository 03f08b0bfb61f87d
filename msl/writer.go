// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

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

// Writer generates MSL source text for one shader.
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

	// Entry parameters produced by the bindings section. MSL places
	// binding declarations inside the entry point's parameter list, so
	// they are buffered here and joined into the signature.
	bindingParams []string

	info ir.Info
}

// newWriter creates a new MSL writer.
func newWriter(shader *ir.Shader, options *Options) *Writer {
	return &Writer{
		shader:  shader,
		options: options,
		desc:    dialect.MSL.Descriptor(),
		info: ir.Info{
			Dialect:    "msl",
			EntryPoint: shader.Name,
			Bindings:   make(map[string]string),
			Offsets:    make(map[string]uint32),
			Spans:      make(map[string]uint32),
		},
	}
}

// String returns the generated MSL source code.
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
			Dialect: "msl",
			Message: fmt.Sprintf("%s section rendered out of order", name),
		}
	}
	w.stage++
	return nil
}

// writeBindings emits the prelude and block struct definitions, and
// buffers the buffer/texture/sampler entry parameters the signature
// places in the parameter list.
func (w *Writer) writeBindings() error {
	if err := w.advance(stageBindings, "bindings"); err != nil {
		return err
	}

	w.writeLine("#include <metal_stdlib>")
	w.writeLine("")
	w.writeLine("using namespace metal;")

	for i := range w.shader.Blocks {
		b := &w.shader.Blocks[i]
		if b.Slot == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "msl",
				Entity:  b.Name,
				Message: "no buffer argument slot",
			}
		}
		if err := w.writeBlockStruct(b.Name, b.Members, 0, b.Capacity); err != nil {
			return err
		}
		w.addBufferParam(b.Name, b.Slot.Index)
	}

	// Push constants are an ordinary small buffer here. Authored
	// offsets are global; the struct starts at the range's base, so
	// members rebase onto it.
	if p := w.shader.Push; p != nil {
		if p.Slot == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "msl",
				Entity:  p.Name,
				Message: "no buffer argument slot",
			}
		}
		if err := w.writeBlockStruct(p.Name, p.Members, p.BaseOffset, p.Capacity); err != nil {
			return err
		}
		w.addBufferParam(p.Name, p.Slot.Index)
	}

	for i := range w.shader.Resources {
		r := &w.shader.Resources[i]
		if r.Slot == nil {
			return &ir.Error{
				Kind:    ir.ErrMissingBinding,
				Dialect: "msl",
				Entity:  r.Name,
				Message: "no argument slot",
			}
		}
		if err := w.addResourceParams(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) addBufferParam(block string, slot uint32) {
	attr := fmt.Sprintf("[[buffer(%d)]]", slot)
	w.bindingParams = append(w.bindingParams,
		fmt.Sprintf("constant %s& %s %s", block, blockParam(block), attr))
	w.info.Bindings[block] = attr
}

// addResourceParams buffers the parameter(s) for one resource.
// Combined resources split into a texture and a sampler sharing the
// slot index across the texture and sampler argument tables. Fetch
// resources stay a bare texture, read needs no sampler.
func (w *Writer) addResourceParams(r *ir.Resource) error {
	texAttr := fmt.Sprintf("[[texture(%d)]]", r.Slot.Index)
	smpAttr := fmt.Sprintf("[[sampler(%d)]]", r.Slot.Index)

	switch r.Kind {
	case ir.KindCombined:
		texture, sampler := ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name)
		typ, err := textureType(r.Texel)
		if err != nil {
			return err
		}
		w.bindingParams = append(w.bindingParams,
			fmt.Sprintf("%s %s %s", typ, texture, texAttr),
			fmt.Sprintf("sampler %s %s", sampler, smpAttr))
		w.info.Bindings[texture] = texAttr
		w.info.Bindings[sampler] = smpAttr
		w.info.SplitResources = append(w.info.SplitResources, r.Name)
	case ir.KindTexture, ir.KindFetch:
		typ, err := textureType(r.Texel)
		if err != nil {
			return err
		}
		w.bindingParams = append(w.bindingParams, fmt.Sprintf("%s %s %s", typ, r.Name, texAttr))
		w.info.Bindings[r.Name] = texAttr
	case ir.KindSampler:
		w.bindingParams = append(w.bindingParams, fmt.Sprintf("sampler %s %s", r.Name, smpAttr))
		w.info.Bindings[r.Name] = smpAttr
	}
	return nil
}

// writeBlockStruct emits a block as a struct whose members sit at the
// resolved portable offsets. MSL has no offset annotation, so gaps are
// materialized as char array padding and wide vectors take their
// packed spellings.
func (w *Writer) writeBlockStruct(name string, members []ir.BlockMember, base, capacity uint32) error {
	resolved, span, err := ir.ResolveLayout(members, base, capacity)
	if err != nil {
		return err
	}
	w.writeLine("")
	w.writeLine("struct %s {", name)
	w.pushIndent()
	cursor := base
	pads := 0
	for _, m := range resolved {
		if m.Offset > cursor {
			w.writeLine("char _pad%d[%d];", pads, m.Offset-cursor)
			pads++
		}
		spell, err := memberType(m.Type)
		if err != nil {
			return err
		}
		suffix := ""
		if m.Count > 0 {
			suffix = fmt.Sprintf("[%d]", m.Count)
		}
		w.writeLine("%s %s%s;", spell, m.Name, suffix)
		w.info.Offsets[name+"."+m.Name] = m.Offset
		cursor = m.End()
	}
	w.popIndent()
	w.writeLine("};")
	w.info.Spans[name] = span
	return nil
}

// entryInputs returns the linked inputs travelling in the stage_in
// struct.
func (w *Writer) entryInputs() []ir.StageIO {
	var linked []ir.StageIO
	for _, io := range w.shader.Inputs() {
		if io.Linked() {
			linked = append(linked, io)
		}
	}
	return linked
}

// writeSignature emits the _Input/_Output structs and the entry point
// header. Binding parameters buffered by the bindings section join the
// stage_in struct and system inputs in the parameter list.
func (w *Writer) writeSignature() error {
	if err := w.advance(stageSignature, "signature"); err != nil {
		return err
	}

	linkedIn := w.entryInputs()
	outputs := w.shader.Outputs()

	if len(linkedIn) > 0 {
		w.writeLine("")
		w.writeLine("struct %s_Input {", w.shader.Name)
		w.pushIndent()
		for _, io := range linkedIn {
			spell, err := spellType(io.Type)
			if err != nil {
				return err
			}
			w.writeLine("%s %s %s;", spell, io.Name, ioAttribute(w.shader.Stage, io))
		}
		w.popIndent()
		w.writeLine("};")
	}

	if len(outputs) > 0 {
		w.writeLine("")
		w.writeLine("struct %s_Output {", w.shader.Name)
		w.pushIndent()
		for _, io := range outputs {
			spell, err := spellType(io.Type)
			if err != nil {
				return err
			}
			w.writeLine("%s %s %s;", spell, io.Name, ioAttribute(w.shader.Stage, io))
		}
		w.popIndent()
		w.writeLine("};")
	}

	params := make([]string, 0, len(w.bindingParams)+2)
	if len(linkedIn) > 0 {
		params = append(params, fmt.Sprintf("%s_Input _input [[stage_in]]", w.shader.Name))
	}
	for _, io := range w.shader.Inputs() {
		if io.Linked() {
			continue
		}
		spell, err := spellType(io.Type)
		if err != nil {
			return err
		}
		params = append(params, fmt.Sprintf("%s %s %s", spell, io.Name, ioAttribute(w.shader.Stage, io)))
	}
	params = append(params, w.bindingParams...)

	keyword := "vertex"
	switch w.shader.Stage {
	case ir.StageFragment:
		keyword = "fragment"
	case ir.StageCompute:
		keyword = "kernel"
	}
	returnType := "void"
	if len(outputs) > 0 {
		returnType = w.shader.Name + "_Output"
	}

	w.writeLine("")
	w.writeLine("%s %s %s(%s) {", keyword, returnType, w.shader.Name, strings.Join(params, ",\n    "))
	return nil
}

// writeBody pulls linked inputs out of the stage_in struct, declares
// output locals the body writes under their authored names, then
// inserts the authored body verbatim.
func (w *Writer) writeBody() error {
	if err := w.advance(stageBody, "body"); err != nil {
		return err
	}

	w.pushIndent()
	for _, io := range w.entryInputs() {
		w.writeLine("auto %s = _input.%s;", io.Name, io.Name)
	}
	for _, io := range w.shader.Outputs() {
		spell, err := spellType(io.Type)
		if err != nil {
			return err
		}
		w.writeLine("%s %s;", spell, io.Name)
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
			Dialect: "msl",
			Message: "entry point body is empty",
		}
	}
	w.out.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		w.out.WriteByte('\n')
	}
	return nil
}

// closeEntry gathers output locals into the _Output struct, returns it
// and closes the entry point. Clip space here matches the portable
// convention, so positions pass through untouched.
func (w *Writer) closeEntry() error {
	if err := w.advance(stageClose, "close"); err != nil {
		return err
	}

	outputs := w.shader.Outputs()
	if len(outputs) > 0 {
		w.pushIndent()
		w.writeLine("%s_Output _out;", w.shader.Name)
		for _, io := range outputs {
			w.writeLine("_out.%s = %s;", io.Name, io.Name)
		}
		w.writeLine("return _out;")
		w.popIndent()
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
