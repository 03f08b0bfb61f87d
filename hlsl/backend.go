// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Options configures HLSL code generation.
type Options struct {
	// Model is the target Shader Model.
	// The zero value is ShaderModel5_1.
	Model ShaderModel
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Model: ShaderModel5_1}
}

// Compile renders a shader description into HLSL source text.
// Returns the source, render info, or an error. Nothing is returned
// on error: validation, binding checks, layout resolution and
// vocabulary mapping all run before text leaves the writer.
//
// The Shader Model never appears in the source; pass Profile to the
// toolchain alongside the returned text.
func Compile(shader *ir.Shader, options Options) (string, ir.Info, error) {
	if err := ir.Validate(shader); err != nil {
		return "", ir.Info{}, err
	}
	if err := checkReserved(shader); err != nil {
		return "", ir.Info{}, err
	}
	if !options.Model.SupportsSpaces() {
		if name := firstSpacedBinding(shader); name != "" {
			return "", ir.Info{}, &ir.Error{
				Kind:    ir.ErrInvalidShader,
				Dialect: "hlsl",
				Entity:  name,
				Message: fmt.Sprintf("register spaces need %s or later", ShaderModel5_1),
			}
		}
	}

	w := newWriter(shader, &options)
	for _, section := range []func() error{
		w.writeBindings,
		w.writeSignature,
		w.writeBody,
		w.closeEntry,
	} {
		if err := section(); err != nil {
			return "", ir.Info{}, err
		}
	}
	return w.String(), w.info, nil
}

func checkReserved(shader *ir.Shader) error {
	for _, name := range ir.DeclaredNames(shader) {
		if isReserved(name) {
			return &ir.Error{
				Kind:    ir.ErrInvalidShader,
				Dialect: "hlsl",
				Entity:  name,
				Message: "reserved word in this dialect",
			}
		}
	}
	return nil
}

// firstSpacedBinding returns the name of the first binding placed in a
// nonzero register space, or "" when every binding sits in space0.
func firstSpacedBinding(s *ir.Shader) string {
	for i := range s.Blocks {
		if r := s.Blocks[i].Register; r != nil && r.Space != 0 {
			return s.Blocks[i].Name
		}
	}
	if p := s.Push; p != nil && p.Register != nil && p.Register.Space != 0 {
		return p.Name
	}
	for i := range s.Resources {
		if r := s.Resources[i].Register; r != nil && r.Space != 0 {
			return s.Resources[i].Name
		}
	}
	return ""
}
